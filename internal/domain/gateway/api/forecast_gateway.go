package api

import (
	"packmate-api/internal/domain/model/external"
)

// ForecastGateway defines the interface for the weather forecast provider
type ForecastGateway interface {
	// GetForecast fetches the raw 3-hour forecast slots for a location.
	// The provider decides the horizon; the returned slots may not cover
	// the caller's full date range.
	GetForecast(location string) (*external.ForecastResponse, error)
}
