package forecast

import "packmate-api/internal/domain/entity"

type UseCase interface {
	// GetForecast returns the aggregated day-level forecast for the trip's
	// location and date range. Callers decide whether a failure is fatal.
	GetForecast(location string, startDate string, endDate string) (*entity.ForecastContext, error)

	// WarmCache fetches and caches the forecast without returning it.
	WarmCache(location string, startDate string, endDate string) error
}
