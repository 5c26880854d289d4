package api

import (
	"fmt"

	"packmate-api/internal/domain/model/external"
	"packmate-api/pkg/http"
)

// maxForecastSlots caps the number of 3-hour slots requested from the
// provider: 5 days x 8 slots per day.
const maxForecastSlots = "40"

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) ForecastGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &forecastGatewayImpl{
		httpClient: httpClient,
		apiKey:     apiKey,
	}
}

// GetForecast fetches the raw 3-hour forecast slots for a location
func (g *forecastGatewayImpl) GetForecast(location string) (*external.ForecastResponse, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(map[string]string{
			"q":     location,
			"appid": g.apiKey,
			"units": "metric",
			"cnt":   maxForecastSlots,
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		WithBackoff(http.DefaultBackoffConfig()).
		Execute()

	if err == nil {
		response := successResp.(*external.ForecastResponse)
		return response, nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.APIErrorResponse)
		return nil, fmt.Errorf("forecast provider error: %s", errorResponse.Message)
	}

	return nil, err
}
