package forecast

import (
	"errors"
	"testing"

	"packmate-api/internal/domain/model"
	"packmate-api/internal/domain/model/external"
)

type fakeForecastGateway struct {
	response *external.ForecastResponse
	err      error
	calls    int
}

func (f *fakeForecastGateway) GetForecast(location string) (*external.ForecastResponse, error) {
	f.calls++
	return f.response, f.err
}

func TestGetForecastAggregatesGatewayResponse(t *testing.T) {
	gateway := &fakeForecastGateway{response: response("Zurich", "CH",
		slot("2025-07-01 09:00:00", 10, 15, 60, 3.0, "Clouds", "scattered clouds", nil, nil),
	)}

	useCase := NewForecastUseCase(gateway, nil)

	ctx, err := useCase.GetForecast("Zurich", "2025-07-01", "2025-07-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Location != "Zurich, CH" || len(ctx.Days) != 1 {
		t.Errorf("unexpected forecast context: %+v", ctx)
	}
}

func TestGetForecastWrapsGatewayError(t *testing.T) {
	gateway := &fakeForecastGateway{err: errors.New("connection refused")}
	useCase := NewForecastUseCase(gateway, nil)

	_, err := useCase.GetForecast("Zurich", "2025-07-01", "2025-07-02")

	var unavailable *model.ForecastUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ForecastUnavailable, got %v", err)
	}
	if unavailable.Location != "Zurich" {
		t.Errorf("expected location in error, got %q", unavailable.Location)
	}
}

func TestGetForecastRejectsEmptySlotList(t *testing.T) {
	gateway := &fakeForecastGateway{response: response("Zurich", "CH")}
	useCase := NewForecastUseCase(gateway, nil)

	_, err := useCase.GetForecast("Zurich", "2025-07-01", "2025-07-02")

	var unavailable *model.ForecastUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ForecastUnavailable for empty slots, got %v", err)
	}
}

func TestWarmCacheDelegates(t *testing.T) {
	gateway := &fakeForecastGateway{response: response("Zurich", "CH",
		slot("2025-07-01 09:00:00", 10, 15, 60, 3.0, "Clouds", "scattered clouds", nil, nil),
	)}
	useCase := NewForecastUseCase(gateway, nil)

	if err := useCase.WarmCache("Zurich", "2025-07-01", "2025-07-02"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gateway.calls != 1 {
		t.Errorf("expected one gateway call, got %d", gateway.calls)
	}
}
