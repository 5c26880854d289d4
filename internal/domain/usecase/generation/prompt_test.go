package generation

import (
	"strings"
	"testing"

	"packmate-api/internal/domain/entity"
)

func testTrip() entity.Trip {
	return entity.Trip{
		Location:      "Zurich, CH",
		StartDate:     "2025-07-01",
		EndDate:       "2025-07-05",
		Accommodation: entity.AccommodationTent,
		ActivityLevel: entity.ActivityIntense,
	}
}

func TestInstructionsAreFixed(t *testing.T) {
	instructions := Instructions()

	for _, required := range []string{
		"single valid JSON object",
		"Title Case",
		"6–12 relevant categories",
		"3–12 items",
		"packed is always false",
	} {
		if !strings.Contains(instructions, required) {
			t.Errorf("instructions missing %q", required)
		}
	}
	if strings.Contains(instructions, "Zurich") {
		t.Error("instructions must not contain trip context")
	}
}

func TestComposeContextWithWeather(t *testing.T) {
	weather := &entity.ForecastContext{
		Location: "Zurich, CH",
		Summary:  "Forecast for Zurich, CH: temperature range 8–17°C. Conditions: rain expected. 3 day(s) of data available.",
		Days: []entity.DayForecast{
			{Date: "2025-07-01", Description: "light rain", TempMin: 8, TempMax: 15, Humidity: 70, Rain: true, WindSpeedKmh: 12},
			{Date: "2025-07-02", Description: "snow", TempMin: 9, TempMax: 17, Humidity: 65, Snow: true, WindSpeedKmh: 10},
		},
	}

	context := ComposeContext(testTrip(), weather)

	if !strings.Contains(context, "Destination: Zurich, CH") {
		t.Error("context missing destination")
	}
	if !strings.Contains(context, "Dates: 2025-07-01 to 2025-07-05 (5 days)") {
		t.Errorf("context missing inclusive duration:\n%s", context)
	}
	if !strings.Contains(context, "Camping tent (no amenities, bring everything)") {
		t.Error("context missing accommodation label")
	}
	if !strings.Contains(context, "Intense (mountaineering, multi-day trekking, water sports)") {
		t.Error("context missing activity label")
	}
	if !strings.Contains(context, "• 2025-07-01: light rain, 8–15°C, humidity 70%, wind 12 km/h, RAIN") {
		t.Errorf("context missing rain day bullet:\n%s", context)
	}
	if !strings.Contains(context, ", SNOW") {
		t.Error("context missing snow marker")
	}
	if !strings.Contains(context, weather.Summary) {
		t.Error("context missing forecast summary")
	}
}

func TestComposeContextWithoutWeather(t *testing.T) {
	context := ComposeContext(testTrip(), nil)

	if !strings.Contains(context, "Not available — use destination climate knowledge.") {
		t.Errorf("context missing unavailable notice:\n%s", context)
	}
	if strings.Contains(context, "Detailed days") {
		t.Error("context must not contain day bullets without weather")
	}
}

func TestComposeContextSingleDayUsesSingular(t *testing.T) {
	trip := testTrip()
	trip.StartDate = "2025-07-01"
	trip.EndDate = "2025-07-01"

	context := ComposeContext(trip, nil)

	if !strings.Contains(context, "(1 day)") {
		t.Errorf("expected singular day count:\n%s", context)
	}
}

func TestComposeContextFallsBackToRawLabels(t *testing.T) {
	trip := testTrip()
	trip.Accommodation = "treehouse"
	trip.ActivityLevel = "extreme"

	context := ComposeContext(trip, nil)

	if !strings.Contains(context, "Accommodation: treehouse") {
		t.Error("expected raw accommodation fallback")
	}
	if !strings.Contains(context, "Activity Level: extreme") {
		t.Error("expected raw activity fallback")
	}
}
