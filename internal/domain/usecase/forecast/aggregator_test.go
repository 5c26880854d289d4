package forecast

import (
	"strings"
	"testing"

	"packmate-api/internal/domain/model/external"
)

func slot(dtTxt string, tempMin, tempMax, humidity, wind float64, main, description string, rain, snow *external.ForecastVolume) external.ForecastSlot {
	return external.ForecastSlot{
		Main:    external.ForecastMain{TempMin: tempMin, TempMax: tempMax, Humidity: humidity},
		Weather: []external.ForecastCondition{{Main: main, Description: description}},
		Wind:    external.ForecastWind{Speed: wind},
		Rain:    rain,
		Snow:    snow,
		DtTxt:   dtTxt,
	}
}

func response(city, country string, slots ...external.ForecastSlot) *external.ForecastResponse {
	return &external.ForecastResponse{
		City: external.ForecastCity{Name: city, Country: country},
		List: slots,
	}
}

func TestAggregateGroupsSlotsByDay(t *testing.T) {
	resp := response("Zurich", "CH",
		slot("2025-07-01 09:00:00", 10.4, 14.4, 60, 2.0, "Clouds", "scattered clouds", nil, nil),
		slot("2025-07-01 12:00:00", 11.6, 16.6, 70, 3.0, "Rain", "light rain", &external.ForecastVolume{ThreeHours: 0.3}, nil),
		slot("2025-07-02 09:00:00", 8.0, 12.0, 80, 5.0, "Clear", "clear sky", nil, nil),
	)

	ctx := Aggregate(resp, "2025-07-01", "2025-07-02")

	if len(ctx.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(ctx.Days))
	}
	if ctx.Location != "Zurich, CH" {
		t.Errorf("unexpected location %q", ctx.Location)
	}

	day := ctx.Days[0]
	if day.Date != "2025-07-01" {
		t.Errorf("expected first day 2025-07-01, got %s", day.Date)
	}
	if day.TempMin != 10 || day.TempMax != 17 {
		t.Errorf("expected temps 10/17, got %d/%d", day.TempMin, day.TempMax)
	}
	if day.Humidity != 65 {
		t.Errorf("expected humidity 65, got %d", day.Humidity)
	}
	// mean wind 2.5 m/s is 9 km/h
	if day.WindSpeedKmh != 9 {
		t.Errorf("expected wind 9 km/h, got %d", day.WindSpeedKmh)
	}
	// middle slot of two is the second one
	if day.Description != "light rain" {
		t.Errorf("expected middle slot description, got %q", day.Description)
	}
	if !day.Rain {
		t.Error("expected rain to be detected")
	}
	if day.Snow {
		t.Error("did not expect snow")
	}
}

func TestAggregateDetectsRainFromConditionWithoutVolume(t *testing.T) {
	resp := response("Bergen", "NO",
		slot("2025-03-10 12:00:00", 4, 6, 90, 4.0, "Rain", "moderate rain", nil, nil),
	)

	ctx := Aggregate(resp, "2025-03-10", "2025-03-10")

	if !ctx.Days[0].Rain {
		t.Error("expected rain from condition main even without volume")
	}
}

func TestAggregateInvariants(t *testing.T) {
	resp := response("Oslo", "NO",
		slot("2025-01-05 00:00:00", -3.7, -1.2, 85, 7.0, "Snow", "light snow", nil, &external.ForecastVolume{ThreeHours: 1.1}),
		slot("2025-01-05 03:00:00", -6.4, -2.9, 88, 9.0, "Snow", "snow", nil, &external.ForecastVolume{ThreeHours: 2.0}),
	)

	ctx := Aggregate(resp, "2025-01-05", "2025-01-06")

	for _, day := range ctx.Days {
		if day.TempMin > day.TempMax {
			t.Errorf("day %s: tempMin %d > tempMax %d", day.Date, day.TempMin, day.TempMax)
		}
		if day.Humidity < 0 || day.WindSpeedKmh < 0 {
			t.Errorf("day %s: negative humidity or wind", day.Date)
		}
	}
	if !ctx.Days[0].Snow {
		t.Error("expected snow to be detected")
	}
}

func TestAggregateRangeFilterIsInclusive(t *testing.T) {
	resp := response("Lisbon", "PT",
		slot("2025-06-01 12:00:00", 18, 24, 50, 3.0, "Clear", "clear sky", nil, nil),
		slot("2025-06-02 12:00:00", 19, 25, 55, 3.0, "Clear", "clear sky", nil, nil),
		slot("2025-06-03 12:00:00", 20, 26, 52, 3.0, "Clear", "clear sky", nil, nil),
	)

	ctx := Aggregate(resp, "2025-06-02", "2025-06-02")

	if len(ctx.Days) != 1 || ctx.Days[0].Date != "2025-06-02" {
		t.Fatalf("expected only 2025-06-02, got %v", ctx.Days)
	}
}

func TestAggregateFallsBackToFirstThreeDays(t *testing.T) {
	resp := response("Lisbon", "PT",
		slot("2025-06-01 12:00:00", 18, 24, 50, 3.0, "Clear", "clear sky", nil, nil),
		slot("2025-06-02 12:00:00", 19, 25, 55, 3.0, "Clear", "clear sky", nil, nil),
		slot("2025-06-03 12:00:00", 20, 26, 52, 3.0, "Clear", "clear sky", nil, nil),
		slot("2025-06-04 12:00:00", 21, 27, 48, 3.0, "Clear", "clear sky", nil, nil),
	)

	// trip is far beyond the provider's horizon
	ctx := Aggregate(resp, "2025-09-01", "2025-09-05")

	if len(ctx.Days) != 3 {
		t.Fatalf("expected fallback of 3 days, got %d", len(ctx.Days))
	}
	for i, date := range []string{"2025-06-01", "2025-06-02", "2025-06-03"} {
		if ctx.Days[i].Date != date {
			t.Errorf("expected day %d to be %s, got %s", i, date, ctx.Days[i].Date)
		}
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	ctx := Aggregate(response("Nowhere", "XX"), "2025-01-01", "2025-01-02")

	if len(ctx.Days) != 0 {
		t.Fatalf("expected no days, got %d", len(ctx.Days))
	}
	if ctx.Summary != "Weather data unavailable for Nowhere." {
		t.Errorf("unexpected summary %q", ctx.Summary)
	}
}

func TestBuildSummaryConditions(t *testing.T) {
	resp := response("Reykjavik", "IS",
		slot("2025-02-01 12:00:00", -2, 3, 80, 11.0, "Rain", "sleet", &external.ForecastVolume{ThreeHours: 0.5}, nil),
		slot("2025-02-02 12:00:00", -5, -1, 85, 12.0, "Snow", "snow", nil, &external.ForecastVolume{ThreeHours: 1.0}),
	)

	ctx := Aggregate(resp, "2025-02-01", "2025-02-02")

	if !strings.Contains(ctx.Summary, "rain expected") {
		t.Errorf("summary missing rain clause: %q", ctx.Summary)
	}
	if !strings.Contains(ctx.Summary, "snow expected") {
		t.Errorf("summary missing snow clause: %q", ctx.Summary)
	}
	if !strings.Contains(ctx.Summary, "strong winds") {
		t.Errorf("summary missing wind clause: %q", ctx.Summary)
	}
	if !strings.Contains(ctx.Summary, "2 day(s) of data available.") {
		t.Errorf("summary missing day count: %q", ctx.Summary)
	}
}

func TestBuildSummaryDefaultClause(t *testing.T) {
	resp := response("Lisbon", "PT",
		slot("2025-06-01 12:00:00", 18, 24, 50, 3.0, "Clear", "clear sky", nil, nil),
	)

	ctx := Aggregate(resp, "2025-06-01", "2025-06-01")

	want := "Forecast for Lisbon, PT: temperature range 18–24°C. Conditions: mostly clear/cloudy. 1 day(s) of data available."
	if ctx.Summary != want {
		t.Errorf("summary mismatch:\n got %q\nwant %q", ctx.Summary, want)
	}
}
