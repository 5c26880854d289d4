package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DayForecast is one calendar day's aggregated weather. All numeric values
// are already rounded; temperatures are Celsius and wind speed is km/h.
type DayForecast struct {
	Date         string `json:"date"`
	Description  string `json:"description"`
	TempMin      int    `json:"tempMin"`
	TempMax      int    `json:"tempMax"`
	Humidity     int    `json:"humidity"`
	Rain         bool   `json:"rain"`
	Snow         bool   `json:"snow"`
	WindSpeedKmh int    `json:"windSpeedKmh"`
}

// ForecastContext is the day-level forecast handed to the prompt composer.
// Summary is derived from Days and carries no independent information.
type ForecastContext struct {
	Location string        `json:"location"`
	Days     []DayForecast `json:"days"`
	Summary  string        `json:"summary"`
}

// Value implements driver.Valuer so a weather snapshot can be stored
// alongside a trip in a jsonb column.
func (f ForecastContext) Value() (driver.Value, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for reading a weather snapshot back.
func (f *ForecastContext) Scan(value any) error {
	if value == nil {
		*f = ForecastContext{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("unsupported type %T for forecast context", value)
	}
}
