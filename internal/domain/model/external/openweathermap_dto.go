package external

// ForecastResponse represents the 5-day/3-hour forecast response from OpenWeatherMap
type ForecastResponse struct {
	City ForecastCity   `json:"city"`
	List []ForecastSlot `json:"list"`
}

// ForecastCity identifies the resolved location of a forecast response
type ForecastCity struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ForecastSlot represents a single 3-hour forecast reading
type ForecastSlot struct {
	Dt      int64               `json:"dt"`
	Main    ForecastMain        `json:"main"`
	Weather []ForecastCondition `json:"weather"`
	Wind    ForecastWind        `json:"wind"`
	Rain    *ForecastVolume     `json:"rain,omitempty"`
	Snow    *ForecastVolume     `json:"snow,omitempty"`
	DtTxt   string              `json:"dt_txt"`
}

// ForecastMain carries the temperature and humidity readings of a slot
type ForecastMain struct {
	TempMin  float64 `json:"temp_min"`
	TempMax  float64 `json:"temp_max"`
	Humidity float64 `json:"humidity"`
}

// ForecastCondition describes the weather condition of a slot
type ForecastCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// ForecastWind carries the wind reading of a slot; speed is in m/s
type ForecastWind struct {
	Speed float64 `json:"speed"`
}

// ForecastVolume carries a precipitation volume over the 3-hour window
type ForecastVolume struct {
	ThreeHours float64 `json:"3h"`
}

// APIErrorResponse represents error responses from the OpenWeatherMap API
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
