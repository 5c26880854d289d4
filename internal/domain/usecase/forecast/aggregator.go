package forecast

import (
	"fmt"
	"math"
	"strings"

	"packmate-api/internal/domain/entity"
	"packmate-api/internal/domain/model/external"
)

// fallbackDays is how many leading days are kept when the requested range
// is entirely outside the provider's forecast window.
const fallbackDays = 3

// strongWindKmh is the mean wind speed above which the summary calls out winds.
const strongWindKmh = 30

// Aggregate collapses the provider's 3-hour slots into per-day summaries and
// keeps the days inside [startDate, endDate]. Days keep the order in which
// their first slot appears in the response. When no day falls inside the
// range, the first days of the horizon are kept as a best effort.
func Aggregate(response *external.ForecastResponse, startDate string, endDate string) *entity.ForecastContext {
	type dayGroup struct {
		date  string
		slots []external.ForecastSlot
	}

	groups := make([]*dayGroup, 0)
	index := make(map[string]*dayGroup)
	for _, slot := range response.List {
		date := slotDate(slot.DtTxt)
		group, ok := index[date]
		if !ok {
			group = &dayGroup{date: date}
			index[date] = group
			groups = append(groups, group)
		}
		group.slots = append(group.slots, slot)
	}

	days := make([]entity.DayForecast, 0, len(groups))
	for _, group := range groups {
		days = append(days, aggregateDay(group.date, group.slots))
	}

	filtered := make([]entity.DayForecast, 0, len(days))
	for _, day := range days {
		if day.Date >= startDate && day.Date <= endDate {
			filtered = append(filtered, day)
		}
	}

	relevant := filtered
	if len(relevant) == 0 {
		relevant = days
		if len(relevant) > fallbackDays {
			relevant = relevant[:fallbackDays]
		}
	}

	city := response.City
	return &entity.ForecastContext{
		Location: city.Name + ", " + city.Country,
		Days:     relevant,
		Summary:  buildSummary(relevant, city.Name, city.Country),
	}
}

// aggregateDay reduces one day's slots to a single forecast. The day's
// temperature range pools every slot's min and max reading, humidity and
// wind are slot means, and the description comes from the middle slot.
func aggregateDay(date string, slots []external.ForecastSlot) entity.DayForecast {
	tempMin := math.Inf(1)
	tempMax := math.Inf(-1)
	humiditySum := 0.0
	windSum := 0.0
	rain := false
	snow := false

	for _, slot := range slots {
		tempMin = math.Min(tempMin, math.Min(slot.Main.TempMin, slot.Main.TempMax))
		tempMax = math.Max(tempMax, math.Max(slot.Main.TempMin, slot.Main.TempMax))
		humiditySum += slot.Main.Humidity
		windSum += slot.Wind.Speed

		if volume(slot.Rain) > 0 || condition(slot) == "Rain" {
			rain = true
		}
		if volume(slot.Snow) > 0 || condition(slot) == "Snow" {
			snow = true
		}
	}

	count := float64(len(slots))
	return entity.DayForecast{
		Date:         date,
		Description:  description(slots[len(slots)/2]),
		TempMin:      int(math.Round(tempMin)),
		TempMax:      int(math.Round(tempMax)),
		Humidity:     int(math.Round(humiditySum / count)),
		Rain:         rain,
		Snow:         snow,
		WindSpeedKmh: int(math.Round(windSum / count * 3.6)),
	}
}

// buildSummary renders the one-line digest handed to the prompt composer.
func buildSummary(days []entity.DayForecast, city string, country string) string {
	if len(days) == 0 {
		return fmt.Sprintf("Weather data unavailable for %s.", city)
	}

	overallMin := days[0].TempMin
	overallMax := days[0].TempMax
	hasRain := false
	hasSnow := false
	windSum := 0

	for _, day := range days {
		if day.TempMin < overallMin {
			overallMin = day.TempMin
		}
		if day.TempMax > overallMax {
			overallMax = day.TempMax
		}
		hasRain = hasRain || day.Rain
		hasSnow = hasSnow || day.Snow
		windSum += day.WindSpeedKmh
	}
	avgWind := int(math.Round(float64(windSum) / float64(len(days))))

	conditions := make([]string, 0, 3)
	if hasRain {
		conditions = append(conditions, "rain expected")
	}
	if hasSnow {
		conditions = append(conditions, "snow expected")
	}
	if avgWind > strongWindKmh {
		conditions = append(conditions, fmt.Sprintf("strong winds (~%d km/h)", avgWind))
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "mostly clear/cloudy")
	}

	return fmt.Sprintf("Forecast for %s, %s: temperature range %d–%d°C. Conditions: %s. %d day(s) of data available.",
		city, country, overallMin, overallMax, strings.Join(conditions, ", "), len(days))
}

func slotDate(dtTxt string) string {
	if idx := strings.IndexByte(dtTxt, ' '); idx >= 0 {
		return dtTxt[:idx]
	}
	return dtTxt
}

func volume(v *external.ForecastVolume) float64 {
	if v == nil {
		return 0
	}
	return v.ThreeHours
}

func condition(slot external.ForecastSlot) string {
	if len(slot.Weather) == 0 {
		return ""
	}
	return slot.Weather[0].Main
}

func description(slot external.ForecastSlot) string {
	if len(slot.Weather) == 0 {
		return ""
	}
	return slot.Weather[0].Description
}
