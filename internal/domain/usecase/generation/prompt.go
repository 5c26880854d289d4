package generation

import (
	"fmt"
	"strings"
	"time"

	"packmate-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// systemInstructions is the fixed directive sent on every generation call.
// The variable trip context never leaks into it.
const systemInstructions = `You are PackMate AI, an expert travel assistant that generates personalized packing lists.

TASK
Generate a comprehensive, context-aware packing list for the trip described by the user.

OUTPUT FORMAT — respond ONLY with a single valid JSON object, no markdown fences, no explanation.
The JSON must be an object mapping category names to item arrays:
{
  "Category Name": [
    { "name": "Item name (concise, 1-4 words)", "quantity": 1, "packed": false }
  ]
}

RULES
- Categories must be Title Case strings (e.g. "Clothing", "Toiletries", "Electronics").
- Include 6–12 relevant categories; each category must have 3–12 items.
- Quantities must be realistic numbers (≥ 1); packed is always false in generated lists.
- Adapt items to the weather (rain → umbrella/raincoat; cold → layers; heat → sun protection).
- Adapt items to accommodation (tent → sleeping bag, camp stove; hotel → fewer bulky items).
- Adapt items to activity level (intense → sport gear, first aid; light → casual clothes).
- Do NOT add items irrelevant to the trip context.
- Do NOT wrap the JSON in code blocks or add any surrounding text.`

var accommodationLabels = map[string]string{
	entity.AccommodationHotel:  "Hotel (comfort, amenities provided)",
	entity.AccommodationHostel: "Hostel (shared dorms, bring padlock/towel)",
	entity.AccommodationAirbnb: "Airbnb / apartment (self-catering)",
	entity.AccommodationTent:   "Camping tent (no amenities, bring everything)",
	entity.AccommodationOther:  "Other accommodation",
}

var activityLabels = map[string]string{
	entity.ActivityLight:    "Light (sightseeing, leisure, restaurants)",
	entity.ActivityModerate: "Moderate (day hikes, cycling, city walks)",
	entity.ActivityIntense:  "Intense (mountaineering, multi-day trekking, water sports)",
}

// Instructions returns the fixed system directive.
func Instructions() string {
	return systemInstructions
}

// ComposeContext renders the variable user context for one trip. A nil
// weather context produces an explicit not-available notice instead of
// being silently omitted.
func ComposeContext(trip entity.Trip, weather *entity.ForecastContext) string {
	duration := durationDays(trip.StartDate, trip.EndDate)
	dayWord := "days"
	if duration == 1 {
		dayWord = "day"
	}

	accommodation, ok := accommodationLabels[trip.Accommodation]
	if !ok {
		accommodation = trip.Accommodation
	}
	activity, ok := activityLabels[trip.ActivityLevel]
	if !ok {
		activity = trip.ActivityLevel
	}

	var builder strings.Builder
	builder.WriteString("TRIP DETAILS\n")
	fmt.Fprintf(&builder, "Destination: %s\n", trip.Location)
	fmt.Fprintf(&builder, "Dates: %s to %s (%d %s)\n", trip.StartDate, trip.EndDate, duration, dayWord)
	fmt.Fprintf(&builder, "Accommodation: %s\n", accommodation)
	fmt.Fprintf(&builder, "Activity Level: %s\n", activity)
	builder.WriteString("\n")
	builder.WriteString(weatherSection(weather))
	builder.WriteString("\n\nGenerate the packing list JSON now.")

	return builder.String()
}

func weatherSection(weather *entity.ForecastContext) string {
	if weather == nil {
		return "WEATHER FORECAST\nNot available — use destination climate knowledge."
	}

	var builder strings.Builder
	builder.WriteString("WEATHER FORECAST\n")
	builder.WriteString(weather.Summary)
	builder.WriteString("\nDetailed days:")
	for _, day := range weather.Days {
		fmt.Fprintf(&builder, "\n  • %s: %s, %d–%d°C, humidity %d%%, wind %d km/h",
			day.Date, day.Description, day.TempMin, day.TempMax, day.Humidity, day.WindSpeedKmh)
		if day.Rain {
			builder.WriteString(", RAIN")
		}
		if day.Snow {
			builder.WriteString(", SNOW")
		}
	}
	return builder.String()
}

// durationDays is the inclusive day count of the trip. Dates are validated
// upstream; an unparseable date degrades to a single-day trip.
func durationDays(startDate string, endDate string) int {
	start, startErr := time.Parse(dateLayout, startDate)
	end, endErr := time.Parse(dateLayout, endDate)
	if startErr != nil || endErr != nil {
		return 1
	}
	return int(end.Sub(start).Hours()/24) + 1
}
