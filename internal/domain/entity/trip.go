package entity

// Accommodation types accepted on trip input.
const (
	AccommodationHotel  = "hotel"
	AccommodationHostel = "hostel"
	AccommodationAirbnb = "airbnb"
	AccommodationTent   = "tent"
	AccommodationOther  = "other"
)

// Activity levels accepted on trip input.
const (
	ActivityLight    = "light"
	ActivityModerate = "moderate"
	ActivityIntense  = "intense"
)

// Trip is a stored trip with its optional weather snapshot and packing list.
// StartDate and EndDate are YYYY-MM-DD strings; EndDate is never before StartDate.
type Trip struct {
	ID             string           `json:"id" gorm:"primaryKey"`
	UserID         string           `json:"userId"`
	Location       string           `json:"location"`
	StartDate      string           `json:"startDate"`
	EndDate        string           `json:"endDate"`
	Accommodation  string           `json:"accommodation"`
	ActivityLevel  string           `json:"activityLevel"`
	WeatherContext *ForecastContext `json:"weatherContext,omitempty" gorm:"type:jsonb"`
	CreatedAt      string           `json:"createdDate"`
	UpdatedAt      string           `json:"updatedDate"`
	PackingList    *PackingList     `json:"packingList,omitempty"`
}

// ValidAccommodation reports whether the given value is a known accommodation type.
func ValidAccommodation(value string) bool {
	switch value {
	case AccommodationHotel, AccommodationHostel, AccommodationAirbnb, AccommodationTent, AccommodationOther:
		return true
	}
	return false
}

// ValidActivityLevel reports whether the given value is a known activity level.
func ValidActivityLevel(value string) bool {
	switch value {
	case ActivityLight, ActivityModerate, ActivityIntense:
		return true
	}
	return false
}
