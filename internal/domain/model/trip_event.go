package model

// TripEvent is the queue message published when a trip is stored.
type TripEvent struct {
	TripID    string `json:"tripId"`
	UserID    string `json:"userId"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
