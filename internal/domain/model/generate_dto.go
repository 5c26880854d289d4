package model

import "packmate-api/internal/domain/entity"

// GenerateRequestDTO is the inbound payload of the packing list generation endpoint.
type GenerateRequestDTO struct {
	Location      string `json:"location" validate:"required"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate" validate:"required"`
	Accommodation string `json:"accommodation" validate:"required"`
	ActivityLevel string `json:"activityLevel" validate:"required"`
	Save          bool   `json:"save"`
}

// TripInput returns the trip fields of the request without the persistence flag.
func (dto GenerateRequestDTO) TripInput() entity.Trip {
	return entity.Trip{
		Location:      dto.Location,
		StartDate:     dto.StartDate,
		EndDate:       dto.EndDate,
		Accommodation: dto.Accommodation,
		ActivityLevel: dto.ActivityLevel,
	}
}

// GenerationResult is the outcome of one generation pipeline run.
// Weather is nil when the forecast step degraded; Trip is non-nil only when
// persistence was requested and succeeded.
type GenerationResult struct {
	PackingList entity.PackingListContent `json:"packingList"`
	Weather     *entity.ForecastContext   `json:"weather"`
	Trip        *entity.Trip              `json:"trip,omitempty"`
}
