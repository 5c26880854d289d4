package model

import "packmate-api/internal/domain/entity"

// CreateTripDTO is the inbound payload for creating a trip without a packing list.
type CreateTripDTO struct {
	Location      string `json:"location" validate:"required"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate" validate:"required"`
	Accommodation string `json:"accommodation" validate:"required"`
	ActivityLevel string `json:"activityLevel" validate:"required"`
}

// TripInput returns the trip entity described by the payload.
func (dto CreateTripDTO) TripInput() entity.Trip {
	return entity.Trip{
		Location:      dto.Location,
		StartDate:     dto.StartDate,
		EndDate:       dto.EndDate,
		Accommodation: dto.Accommodation,
		ActivityLevel: dto.ActivityLevel,
	}
}

// UpdatePackingListDTO is the inbound payload for editing a stored packing list.
// Unlike generated output, edits are validated strictly: every quantity must
// be an integer >= 1.
type UpdatePackingListDTO struct {
	Content entity.PackingListContent `json:"content" validate:"required"`
}

// CreateTemplateDTO is the inbound payload for creating a list template.
type CreateTemplateDTO struct {
	Name    string                    `json:"name" validate:"required"`
	Content entity.PackingListContent `json:"content" validate:"required"`
}

// UpdateTemplateDTO is the inbound payload for renaming or replacing a template.
type UpdateTemplateDTO struct {
	Name    string                    `json:"name" validate:"required"`
	Content entity.PackingListContent `json:"content" validate:"required"`
}
