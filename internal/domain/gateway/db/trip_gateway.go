package db

import (
	"packmate-api/internal/domain/entity"
)

// TripGateway defines trip and packing list persistence operations.
// All reads and writes are scoped to the owning user.
type TripGateway interface {
	FindAllByUser(userID string, page int, size int) ([]entity.Trip, error)
	CountByUser(userID string) (int64, error)
	FindByIDAndUser(id string, userID string) (*entity.Trip, error)

	// Create stores a trip without a packing list and returns the stored trip.
	Create(trip entity.Trip) (*entity.Trip, error)

	// CreateWithPackingList stores a trip together with its generated packing
	// list in a single transaction and returns the stored trip.
	CreateWithPackingList(trip entity.Trip, content entity.PackingListContent) (*entity.Trip, error)

	UpdatePackingList(tripID string, userID string, content entity.PackingListContent) (*entity.PackingList, error)
	DeleteByIDAndUser(id string, userID string) error
}
