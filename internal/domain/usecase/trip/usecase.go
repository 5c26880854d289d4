package trip

import (
	"errors"

	"packmate-api/internal/domain/entity"
	"packmate-api/internal/domain/model"
)

// ErrTripNotFound is returned when a trip does not exist or belongs to
// another user.
var ErrTripNotFound = errors.New("trip not found")

type UseCase interface {
	CreateTrip(userID string, dto model.CreateTripDTO) (*entity.Trip, error)
	FindAllTrips(userID string, page int, size int) (*model.Page[entity.Trip], error)
	FindTripByID(id string, userID string) (*entity.Trip, error)
	UpdatePackingList(tripID string, userID string, dto model.UpdatePackingListDTO) (*entity.PackingList, error)
	DeleteTrip(id string, userID string) error
}
