package trip

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"packmate-api/internal/domain/entity"
	"packmate-api/internal/domain/gateway/db"
	"packmate-api/internal/domain/model"
)

type tripUseCase struct {
	dbGateway db.TripGateway
}

func NewTripUseCase(dbGateway db.TripGateway) UseCase {
	return &tripUseCase{dbGateway: dbGateway}
}

// CreateTrip stores a trip without a packing list.
func (uc *tripUseCase) CreateTrip(userID string, dto model.CreateTripDTO) (*entity.Trip, error) {
	if err := model.ValidateTripFields(dto.Location, dto.StartDate, dto.EndDate,
		dto.Accommodation, dto.ActivityLevel); err != nil {
		return nil, err
	}

	trip := dto.TripInput()
	trip.UserID = userID

	saved, err := uc.dbGateway.Create(trip)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	return saved, nil
}

// FindAllTrips returns one page of the user's trips, newest first.
func (uc *tripUseCase) FindAllTrips(userID string, page int, size int) (*model.Page[entity.Trip], error) {
	trips, totalElements, err := uc.fetchTripsAndCountInParallel(userID, page, size)
	if err != nil {
		return nil, err
	}

	return model.NewPage(trips, page, size, totalElements), nil
}

func (uc *tripUseCase) fetchTripsAndCountInParallel(userID string, page int, size int) ([]entity.Trip, int64, error) {
	var wg sync.WaitGroup
	var trips []entity.Trip
	var totalElements int64
	var tripsErr, countErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		trips, tripsErr = uc.dbGateway.FindAllByUser(userID, page, size)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		totalElements, countErr = uc.dbGateway.CountByUser(userID)
	}()

	wg.Wait()

	if tripsErr != nil {
		return nil, 0, fmt.Errorf("failed to find trips: %w", tripsErr)
	}
	if countErr != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", countErr)
	}

	return trips, totalElements, nil
}

func (uc *tripUseCase) FindTripByID(id string, userID string) (*entity.Trip, error) {
	trip, err := uc.dbGateway.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find trip: %w", err)
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// UpdatePackingList replaces a trip's list content after enforcing the
// strict inbound schema.
func (uc *tripUseCase) UpdatePackingList(tripID string, userID string, dto model.UpdatePackingListDTO) (*entity.PackingList, error) {
	if err := model.ValidateContent(dto.Content); err != nil {
		return nil, err
	}

	packingList, err := uc.dbGateway.UpdatePackingList(tripID, userID, dto.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to update packing list: %w", err)
	}
	if packingList == nil {
		return nil, ErrTripNotFound
	}
	return packingList, nil
}

func (uc *tripUseCase) DeleteTrip(id string, userID string) error {
	err := uc.dbGateway.DeleteByIDAndUser(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTripNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}
