package trip

import (
	"errors"
	"testing"

	"packmate-api/internal/domain/entity"
	"packmate-api/internal/domain/model"
)

type fakeTripGateway struct {
	trips   []entity.Trip
	updated *entity.PackingListContent
}

func (f *fakeTripGateway) FindAllByUser(userID string, page int, size int) ([]entity.Trip, error) {
	return f.trips, nil
}

func (f *fakeTripGateway) CountByUser(userID string) (int64, error) {
	return int64(len(f.trips)), nil
}

func (f *fakeTripGateway) FindByIDAndUser(id string, userID string) (*entity.Trip, error) {
	for i := range f.trips {
		if f.trips[i].ID == id && f.trips[i].UserID == userID {
			return &f.trips[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTripGateway) Create(trip entity.Trip) (*entity.Trip, error) {
	trip.ID = "trip-new"
	f.trips = append(f.trips, trip)
	return &trip, nil
}

func (f *fakeTripGateway) CreateWithPackingList(trip entity.Trip, content entity.PackingListContent) (*entity.Trip, error) {
	return &trip, nil
}

func (f *fakeTripGateway) UpdatePackingList(tripID string, userID string, content entity.PackingListContent) (*entity.PackingList, error) {
	for i := range f.trips {
		if f.trips[i].ID == tripID && f.trips[i].UserID == userID {
			f.updated = &content
			return &entity.PackingList{TripID: tripID, UserID: userID, Content: content}, nil
		}
	}
	return nil, nil
}

func (f *fakeTripGateway) DeleteByIDAndUser(id string, userID string) error {
	return nil
}

func validContent() entity.PackingListContent {
	return entity.PackingListContent{
		{Name: "Clothing", Items: []entity.PackingItem{{Name: "T-shirt", Quantity: 3}}},
	}
}

func TestCreateTripValidatesFields(t *testing.T) {
	gateway := &fakeTripGateway{}
	useCase := NewTripUseCase(gateway)

	created, err := useCase.CreateTrip("user-1", model.CreateTripDTO{
		Location:      "Zurich, CH",
		StartDate:     "2025-07-01",
		EndDate:       "2025-07-05",
		Accommodation: entity.AccommodationHotel,
		ActivityLevel: entity.ActivityModerate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "trip-new" || created.UserID != "user-1" {
		t.Errorf("unexpected stored trip: %+v", created)
	}

	_, err = useCase.CreateTrip("user-1", model.CreateTripDTO{
		Location:      "Zurich, CH",
		StartDate:     "2025-07-05",
		EndDate:       "2025-07-01",
		Accommodation: entity.AccommodationHotel,
		ActivityLevel: entity.ActivityModerate,
	})
	var inputErr *model.InputValidationError
	if !errors.As(err, &inputErr) || inputErr.Field != "endDate" {
		t.Fatalf("expected endDate validation error, got %v", err)
	}
}

func TestUpdatePackingListAcceptsValidContent(t *testing.T) {
	gateway := &fakeTripGateway{trips: []entity.Trip{{ID: "trip-1", UserID: "user-1"}}}
	useCase := NewTripUseCase(gateway)

	packingList, err := useCase.UpdatePackingList("trip-1", "user-1", model.UpdatePackingListDTO{Content: validContent()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if packingList == nil || gateway.updated == nil {
		t.Fatal("content not persisted")
	}
}

func TestUpdatePackingListEnforcesStrictSchema(t *testing.T) {
	cases := map[string]entity.PackingListContent{
		"empty category name": {
			{Name: "", Items: []entity.PackingItem{{Name: "T-shirt", Quantity: 1}}},
		},
		"empty item name": {
			{Name: "Clothing", Items: []entity.PackingItem{{Name: "", Quantity: 1}}},
		},
		"fractional quantity": {
			{Name: "Clothing", Items: []entity.PackingItem{{Name: "T-shirt", Quantity: 1.5}}},
		},
		"zero quantity": {
			{Name: "Clothing", Items: []entity.PackingItem{{Name: "T-shirt", Quantity: 0}}},
		},
		"negative quantity": {
			{Name: "Clothing", Items: []entity.PackingItem{{Name: "T-shirt", Quantity: -2}}},
		},
	}

	gateway := &fakeTripGateway{trips: []entity.Trip{{ID: "trip-1", UserID: "user-1"}}}
	useCase := NewTripUseCase(gateway)

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := useCase.UpdatePackingList("trip-1", "user-1", model.UpdatePackingListDTO{Content: content})

			var inputErr *model.InputValidationError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected InputValidationError, got %v", err)
			}
		})
	}
	if gateway.updated != nil {
		t.Error("invalid content reached the gateway")
	}
}

func TestFindTripByIDScopedToUser(t *testing.T) {
	gateway := &fakeTripGateway{trips: []entity.Trip{{ID: "trip-1", UserID: "user-1"}}}
	useCase := NewTripUseCase(gateway)

	if _, err := useCase.FindTripByID("trip-1", "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := useCase.FindTripByID("trip-1", "someone-else")
	if !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}

func TestUpdatePackingListUnknownTrip(t *testing.T) {
	useCase := NewTripUseCase(&fakeTripGateway{})

	_, err := useCase.UpdatePackingList("missing", "user-1", model.UpdatePackingListDTO{Content: validContent()})
	if !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}

func TestFindAllTripsPagination(t *testing.T) {
	gateway := &fakeTripGateway{trips: []entity.Trip{
		{ID: "trip-1", UserID: "user-1"},
		{ID: "trip-2", UserID: "user-1"},
	}}
	useCase := NewTripUseCase(gateway)

	page, err := useCase.FindAllTrips("user-1", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 2 || page.NumberOfElements != 2 {
		t.Errorf("unexpected page counts: %+v", page)
	}
}
