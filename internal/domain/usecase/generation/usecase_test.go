package generation

import (
	"errors"
	"strings"
	"testing"

	"packmate-api/internal/domain/entity"
	"packmate-api/internal/domain/gateway/queue"
	"packmate-api/internal/domain/model"
)

type fakeForecastUseCase struct {
	context *entity.ForecastContext
	err     error
}

func (f *fakeForecastUseCase) GetForecast(location string, startDate string, endDate string) (*entity.ForecastContext, error) {
	return f.context, f.err
}

func (f *fakeForecastUseCase) WarmCache(location string, startDate string, endDate string) error {
	return f.err
}

type fakeGenerationGateway struct {
	raw          string
	err          error
	calls        int
	instructions string
	context      string
}

func (f *fakeGenerationGateway) Complete(instructions string, context string) (string, error) {
	f.calls++
	f.instructions = instructions
	f.context = context
	if f.err != nil {
		return "", f.err
	}
	return f.raw, nil
}

type fakeTripGateway struct {
	created *entity.Trip
	content entity.PackingListContent
	err     error
}

func (f *fakeTripGateway) FindAllByUser(userID string, page int, size int) ([]entity.Trip, error) {
	return nil, nil
}

func (f *fakeTripGateway) CountByUser(userID string) (int64, error) {
	return 0, nil
}

func (f *fakeTripGateway) FindByIDAndUser(id string, userID string) (*entity.Trip, error) {
	return nil, nil
}

func (f *fakeTripGateway) Create(trip entity.Trip) (*entity.Trip, error) {
	return &trip, nil
}

func (f *fakeTripGateway) CreateWithPackingList(trip entity.Trip, content entity.PackingListContent) (*entity.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	trip.ID = "trip-1"
	f.created = &trip
	f.content = content
	return &trip, nil
}

func (f *fakeTripGateway) UpdatePackingList(tripID string, userID string, content entity.PackingListContent) (*entity.PackingList, error) {
	return nil, nil
}

func (f *fakeTripGateway) DeleteByIDAndUser(id string, userID string) error {
	return nil
}

type fakeQueueSender struct {
	queueName string
	body      any
	calls     int
}

func (f *fakeQueueSender) SendMessage(queueName string, body any) error {
	f.calls++
	f.queueName = queueName
	f.body = body
	return nil
}

func (f *fakeQueueSender) SendMessageBatch(queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	return &queue.BatchResult{}, nil
}

const zurichList = `{
	"Clothing": [
		{"name": "Hiking pants", "quantity": 2},
		{"name": "Rain jacket", "quantity": 1},
		{"name": "Wool socks", "quantity": 5}
	],
	"Camping": [
		{"name": "Sleeping bag", "quantity": 1},
		{"name": "Camp stove", "quantity": 1},
		{"name": "Headlamp", "quantity": 1}
	]
}`

func zurichWeather() *entity.ForecastContext {
	return &entity.ForecastContext{
		Location: "Zurich, CH",
		Summary:  "Forecast for Zurich, CH: temperature range 8–17°C. Conditions: rain expected. 3 day(s) of data available.",
		Days: []entity.DayForecast{
			{Date: "2025-07-01", Description: "light rain", TempMin: 8, TempMax: 15, Humidity: 70, Rain: true, WindSpeedKmh: 12},
			{Date: "2025-07-02", Description: "scattered clouds", TempMin: 10, TempMax: 17, Humidity: 60, WindSpeedKmh: 9},
		},
	}
}

func zurichRequest() model.GenerateRequestDTO {
	return model.GenerateRequestDTO{
		Location:      "Zurich, CH",
		StartDate:     "2025-07-01",
		EndDate:       "2025-07-05",
		Accommodation: entity.AccommodationTent,
		ActivityLevel: entity.ActivityIntense,
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	forecastFake := &fakeForecastUseCase{context: zurichWeather()}
	gatewayFake := &fakeGenerationGateway{raw: zurichList}
	tripFake := &fakeTripGateway{}
	senderFake := &fakeQueueSender{}

	useCase := NewGenerationUseCase("trip-events", forecastFake, gatewayFake, tripFake, senderFake)

	result, err := useCase.Generate("user-1", zurichRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(gatewayFake.context, "RAIN") {
		t.Error("composed context missing RAIN marker")
	}
	if !strings.Contains(gatewayFake.context, "Camping tent") {
		t.Error("composed context missing accommodation label")
	}
	if _, ok := result.PackingList.Category("Camping"); !ok {
		t.Error("generated list missing Camping category")
	}
	for _, category := range result.PackingList {
		for _, item := range category.Items {
			if item.Packed {
				t.Errorf("item %q not normalized to packed=false", item.Name)
			}
		}
	}
	if result.Weather == nil || result.Weather.Location != "Zurich, CH" {
		t.Error("weather context not returned")
	}
	if result.Trip != nil {
		t.Error("trip persisted without save flag")
	}
	if senderFake.calls != 0 {
		t.Error("trip event published without save flag")
	}
}

func TestGenerateDegradesWhenForecastUnavailable(t *testing.T) {
	forecastFake := &fakeForecastUseCase{err: &model.ForecastUnavailable{Location: "Zurich, CH", Cause: errors.New("timeout")}}
	gatewayFake := &fakeGenerationGateway{raw: zurichList}

	useCase := NewGenerationUseCase("trip-events", forecastFake, gatewayFake, &fakeTripGateway{}, &fakeQueueSender{})

	result, err := useCase.Generate("user-1", zurichRequest())
	if err != nil {
		t.Fatalf("forecast failure must not abort the pipeline: %v", err)
	}

	if !strings.Contains(gatewayFake.context, "Not available — use destination climate knowledge.") {
		t.Error("composed context missing unavailable notice")
	}
	if result.Weather != nil {
		t.Error("expected nil weather after degrade")
	}
}

func TestGenerateValidatesInputBeforeAnyCall(t *testing.T) {
	cases := map[string]struct {
		mutate func(*model.GenerateRequestDTO)
		field  string
	}{
		"short location":  {func(r *model.GenerateRequestDTO) { r.Location = "Z" }, "location"},
		"bad start date":  {func(r *model.GenerateRequestDTO) { r.StartDate = "07/01/2025" }, "startDate"},
		"bad end date":    {func(r *model.GenerateRequestDTO) { r.EndDate = "2025-13-40" }, "endDate"},
		"reversed range":  {func(r *model.GenerateRequestDTO) { r.EndDate = "2025-06-30" }, "endDate"},
		"bad stay":        {func(r *model.GenerateRequestDTO) { r.Accommodation = "igloo" }, "accommodation"},
		"bad activity":    {func(r *model.GenerateRequestDTO) { r.ActivityLevel = "superhuman" }, "activityLevel"},
		"save without id": {func(r *model.GenerateRequestDTO) { r.Save = true }, "userId"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			gatewayFake := &fakeGenerationGateway{raw: zurichList}
			useCase := NewGenerationUseCase("trip-events", &fakeForecastUseCase{}, gatewayFake, &fakeTripGateway{}, &fakeQueueSender{})

			request := zurichRequest()
			tc.mutate(&request)

			_, err := useCase.Generate("", request)

			var inputErr *model.InputValidationError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected InputValidationError, got %v", err)
			}
			if inputErr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, inputErr.Field)
			}
			if gatewayFake.calls != 0 {
				t.Error("generation backend called despite invalid input")
			}
		})
	}
}

func TestGenerateSavePersistsAndPublishes(t *testing.T) {
	tripFake := &fakeTripGateway{}
	senderFake := &fakeQueueSender{}

	useCase := NewGenerationUseCase("trip-events", &fakeForecastUseCase{context: zurichWeather()},
		&fakeGenerationGateway{raw: zurichList}, tripFake, senderFake)

	request := zurichRequest()
	request.Save = true

	result, err := useCase.Generate("user-1", request)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Trip == nil || result.Trip.ID != "trip-1" {
		t.Fatal("expected persisted trip in result")
	}
	if tripFake.created.UserID != "user-1" {
		t.Errorf("trip stored for wrong user %q", tripFake.created.UserID)
	}
	if tripFake.created.WeatherContext == nil {
		t.Error("weather snapshot not stored with trip")
	}
	if tripFake.content.ItemCount() == 0 {
		t.Error("packing list content not stored")
	}
	if senderFake.calls != 1 || senderFake.queueName != "trip-events" {
		t.Errorf("expected one trip event on trip-events, got %d on %q", senderFake.calls, senderFake.queueName)
	}
	event, ok := senderFake.body.(model.TripEvent)
	if !ok || event.TripID != "trip-1" {
		t.Errorf("unexpected event payload %v", senderFake.body)
	}
}

func TestGenerateFailsOnBackendError(t *testing.T) {
	gatewayFake := &fakeGenerationGateway{err: &model.GenerationFailure{}}
	useCase := NewGenerationUseCase("trip-events", &fakeForecastUseCase{}, gatewayFake, &fakeTripGateway{}, &fakeQueueSender{})

	_, err := useCase.Generate("user-1", zurichRequest())

	var generationErr *model.GenerationFailure
	if !errors.As(err, &generationErr) {
		t.Fatalf("expected GenerationFailure, got %v", err)
	}
}

func TestGenerateDoesNotPersistMalformedOutput(t *testing.T) {
	tripFake := &fakeTripGateway{}
	useCase := NewGenerationUseCase("trip-events", &fakeForecastUseCase{},
		&fakeGenerationGateway{raw: "sure! here is your list"}, tripFake, &fakeQueueSender{})

	request := zurichRequest()
	request.Save = true

	_, err := useCase.Generate("user-1", request)

	var malformed *model.MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %v", err)
	}
	if tripFake.created != nil {
		t.Error("trip persisted despite invalid output")
	}
}
