package generation

import (
	"go.uber.org/zap"

	"packmate-api/internal/domain/entity"
	"packmate-api/internal/domain/gateway/api"
	"packmate-api/internal/domain/gateway/db"
	"packmate-api/internal/domain/gateway/queue"
	"packmate-api/internal/domain/model"
	"packmate-api/internal/domain/usecase/forecast"
	"packmate-api/pkg/log"
)

type generationUseCase struct {
	queueName       string
	forecastUseCase forecast.UseCase
	apiGateway      api.GenerationGateway
	dbGateway       db.TripGateway
	queueSender     queue.Sender
}

func NewGenerationUseCase(queueName string, forecastUseCase forecast.UseCase, apiGateway api.GenerationGateway, dbGateway db.TripGateway, queueSender queue.Sender) UseCase {
	return &generationUseCase{
		queueName:       queueName,
		forecastUseCase: forecastUseCase,
		apiGateway:      apiGateway,
		dbGateway:       dbGateway,
		queueSender:     queueSender,
	}
}

// Generate validates the request, gathers weather context on a best-effort
// basis and runs one generation round trip. Only the forecast step is
// allowed to degrade; every other failure aborts the pipeline.
func (uc *generationUseCase) Generate(userID string, request model.GenerateRequestDTO) (*model.GenerationResult, error) {
	if err := validateRequest(userID, request); err != nil {
		return nil, err
	}

	trip := request.TripInput()
	trip.UserID = userID

	weather, err := uc.forecastUseCase.GetForecast(trip.Location, trip.StartDate, trip.EndDate)
	if err != nil {
		log.Warn("Proceeding without weather context",
			zap.String("location", trip.Location), zap.Error(err))
		weather = nil
	}

	raw, err := uc.apiGateway.Complete(Instructions(), ComposeContext(trip, weather))
	if err != nil {
		return nil, err
	}

	content, err := ValidateResponse(raw)
	if err != nil {
		return nil, err
	}

	result := &model.GenerationResult{
		PackingList: content,
		Weather:     weather,
	}

	if request.Save {
		trip.WeatherContext = weather
		saved, err := uc.dbGateway.CreateWithPackingList(trip, content)
		if err != nil {
			return nil, err
		}
		result.Trip = saved
		uc.publishTripEvent(saved)
	}

	return result, nil
}

// publishTripEvent notifies downstream consumers of a newly stored trip.
// Delivery is best effort; the generated list was already produced.
func (uc *generationUseCase) publishTripEvent(trip *entity.Trip) {
	if uc.queueSender == nil || uc.queueName == "" {
		return
	}

	event := model.TripEvent{
		TripID:    trip.ID,
		UserID:    trip.UserID,
		Location:  trip.Location,
		StartDate: trip.StartDate,
		EndDate:   trip.EndDate,
	}
	if err := uc.queueSender.SendMessage(uc.queueName, event); err != nil {
		log.Warn("Failed to publish trip event",
			zap.String("trip_id", trip.ID), zap.Error(err))
	}
}

func validateRequest(userID string, request model.GenerateRequestDTO) error {
	if err := model.ValidateTripFields(request.Location, request.StartDate, request.EndDate,
		request.Accommodation, request.ActivityLevel); err != nil {
		return err
	}
	if request.Save && userID == "" {
		return &model.InputValidationError{Field: "userId", Message: "identity is required to save a trip"}
	}
	return nil
}
