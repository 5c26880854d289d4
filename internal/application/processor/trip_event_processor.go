package processor

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"packmate-api/internal/domain/model"
	"packmate-api/internal/domain/usecase/forecast"
	"packmate-api/pkg/log"
)

type TripEventProcessor struct {
	forecastUseCase forecast.UseCase
}

func NewTripEventProcessor(forecastUseCase forecast.UseCase) *TripEventProcessor {
	return &TripEventProcessor{
		forecastUseCase: forecastUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface. It warms the forecast
// cache for the stored trip so a regeneration hits the cache.
func (p *TripEventProcessor) HandleMessage(msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	log.Infof("Processing trip event message: %s", *msg.MessageId)

	var event model.TripEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	if err := p.forecastUseCase.WarmCache(event.Location, event.StartDate, event.EndDate); err != nil {
		return fmt.Errorf("failed to warm forecast cache for %s: %w", event.Location, err)
	}

	log.Infof("Successfully warmed forecast cache for trip: %s", event.TripID)
	return nil
}
