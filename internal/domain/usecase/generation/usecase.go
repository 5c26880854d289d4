package generation

import "packmate-api/internal/domain/model"

type UseCase interface {
	// Generate runs the full pipeline for one trip request and returns the
	// validated packing list, the weather context used (nil when degraded)
	// and, when persistence was requested, the stored trip.
	Generate(userID string, request model.GenerateRequestDTO) (*model.GenerationResult, error)
}
