package health

import "packmate-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
