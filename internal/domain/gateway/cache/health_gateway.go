package cache

import "packmate-api/internal/domain/model"

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
