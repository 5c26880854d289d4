package db

import "packmate-api/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
