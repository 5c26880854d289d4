package db

import (
	"packmate-api/internal/domain/entity"
)

// TemplateGateway defines persistence operations for reusable list templates.
type TemplateGateway interface {
	FindAllByUser(userID string, offset int, limit int) ([]entity.Template, error)
	CountByUser(userID string) (int64, error)
	FindByIDAndUser(id string, userID string) (*entity.Template, error)

	Create(template entity.Template) (*entity.Template, error)
	UpdateByIDAndUser(id string, userID string, updated entity.Template) (*entity.Template, error)
	DeleteByIDAndUser(id string, userID string) error
}
