package template

import (
	"errors"

	"packmate-api/internal/domain/entity"
	"packmate-api/internal/domain/model"
)

// ErrTemplateNotFound is returned when a template does not exist or belongs
// to another user.
var ErrTemplateNotFound = errors.New("template not found")

type UseCase interface {
	FindAllTemplates(userID string, page int, size int) (*model.Page[entity.Template], error)
	FindTemplateByID(id string, userID string) (*entity.Template, error)
	CreateTemplate(userID string, dto model.CreateTemplateDTO) (*entity.Template, error)
	UpdateTemplate(id string, userID string, dto model.UpdateTemplateDTO) (*entity.Template, error)
	DeleteTemplate(id string, userID string) error
}
