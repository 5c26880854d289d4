package template

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"packmate-api/internal/domain/entity"
	"packmate-api/internal/domain/gateway/db"
	"packmate-api/internal/domain/model"
)

type templateUseCase struct {
	dbGateway db.TemplateGateway
}

func NewTemplateUseCase(dbGateway db.TemplateGateway) UseCase {
	return &templateUseCase{dbGateway: dbGateway}
}

func (uc *templateUseCase) FindAllTemplates(userID string, page int, size int) (*model.Page[entity.Template], error) {
	var wg sync.WaitGroup
	var templates []entity.Template
	var totalElements int64
	var templatesErr, countErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		templates, templatesErr = uc.dbGateway.FindAllByUser(userID, page*size, size)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		totalElements, countErr = uc.dbGateway.CountByUser(userID)
	}()

	wg.Wait()

	if templatesErr != nil {
		return nil, fmt.Errorf("failed to find templates: %w", templatesErr)
	}
	if countErr != nil {
		return nil, fmt.Errorf("failed to count templates: %w", countErr)
	}

	return model.NewPage(templates, page, size, totalElements), nil
}

func (uc *templateUseCase) FindTemplateByID(id string, userID string) (*entity.Template, error) {
	template, err := uc.dbGateway.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find template: %w", err)
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}
	return template, nil
}

func (uc *templateUseCase) CreateTemplate(userID string, dto model.CreateTemplateDTO) (*entity.Template, error) {
	if err := validateTemplateInput(dto.Name, dto.Content); err != nil {
		return nil, err
	}

	created, err := uc.dbGateway.Create(entity.Template{
		UserID:  userID,
		Name:    dto.Name,
		Content: dto.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return created, nil
}

func (uc *templateUseCase) UpdateTemplate(id string, userID string, dto model.UpdateTemplateDTO) (*entity.Template, error) {
	if err := validateTemplateInput(dto.Name, dto.Content); err != nil {
		return nil, err
	}

	updated, err := uc.dbGateway.UpdateByIDAndUser(id, userID, entity.Template{
		Name:    dto.Name,
		Content: dto.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	if updated == nil {
		return nil, ErrTemplateNotFound
	}
	return updated, nil
}

func (uc *templateUseCase) DeleteTemplate(id string, userID string) error {
	err := uc.dbGateway.DeleteByIDAndUser(id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTemplateNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

func validateTemplateInput(name string, content entity.PackingListContent) error {
	if strings.TrimSpace(name) == "" {
		return &model.InputValidationError{Field: "name", Message: "must not be empty"}
	}
	return model.ValidateContent(content)
}
