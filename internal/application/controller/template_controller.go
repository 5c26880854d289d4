package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"packmate-api/internal/application/middleware"
	"packmate-api/internal/domain/model"
	"packmate-api/internal/domain/usecase/template"
	"packmate-api/pkg/util/numberutils"
)

type TemplateController struct {
	api     *echo.Group
	useCase template.UseCase
}

func NewTemplateController(api *echo.Group, useCase template.UseCase) *TemplateController {
	return &TemplateController{api: api, useCase: useCase}
}

// InitTemplateRoutes initializes template routes
func (controller *TemplateController) InitTemplateRoutes() {
	controller.api.GET("/templates", controller.FindAllTemplates)
	controller.api.GET("/templates/:id", controller.FindTemplateByID)
	controller.api.POST("/templates", controller.CreateTemplate)
	controller.api.PUT("/templates/:id", controller.UpdateTemplate)
	controller.api.DELETE("/templates/:id", controller.DeleteTemplate)
}

// FindAllTemplates godoc
// @Summary Get all templates
// @Description Retrieve the caller's list templates with pagination
// @Tags templates
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} model.Page[entity.Template] "Paginated list of templates"
// @Router /templates [get]
func (controller *TemplateController) FindAllTemplates(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing identity"})
	}

	var page int = numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	var size int = numberutils.ToIntWithDefault(c.QueryParam("size"), 10)

	templates, err := controller.useCase.FindAllTemplates(userID, page, size)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, templates)
}

// FindTemplateByID godoc
// @Summary Get template by id
// @Description Retrieve one of the caller's templates
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template id"
// @Success 200 {object} entity.Template "Template"
// @Failure 404 {object} map[string]string "Template not found"
// @Router /templates/{id} [get]
func (controller *TemplateController) FindTemplateByID(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing identity"})
	}

	templateData, err := controller.useCase.FindTemplateByID(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, template.ErrTemplateNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Template not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, templateData)
}

// CreateTemplate godoc
// @Summary Create a template
// @Description Create a reusable named list template for the caller
// @Tags templates
// @Accept json
// @Produce json
// @Param request body model.CreateTemplateDTO true "Template data"
// @Success 201 {object} entity.Template "Created template"
// @Failure 400 {object} map[string]string "Invalid template data"
// @Router /templates [post]
func (controller *TemplateController) CreateTemplate(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing identity"})
	}

	var dto model.CreateTemplateDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := controller.useCase.CreateTemplate(userID, dto)
	if err != nil {
		var inputErr *model.InputValidationError
		if errors.As(err, &inputErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateTemplate godoc
// @Summary Update a template
// @Description Rename or replace one of the caller's templates
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template id"
// @Param request body model.UpdateTemplateDTO true "Template data"
// @Success 200 {object} entity.Template "Updated template"
// @Failure 400 {object} map[string]string "Invalid template data"
// @Failure 404 {object} map[string]string "Template not found"
// @Router /templates/{id} [put]
func (controller *TemplateController) UpdateTemplate(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing identity"})
	}

	var dto model.UpdateTemplateDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := controller.useCase.UpdateTemplate(c.Param("id"), userID, dto)
	if err != nil {
		var inputErr *model.InputValidationError
		if errors.As(err, &inputErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if errors.Is(err, template.ErrTemplateNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Template not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteTemplate godoc
// @Summary Delete a template
// @Description Delete one of the caller's templates
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template id"
// @Success 204 "Template deleted"
// @Failure 404 {object} map[string]string "Template not found"
// @Router /templates/{id} [delete]
func (controller *TemplateController) DeleteTemplate(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing identity"})
	}

	if err := controller.useCase.DeleteTemplate(c.Param("id"), userID); err != nil {
		if errors.Is(err, template.ErrTemplateNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Template not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
