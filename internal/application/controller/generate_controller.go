package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"packmate-api/internal/application/middleware"
	"packmate-api/internal/domain/model"
	"packmate-api/internal/domain/usecase/generation"
)

type GenerateController struct {
	api     *echo.Group
	useCase generation.UseCase
}

func NewGenerateController(api *echo.Group, useCase generation.UseCase) *GenerateController {
	return &GenerateController{api: api, useCase: useCase}
}

// InitGenerateRoutes initializes packing list generation routes
func (controller *GenerateController) InitGenerateRoutes() {
	controller.api.POST("/generate", controller.GeneratePackingList)
}

// GeneratePackingList godoc
// @Summary Generate a packing list
// @Description Generate a context-aware packing list for a trip, optionally persisting it
// @Tags generate
// @Accept json
// @Produce json
// @Param request body model.GenerateRequestDTO true "Trip details"
// @Success 200 {object} model.GenerationResult "Generated packing list with weather context"
// @Failure 400 {object} map[string]string "Invalid trip input"
// @Failure 502 {object} map[string]string "Generation backend failure"
// @Router /generate [post]
func (controller *GenerateController) GeneratePackingList(c echo.Context) error {
	var request model.GenerateRequestDTO
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	result, err := controller.useCase.Generate(middleware.UserID(c), request)
	if err != nil {
		return c.JSON(generationStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}

// generationStatus maps pipeline errors to HTTP statuses. Caller faults are
// 400, backend faults are 502, everything else is 500.
func generationStatus(err error) int {
	var inputErr *model.InputValidationError
	if errors.As(err, &inputErr) {
		return http.StatusBadRequest
	}

	var generationErr *model.GenerationFailure
	var malformedErr *model.MalformedOutputError
	var categoryErr *model.InvalidCategoryError
	var itemErr *model.InvalidItemError
	if errors.As(err, &generationErr) || errors.As(err, &malformedErr) ||
		errors.As(err, &categoryErr) || errors.As(err, &itemErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
