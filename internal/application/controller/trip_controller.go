package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"packmate-api/internal/application/middleware"
	"packmate-api/internal/domain/model"
	"packmate-api/internal/domain/usecase/trip"
	"packmate-api/pkg/util/numberutils"
)

type TripController struct {
	api     *echo.Group
	useCase trip.UseCase
}

func NewTripController(api *echo.Group, useCase trip.UseCase) *TripController {
	return &TripController{api: api, useCase: useCase}
}

// InitTripRoutes initializes trip routes
func (controller *TripController) InitTripRoutes() {
	controller.api.POST("/trips", controller.CreateTrip)
	controller.api.GET("/trips", controller.FindAllTrips)
	controller.api.GET("/trips/:id", controller.FindTripByID)
	controller.api.PUT("/trips/:id/list", controller.UpdatePackingList)
	controller.api.DELETE("/trips/:id", controller.DeleteTrip)
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Store a trip without a packing list for the caller
// @Tags trips
// @Accept json
// @Produce json
// @Param request body model.CreateTripDTO true "Trip details"
// @Success 201 {object} entity.Trip "Stored trip"
// @Failure 400 {object} map[string]string "Invalid trip input"
// @Failure 401 {object} map[string]string "Missing identity"
// @Router /trips [post]
func (controller *TripController) CreateTrip(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing identity"})
	}

	var dto model.CreateTripDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	tripData, err := controller.useCase.CreateTrip(userID, dto)
	if err != nil {
		var inputErr *model.InputValidationError
		if errors.As(err, &inputErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, tripData)
}

// FindAllTrips godoc
// @Summary Get all trips
// @Description Retrieve the caller's trips with pagination
// @Tags trips
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} model.Page[entity.Trip] "Paginated list of trips"
// @Failure 401 {object} map[string]string "Missing identity"
// @Router /trips [get]
func (controller *TripController) FindAllTrips(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing identity"})
	}

	var page int = numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	var size int = numberutils.ToIntWithDefault(c.QueryParam("size"), 10)

	trips, err := controller.useCase.FindAllTrips(userID, page, size)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, trips)
}

// FindTripByID godoc
// @Summary Get trip by id
// @Description Retrieve one of the caller's trips with its packing list
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} entity.Trip "Trip with packing list"
// @Failure 404 {object} map[string]string "Trip not found"
// @Router /trips/{id} [get]
func (controller *TripController) FindTripByID(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing identity"})
	}

	tripData, err := controller.useCase.FindTripByID(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, tripData)
}

// UpdatePackingList godoc
// @Summary Update a trip's packing list
// @Description Replace the packing list content of one of the caller's trips
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip id"
// @Param request body model.UpdatePackingListDTO true "New packing list content"
// @Success 200 {object} entity.PackingList "Updated packing list"
// @Failure 400 {object} map[string]string "Invalid content"
// @Failure 404 {object} map[string]string "Trip not found"
// @Router /trips/{id}/list [put]
func (controller *TripController) UpdatePackingList(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing identity"})
	}

	var dto model.UpdatePackingListDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	packingList, err := controller.useCase.UpdatePackingList(c.Param("id"), userID, dto)
	if err != nil {
		var inputErr *model.InputValidationError
		if errors.As(err, &inputErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if errors.Is(err, trip.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, packingList)
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Delete one of the caller's trips and its packing list
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip id"
// @Success 204 "Trip deleted"
// @Failure 404 {object} map[string]string "Trip not found"
// @Router /trips/{id} [delete]
func (controller *TripController) DeleteTrip(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing identity"})
	}

	if err := controller.useCase.DeleteTrip(c.Param("id"), userID); err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
