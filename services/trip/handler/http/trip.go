package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/internal/utils"
	"github.com/piresc/ridehail-admin/services/trip"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trip.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trip.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// CreateTrip handles trip creation requests
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req models.TripRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	created, err := h.tripUC.CreateTrip(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", created)
}

// GetTrip handles trip retrieval requests
func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	found, err := h.tripUC.GetTripByID(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", found)
}

// ListTrips lists every trip
func (h *TripHandler) ListTrips(c echo.Context) error {
	trips, err := h.tripUC.ListTrips(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", trips)
}

// UpdateTrip applies a partial update
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	var patch models.TripPatch
	if err := utils.BindAndValidate(c, &patch); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	updated, err := h.tripUC.UpdateTrip(c.Request().Context(), id, patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip updated successfully", updated)
}

// UpdateTripStatus handles PATCH /trips/:id/status
func (h *TripHandler) UpdateTripStatus(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	var req models.TripStatusRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	updated, err := h.tripUC.UpdateTripStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip status updated successfully", updated)
}

// DeleteTrip handles trip deletion requests
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if err := h.tripUC.DeleteTrip(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SearchByDateRange handles ?start=&end=
func (h *TripHandler) SearchByDateRange(c echo.Context) error {
	start, err := utils.ParseTimeQuery(c, "start")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	end, err := utils.ParseRangeEndQuery(c, "end")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	trips, err := h.tripUC.FindTripsByDateRange(c.Request().Context(), start, end)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", trips)
}

// SearchByCaptain handles ?captain_id=
func (h *TripHandler) SearchByCaptain(c echo.Context) error {
	captainID, err := utils.ParseIDQuery(c, "captain_id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	trips, err := h.tripUC.FindTripsByCaptainID(c.Request().Context(), captainID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", trips)
}

// SearchByCustomer handles ?customer_id=
func (h *TripHandler) SearchByCustomer(c echo.Context) error {
	customerID, err := utils.ParseIDQuery(c, "customer_id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	trips, err := h.tripUC.FindTripsByCustomerID(c.Request().Context(), customerID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", trips)
}

// SearchByStatus handles ?status=
func (h *TripHandler) SearchByStatus(c echo.Context) error {
	trips, err := h.tripUC.FindTripsByStatus(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", trips)
}
