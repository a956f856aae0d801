package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/services/trip/handler/http"
)

// Handler wires the trip HTTP endpoints
type Handler struct {
	tripHandler *http.TripHandler
}

func NewHandler(tripHandler *http.TripHandler) *Handler {
	return &Handler{tripHandler: tripHandler}
}

// RegisterRoutes mounts the trip routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/trips")
	g.POST("", h.tripHandler.CreateTrip)
	g.GET("", h.tripHandler.ListTrips)

	search := g.Group("/search")
	search.GET("/date-range", h.tripHandler.SearchByDateRange)
	search.GET("/captain", h.tripHandler.SearchByCaptain)
	search.GET("/customer", h.tripHandler.SearchByCustomer)
	search.GET("/status", h.tripHandler.SearchByStatus)

	g.GET("/:id", h.tripHandler.GetTrip)
	g.PUT("/:id", h.tripHandler.UpdateTrip)
	g.PATCH("/:id/status", h.tripHandler.UpdateTripStatus)
	g.DELETE("/:id", h.tripHandler.DeleteTrip)
}
