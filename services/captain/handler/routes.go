package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/services/captain/handler/http"
)

// Handler wires the captain HTTP endpoints
type Handler struct {
	captainHandler *http.CaptainHandler
}

// NewHandler creates the captain route handler
func NewHandler(captainHandler *http.CaptainHandler) *Handler {
	return &Handler{captainHandler: captainHandler}
}

// RegisterRoutes mounts the captain routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/captains")
	g.POST("", h.captainHandler.CreateCaptain)
	g.GET("", h.captainHandler.ListCaptains)
	g.GET("/license/:license", h.captainHandler.GetCaptainByLicense)
	g.GET("/:id", h.captainHandler.GetCaptain)
	g.PUT("/:id", h.captainHandler.UpdateCaptain)
	g.PATCH("/:id", h.captainHandler.UpdateCaptain)
	g.DELETE("/:id", h.captainHandler.DeleteCaptain)
}
