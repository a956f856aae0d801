package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/services/rating/handler/http"
)

// Handler wires the rating HTTP endpoints
type Handler struct {
	ratingHandler *http.RatingHandler
}

func NewHandler(ratingHandler *http.RatingHandler) *Handler {
	return &Handler{ratingHandler: ratingHandler}
}

// RegisterRoutes mounts the rating routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/ratings")
	g.POST("", h.ratingHandler.CreateRating)
	g.GET("", h.ratingHandler.ListRatings)

	search := g.Group("/search")
	search.GET("/entity", h.ratingHandler.SearchByEntity)
	search.GET("/type", h.ratingHandler.SearchByEntityType)
	search.GET("/min-score", h.ratingHandler.SearchByMinScore)
	search.GET("/score-range", h.ratingHandler.SearchByScoreRange)

	g.POST("/captains/:id/recompute", h.ratingHandler.RecomputeCaptain)

	g.GET("/:id", h.ratingHandler.GetRating)
	g.PUT("/:id", h.ratingHandler.UpdateRating)
	g.PATCH("/:id", h.ratingHandler.UpdateRating)
	g.DELETE("/:id", h.ratingHandler.DeleteRating)
}
