package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/internal/utils"
	"github.com/piresc/ridehail-admin/services/rating"
)

// RatingHandler handles HTTP requests for rating operations
type RatingHandler struct {
	ratingUC rating.RatingUC
}

func NewRatingHandler(ratingUC rating.RatingUC) *RatingHandler {
	return &RatingHandler{ratingUC: ratingUC}
}

// RecomputeResponse reports a captain's average after an explicit recompute.
// AvgRatingScore is null when the captain has no ratings.
type RecomputeResponse struct {
	CaptainID      int64    `json:"captainId"`
	AvgRatingScore *float64 `json:"avgRatingScore"`
}

func (h *RatingHandler) CreateRating(c echo.Context) error {
	var req models.RatingRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	created, err := h.ratingUC.CreateRating(c.Request().Context(), req)
	if err != nil {
		if utils.StatusForError(err) == http.StatusInternalServerError {
			logger.Error("Failed to create rating", logger.ErrorField(err))
		}
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Rating created successfully", created)
}

func (h *RatingHandler) GetRating(c echo.Context) error {
	found, err := h.ratingUC.GetRatingByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rating retrieved successfully", found)
}

func (h *RatingHandler) ListRatings(c echo.Context) error {
	ratings, err := h.ratingUC.ListRatings(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ratings retrieved successfully", ratings)
}

// UpdateRating changes score, comment or rating date
func (h *RatingHandler) UpdateRating(c echo.Context) error {
	var patch models.RatingPatch
	if err := utils.BindAndValidate(c, &patch); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	updated, err := h.ratingUC.UpdateRating(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		if utils.StatusForError(err) == http.StatusInternalServerError {
			logger.Error("Failed to update rating", logger.String("rating_id", c.Param("id")), logger.ErrorField(err))
		}
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rating updated successfully", updated)
}

func (h *RatingHandler) DeleteRating(c echo.Context) error {
	if err := h.ratingUC.DeleteRating(c.Request().Context(), c.Param("id")); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SearchByEntity lists the ratings of one captain, customer or trip
func (h *RatingHandler) SearchByEntity(c echo.Context) error {
	entityID, err := utils.ParseIDQuery(c, "entity_id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	ratings, err := h.ratingUC.FindRatingsByEntity(c.Request().Context(), entityID, c.QueryParam("entity_type"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ratings retrieved successfully", ratings)
}

func (h *RatingHandler) SearchByEntityType(c echo.Context) error {
	ratings, err := h.ratingUC.FindRatingsByEntityType(c.Request().Context(), c.QueryParam("entity_type"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ratings retrieved successfully", ratings)
}

func (h *RatingHandler) SearchByMinScore(c echo.Context) error {
	min, err := utils.ParseIntQuery(c, "min_score")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	ratings, err := h.ratingUC.FindRatingsAboveScore(c.Request().Context(), min)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ratings retrieved successfully", ratings)
}

func (h *RatingHandler) SearchByScoreRange(c echo.Context) error {
	min, err := utils.ParseIntQuery(c, "min")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	max, err := utils.ParseIntQuery(c, "max")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	ratings, err := h.ratingUC.FindRatingsByScoreRange(c.Request().Context(), min, max)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ratings retrieved successfully", ratings)
}

// RecomputeCaptain rebuilds a captain's average from its ratings
func (h *RatingHandler) RecomputeCaptain(c echo.Context) error {
	captainID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	avg, err := h.ratingUC.RecomputeCaptainRating(c.Request().Context(), captainID)
	if err != nil {
		if utils.StatusForError(err) == http.StatusInternalServerError {
			logger.Error("Captain recompute failed", logger.Int64("captain_id", captainID), logger.ErrorField(err))
		}
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Captain rating recomputed",
		RecomputeResponse{CaptainID: captainID, AvgRatingScore: avg})
}
