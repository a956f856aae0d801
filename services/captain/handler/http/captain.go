package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/internal/utils"
	"github.com/piresc/ridehail-admin/services/captain"
)

// CaptainHandler handles HTTP requests for captain operations
type CaptainHandler struct {
	captainUC captain.CaptainUC
}

// NewCaptainHandler creates a new captain handler
func NewCaptainHandler(captainUC captain.CaptainUC) *CaptainHandler {
	return &CaptainHandler{
		captainUC: captainUC,
	}
}

// CreateCaptain handles captain creation requests
func (h *CaptainHandler) CreateCaptain(c echo.Context) error {
	var req models.CaptainRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	created, err := h.captainUC.CreateCaptain(c.Request().Context(), req)
	if err != nil {
		if utils.StatusForError(err) == http.StatusInternalServerError {
			logger.Error("Failed to create captain", logger.ErrorField(err))
		}
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Captain created successfully", created)
}

// GetCaptain handles captain retrieval requests
func (h *CaptainHandler) GetCaptain(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	found, err := h.captainUC.GetCaptainByID(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Captain retrieved successfully", found)
}

// GetCaptainByLicense handles lookups by license number
func (h *CaptainHandler) GetCaptainByLicense(c echo.Context) error {
	found, err := h.captainUC.GetCaptainByLicenseNumber(c.Request().Context(), c.Param("license"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Captain retrieved successfully", found)
}

// ListCaptains lists every captain, or only those rated above min_rating
func (h *CaptainHandler) ListCaptains(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		captains []*models.Captain
		err      error
	)
	if strings.TrimSpace(c.QueryParam("min_rating")) != "" {
		threshold, perr := utils.ParseFloatQuery(c, "min_rating")
		if perr != nil {
			return utils.DomainErrorResponse(c, perr)
		}
		captains, err = h.captainUC.ListCaptainsByMinRating(ctx, threshold)
	} else {
		captains, err = h.captainUC.ListCaptains(ctx)
	}
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Captains retrieved successfully", captains)
}

// UpdateCaptain applies a partial update
func (h *CaptainHandler) UpdateCaptain(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	var patch models.CaptainPatch
	if err := utils.BindAndValidate(c, &patch); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	updated, err := h.captainUC.UpdateCaptain(c.Request().Context(), id, patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Captain updated successfully", updated)
}

// DeleteCaptain removes a captain and, by cascade, its trips
func (h *CaptainHandler) DeleteCaptain(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if err := h.captainUC.DeleteCaptain(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
