package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/internal/utils"
	"github.com/piresc/ridehail-admin/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req models.PaymentRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	created, err := h.paymentUC.CreatePayment(c.Request().Context(), req)
	if err != nil {
		if models.IsConflict(err) {
			logger.Warn("Payment conflict",
				logger.String("endpoint", "CreatePayment"),
				logger.ErrorField(err))
		}
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment created successfully", created)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	found, err := h.paymentUC.GetPaymentByID(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved successfully", found)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.paymentUC.ListPayments(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	var patch models.PaymentPatch
	if err := utils.BindAndValidate(c, &patch); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	updated, err := h.paymentUC.UpdatePayment(c.Request().Context(), id, patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment updated successfully", updated)
}

// UpdatePaymentStatus handles PATCH /payments/:id/status
func (h *PaymentHandler) UpdatePaymentStatus(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	var req models.PaymentStatusRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	updated, err := h.paymentUC.UpdatePaymentStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status updated successfully", updated)
}

func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if err := h.paymentUC.DeletePayment(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *PaymentHandler) SearchByTrip(c echo.Context) error {
	tripID, err := utils.ParseIDQuery(c, "trip_id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	payments, err := h.paymentUC.FindPaymentsByTripID(c.Request().Context(), tripID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) SearchByAmount(c echo.Context) error {
	threshold, err := utils.ParseFloatQuery(c, "threshold")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	payments, err := h.paymentUC.FindPaymentsByAmountGreaterThan(c.Request().Context(), threshold)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) SearchByStatus(c echo.Context) error {
	payments, err := h.paymentUC.FindPaymentsByStatus(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) SearchByMethod(c echo.Context) error {
	payments, err := h.paymentUC.FindPaymentsByMethod(c.Request().Context(), c.QueryParam("method"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", payments)
}
