package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/services/payment/handler/http"
)

type Handler struct {
	paymentHandler *http.PaymentHandler
}

func NewHandler(paymentHandler *http.PaymentHandler) *Handler {
	return &Handler{paymentHandler: paymentHandler}
}

// RegisterRoutes mounts the payment routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/payments")
	g.POST("", h.paymentHandler.CreatePayment)
	g.GET("", h.paymentHandler.ListPayments)

	search := g.Group("/search")
	search.GET("/trip", h.paymentHandler.SearchByTrip)
	search.GET("/amount", h.paymentHandler.SearchByAmount)
	search.GET("/status", h.paymentHandler.SearchByStatus)
	search.GET("/method", h.paymentHandler.SearchByMethod)

	g.GET("/:id", h.paymentHandler.GetPayment)
	g.PUT("/:id", h.paymentHandler.UpdatePayment)
	g.PATCH("/:id/status", h.paymentHandler.UpdatePaymentStatus)
	g.DELETE("/:id", h.paymentHandler.DeletePayment)
}
