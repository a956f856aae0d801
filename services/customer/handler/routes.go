package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/services/customer/handler/http"
)

type Handler struct {
	customerHandler *http.CustomerHandler
}

func NewHandler(customerHandler *http.CustomerHandler) *Handler {
	return &Handler{customerHandler: customerHandler}
}

// RegisterRoutes mounts the customer routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/customers")
	g.POST("", h.customerHandler.CreateCustomer)
	g.GET("", h.customerHandler.ListCustomers)
	g.GET("/search/email", h.customerHandler.SearchByEmailDomain)
	g.GET("/search/phone", h.customerHandler.SearchByPhonePrefix)
	g.GET("/:id", h.customerHandler.GetCustomer)
	g.PUT("/:id", h.customerHandler.UpdateCustomer)
	g.DELETE("/:id", h.customerHandler.DeleteCustomer)
}
