package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/internal/utils"
	"github.com/piresc/ridehail-admin/services/customer"
)

// CustomerHandler handles HTTP requests for customer operations
type CustomerHandler struct {
	customerUC customer.CustomerUC
}

func NewCustomerHandler(customerUC customer.CustomerUC) *CustomerHandler {
	return &CustomerHandler{
		customerUC: customerUC,
	}
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req models.CustomerRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	created, err := h.customerUC.CreateCustomer(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Customer created successfully", created)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	found, err := h.customerUC.GetCustomerByID(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Customer retrieved successfully", found)
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerUC.ListCustomers(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Customers retrieved successfully", customers)
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	var patch models.CustomerPatch
	if err := utils.BindAndValidate(c, &patch); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	updated, err := h.customerUC.UpdateCustomer(c.Request().Context(), id, patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Customer updated successfully", updated)
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if err := h.customerUC.DeleteCustomer(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SearchByEmailDomain handles ?domain=
func (h *CustomerHandler) SearchByEmailDomain(c echo.Context) error {
	customers, err := h.customerUC.FindCustomersByEmailDomain(c.Request().Context(), c.QueryParam("domain"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Customers retrieved successfully", customers)
}

// SearchByPhonePrefix handles ?prefix=
func (h *CustomerHandler) SearchByPhonePrefix(c echo.Context) error {
	customers, err := h.customerUC.FindCustomersByPhonePrefix(c.Request().Context(), c.QueryParam("prefix"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Customers retrieved successfully", customers)
}
