package utils

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// ConflictResponse sends a 409 Conflict response
func ConflictResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusConflict, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// StatusForError maps a domain error kind to an HTTP status
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DomainErrorResponse writes err with the status of its kind.
// Internal errors are not echoed back to the client.
func DomainErrorResponse(c echo.Context, err error) error {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		return InternalServerErrorResponse(c, "")
	}
	return ErrorResponseHandler(c, status, err.Error())
}

// ParseIDParam reads a positive int64 path parameter
func ParseIDParam(c echo.Context, name string) (int64, error) {
	return parsePositiveInt64(name, c.Param(name))
}

// ParseIDQuery reads a positive int64 query parameter
func ParseIDQuery(c echo.Context, name string) (int64, error) {
	return parsePositiveInt64(name, c.QueryParam(name))
}

func parsePositiveInt64(name, raw string) (int64, error) {
	if raw == "" {
		return 0, models.NewValidationError("%s is required", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("invalid %s: %q", name, raw)
	}
	return id, nil
}

// ParseFloatQuery reads a float query parameter
func ParseFloatQuery(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, models.NewValidationError("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, models.NewValidationError("invalid %s: %q", name, raw)
	}
	return v, nil
}

// ParseIntQuery reads an int query parameter
func ParseIntQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, models.NewValidationError("%s is required", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.NewValidationError("invalid %s: %q", name, raw)
	}
	return v, nil
}

// ParseTimeQuery reads an RFC3339 timestamp, also accepting a bare date
// (midnight UTC)
func ParseTimeQuery(c echo.Context, name string) (time.Time, error) {
	t, _, err := parseTimeQuery(c, name)
	return t, err
}

// ParseRangeEndQuery is ParseTimeQuery for an inclusive upper bound: a bare
// date covers the whole day
func ParseRangeEndQuery(c echo.Context, name string) (time.Time, error) {
	t, dateOnly, err := parseTimeQuery(c, name)
	if err != nil || !dateOnly {
		return t, err
	}
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

func parseTimeQuery(c echo.Context, name string) (time.Time, bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, false, models.NewValidationError("%s is required", name)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, models.NewValidationError("invalid %s: expected RFC3339 timestamp or date", name)
}

// BindAndValidate binds the request body and runs the echo validator when one is set
func BindAndValidate(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return models.NewValidationError("invalid request body")
	}
	if c.Echo().Validator == nil {
		return nil
	}
	if err := c.Validate(dst); err != nil {
		return models.NewValidationError("%s", err.Error())
	}
	return nil
}
