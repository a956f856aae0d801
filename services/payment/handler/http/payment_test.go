package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/internal/pkg/validator"
	"github.com/piresc/ridehail-admin/services/payment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreatePayment(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mocks.MockPaymentUC)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"amount":25,"paymentMethod":"cash","tripId":4}`,
			setup: func(m *mocks.MockPaymentUC) {
				m.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(&models.Payment{ID: 1, TripID: 4}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "trip already paid",
			body: `{"amount":25,"paymentMethod":"cash","tripId":4}`,
			setup: func(m *mocks.MockPaymentUC) {
				m.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
					Return(nil, models.NewConflictError("trip %d already has a payment", 4))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "negative amount",
			body:       `{"amount":-1,"paymentMethod":"cash","tripId":4}`,
			setup:      func(m *mocks.MockPaymentUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing trip",
			body:       `{"amount":1,"paymentMethod":"cash"}`,
			setup:      func(m *mocks.MockPaymentUC) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockPaymentUC(ctrl)
			tt.setup(mockUC)
			h := NewPaymentHandler(mockUC)
			c, rec := newContext(http.MethodPost, "/api/v1/payments", tt.body)

			assert.NoError(t, h.CreatePayment(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSearchByTrip_EmptyIsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)
	c, rec := newContext(http.MethodGet, "/api/v1/payments/search/trip?trip_id=4", "")

	mockUC.EXPECT().FindPaymentsByTripID(gomock.Any(), int64(4)).Return([]*models.Payment{}, nil)

	assert.NoError(t, h.SearchByTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestSearchByAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/api/v1/payments/search/amount?threshold=10.5", "")
	mockUC.EXPECT().FindPaymentsByAmountGreaterThan(gomock.Any(), 10.5).Return([]*models.Payment{{ID: 2}}, nil)
	assert.NoError(t, h.SearchByAmount(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/api/v1/payments/search/amount", "")
	assert.NoError(t, h.SearchByAmount(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchByStatusAndMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/api/v1/payments/search/status?status=pending", "")
	mockUC.EXPECT().FindPaymentsByStatus(gomock.Any(), "pending").Return([]*models.Payment{}, nil)
	assert.NoError(t, h.SearchByStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/api/v1/payments/search/method?method=barter", "")
	mockUC.EXPECT().FindPaymentsByMethod(gomock.Any(), "barter").
		Return(nil, models.NewValidationError("unknown payment method %q", "barter"))
	assert.NoError(t, h.SearchByMethod(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	c, rec := newContext(http.MethodPatch, "/", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	assert.NoError(t, h.UpdatePaymentStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newContext(http.MethodPatch, "/", `{"status":"completed"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	mockUC.EXPECT().UpdatePaymentStatus(gomock.Any(), int64(1), "completed").
		Return(&models.Payment{ID: 1, PaymentStatus: models.PaymentStatusCompleted}, nil)
	assert.NoError(t, h.UpdatePaymentStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
