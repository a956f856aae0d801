package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/internal/pkg/validator"
	"github.com/piresc/ridehail-admin/services/captain/mocks"
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

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestCreateCaptain_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCaptainUC(ctrl)
	h := NewCaptainHandler(mockUC)
	c, rec := newContext(http.MethodPost, "/api/v1/captains", `{"name":"Budi","licenseNumber":"LIC-1"}`)

	avg := 0.0
	mockUC.EXPECT().
		CreateCaptain(gomock.Any(), models.CaptainRequest{Name: "Budi", LicenseNumber: "LIC-1"}).
		Return(&models.Captain{ID: 1, Name: "Budi", LicenseNumber: "LIC-1", AvgRatingScore: &avg}, nil)

	// Act
	err := h.CreateCaptain(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	response := decode(t, rec)
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "LIC-1", data["licenseNumber"])
}

func TestCreateCaptain_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCaptainUC(ctrl)
	h := NewCaptainHandler(mockUC)
	c, rec := newContext(http.MethodPost, "/api/v1/captains", `{"licenseNumber":"LIC-1"}`)

	err := h.CreateCaptain(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "Name is required")
}

func TestCreateCaptain_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCaptainUC(ctrl)
	h := NewCaptainHandler(mockUC)
	c, rec := newContext(http.MethodPost, "/api/v1/captains", `{"name":"Budi","licenseNumber":"LIC-1"}`)

	mockUC.EXPECT().CreateCaptain(gomock.Any(), gomock.Any()).
		Return(nil, models.NewConflictError("license number %q already registered", "LIC-1"))

	assert.NoError(t, h.CreateCaptain(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetCaptain(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		setup      func(m *mocks.MockCaptainUC)
		wantStatus int
	}{
		{
			name: "found",
			id:   "1",
			setup: func(m *mocks.MockCaptainUC) {
				m.EXPECT().GetCaptainByID(gomock.Any(), int64(1)).Return(&models.Captain{ID: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing",
			id:   "2",
			setup: func(m *mocks.MockCaptainUC) {
				m.EXPECT().GetCaptainByID(gomock.Any(), int64(2)).Return(nil, models.NewNotFoundError("captain %d", 2))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad id",
			id:         "abc",
			setup:      func(m *mocks.MockCaptainUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure is masked",
			id:   "3",
			setup: func(m *mocks.MockCaptainUC) {
				m.EXPECT().GetCaptainByID(gomock.Any(), int64(3)).Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockCaptainUC(ctrl)
			tt.setup(mockUC)
			h := NewCaptainHandler(mockUC)
			c, rec := newContext(http.MethodGet, "/", "")
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			assert.NoError(t, h.GetCaptain(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "connection refused")
			}
		})
	}
}

func TestListCaptains_MinRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCaptainUC(ctrl)
	h := NewCaptainHandler(mockUC)

	mockUC.EXPECT().ListCaptainsByMinRating(gomock.Any(), 4.5).Return([]*models.Captain{}, nil)
	c, rec := newContext(http.MethodGet, "/api/v1/captains?min_rating=4.5", "")
	assert.NoError(t, h.ListCaptains(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	mockUC.EXPECT().ListCaptains(gomock.Any()).Return([]*models.Captain{{ID: 1}}, nil)
	c, rec = newContext(http.MethodGet, "/api/v1/captains", "")
	assert.NoError(t, h.ListCaptains(c))
	assert.Len(t, decode(t, rec)["data"], 1)

	c, rec = newContext(http.MethodGet, "/api/v1/captains?min_rating=high", "")
	assert.NoError(t, h.ListCaptains(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCaptainByLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCaptainUC(ctrl)
	h := NewCaptainHandler(mockUC)
	c, rec := newContext(http.MethodGet, "/", "")
	c.SetParamNames("license")
	c.SetParamValues("LIC-1")

	mockUC.EXPECT().GetCaptainByLicenseNumber(gomock.Any(), "LIC-1").Return(&models.Captain{ID: 4}, nil)

	assert.NoError(t, h.GetCaptainByLicense(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCaptain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCaptainUC(ctrl)
	h := NewCaptainHandler(mockUC)
	c, rec := newContext(http.MethodPut, "/", `{"name":"Andi"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	mockUC.EXPECT().UpdateCaptain(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ int64, patch models.CaptainPatch) (*models.Captain, error) {
			require.NotNil(t, patch.Name)
			assert.Nil(t, patch.LicenseNumber)
			return &models.Captain{ID: 1, Name: *patch.Name}, nil
		})

	assert.NoError(t, h.UpdateCaptain(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteCaptain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCaptainUC(ctrl)
	h := NewCaptainHandler(mockUC)
	c, rec := newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	mockUC.EXPECT().DeleteCaptain(gomock.Any(), int64(1)).Return(nil)

	assert.NoError(t, h.DeleteCaptain(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
