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
	"github.com/piresc/ridehail-admin/services/rating/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateRating(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mocks.MockRatingUC)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"entityId":1,"entityType":"Captain","score":5,"comment":"smooth"}`,
			setup: func(m *mocks.MockRatingUC) {
				m.EXPECT().CreateRating(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, req models.RatingRequest) (*models.Rating, error) {
						require.NotNil(t, req.EntityID)
						assert.Equal(t, int64(1), *req.EntityID)
						assert.Equal(t, "Captain", req.EntityType)
						assert.Equal(t, 5, *req.Score)
						return &models.Rating{ID: primitive.NewObjectID(), EntityID: 1, EntityType: "captain", Score: 5}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "score out of range",
			body: `{"entityId":1,"entityType":"captain","score":9}`,
			setup: func(m *mocks.MockRatingUC) {
				m.EXPECT().CreateRating(gomock.Any(), gomock.Any()).
					Return(nil, models.NewValidationError("score must be between 1 and 5"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown target",
			body: `{"entityId":42,"entityType":"trip","score":3}`,
			setup: func(m *mocks.MockRatingUC) {
				m.EXPECT().CreateRating(gomock.Any(), gomock.Any()).
					Return(nil, models.NewNotFoundError("trip %d", 42))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed body",
			body:       `{"entityId":"one"`,
			setup:      func(m *mocks.MockRatingUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"entityId":1,"entityType":"captain","score":4}`,
			setup: func(m *mocks.MockRatingUC) {
				m.EXPECT().CreateRating(gomock.Any(), gomock.Any()).Return(nil, errors.New("mongo timeout"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockRatingUC(ctrl)
			tt.setup(mockUC)
			h := NewRatingHandler(mockUC)
			c, rec := newContext(http.MethodPost, "/api/v1/ratings", tt.body)

			assert.NoError(t, h.CreateRating(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetUpdateDeleteRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRatingUC(ctrl)
	h := NewRatingHandler(mockUC)
	oid := primitive.NewObjectID()

	t.Run("get", func(t *testing.T) {
		mockUC.EXPECT().GetRatingByID(gomock.Any(), oid.Hex()).Return(&models.Rating{ID: oid, Score: 3}, nil)
		c, rec := newContext(http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(oid.Hex())

		assert.NoError(t, h.GetRating(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get missing", func(t *testing.T) {
		mockUC.EXPECT().GetRatingByID(gomock.Any(), "nope").Return(nil, models.NewNotFoundError("rating %s", "nope"))
		c, rec := newContext(http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("nope")

		assert.NoError(t, h.GetRating(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		mockUC.EXPECT().UpdateRating(gomock.Any(), oid.Hex(), gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, patch models.RatingPatch) (*models.Rating, error) {
				require.NotNil(t, patch.Score)
				assert.Nil(t, patch.Comment)
				return &models.Rating{ID: oid, Score: *patch.Score}, nil
			})
		c, rec := newContext(http.MethodPut, "/", `{"score":2}`)
		c.SetParamNames("id")
		c.SetParamValues(oid.Hex())

		assert.NoError(t, h.UpdateRating(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		mockUC.EXPECT().DeleteRating(gomock.Any(), oid.Hex()).Return(nil)
		c, rec := newContext(http.MethodDelete, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(oid.Hex())

		assert.NoError(t, h.DeleteRating(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRatingSearches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRatingUC(ctrl)
	h := NewRatingHandler(mockUC)

	mockUC.EXPECT().FindRatingsByEntity(gomock.Any(), int64(3), "captain").Return([]*models.Rating{}, nil)
	c, rec := newContext(http.MethodGet, "/?entity_id=3&entity_type=captain", "")
	assert.NoError(t, h.SearchByEntity(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/?entity_type=captain", "")
	assert.NoError(t, h.SearchByEntity(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	mockUC.EXPECT().FindRatingsByEntityType(gomock.Any(), "trip").Return([]*models.Rating{}, nil)
	c, rec = newContext(http.MethodGet, "/?entity_type=trip", "")
	assert.NoError(t, h.SearchByEntityType(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	mockUC.EXPECT().FindRatingsAboveScore(gomock.Any(), 4).Return([]*models.Rating{{Score: 5}}, nil)
	c, rec = newContext(http.MethodGet, "/?min_score=4", "")
	assert.NoError(t, h.SearchByMinScore(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/?min_score=high", "")
	assert.NoError(t, h.SearchByMinScore(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	mockUC.EXPECT().FindRatingsByScoreRange(gomock.Any(), 2, 4).Return([]*models.Rating{}, nil)
	c, rec = newContext(http.MethodGet, "/?min=2&max=4", "")
	assert.NoError(t, h.SearchByScoreRange(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/?min=2", "")
	assert.NoError(t, h.SearchByScoreRange(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecomputeCaptain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRatingUC(ctrl)
	h := NewRatingHandler(mockUC)

	t.Run("recomputed", func(t *testing.T) {
		avg := 4.25
		mockUC.EXPECT().RecomputeCaptainRating(gomock.Any(), int64(1)).Return(&avg, nil)
		c, rec := newContext(http.MethodPost, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("1")

		assert.NoError(t, h.RecomputeCaptain(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		data := response["data"].(map[string]interface{})
		assert.Equal(t, float64(1), data["captainId"])
		assert.Equal(t, 4.25, data["avgRatingScore"])
	})

	t.Run("no ratings", func(t *testing.T) {
		mockUC.EXPECT().RecomputeCaptainRating(gomock.Any(), int64(2)).Return(nil, nil)
		c, rec := newContext(http.MethodPost, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("2")

		assert.NoError(t, h.RecomputeCaptain(c))
		assert.Contains(t, rec.Body.String(), `"avgRatingScore":null`)
	})

	t.Run("unknown captain", func(t *testing.T) {
		mockUC.EXPECT().RecomputeCaptainRating(gomock.Any(), int64(9)).Return(nil, models.NewNotFoundError("captain %d", 9))
		c, rec := newContext(http.MethodPost, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("9")

		assert.NoError(t, h.RecomputeCaptain(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
