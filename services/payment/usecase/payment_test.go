package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	guardmocks "github.com/piresc/ridehail-admin/services/consistency/mocks"
	"github.com/piresc/ridehail-admin/services/payment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func int64Ptr(v int64) *int64 { return &v }

func newTestUC(t *testing.T) (*PaymentUC, *mocks.MockPaymentRepo, *guardmocks.MockGuard) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockPaymentRepo(ctrl)
	guard := guardmocks.NewMockGuard(ctrl)
	uc := NewPaymentUC(repo, guard, &models.Config{})
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, guard
}

func TestCreatePayment_Defaults(t *testing.T) {
	// Arrange
	uc, repo, guard := newTestUC(t)
	req := models.PaymentRequest{Amount: 20, PaymentMethod: "CASH", TripID: int64Ptr(3)}

	guard.EXPECT().RequireTrip(gomock.Any(), int64(3)).Return(nil)
	guard.EXPECT().RequireNoPaymentForTrip(gomock.Any(), int64(3)).Return(nil)
	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
			assert.Equal(t, models.PaymentMethodCash, p.PaymentMethod)
			assert.Equal(t, models.PaymentStatusPending, p.PaymentStatus)
			assert.Equal(t, fixedNow, p.PaymentTime)
			out := *p
			out.ID = 1
			return &out, nil
		})

	// Act
	got, err := uc.CreatePayment(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestCreatePayment_SecondPaymentRejected(t *testing.T) {
	uc, repo, guard := newTestUC(t)
	first := &models.Payment{ID: 1, Amount: 20, PaymentMethod: models.PaymentMethodCash, PaymentStatus: models.PaymentStatusCompleted, TripID: 3}

	guard.EXPECT().RequireTrip(gomock.Any(), int64(3)).Return(nil)
	guard.EXPECT().RequireNoPaymentForTrip(gomock.Any(), int64(3)).
		Return(models.NewConflictError("trip %d already has a payment", 3))
	repo.EXPECT().GetPaymentByID(gomock.Any(), int64(1)).Return(first, nil)

	_, err := uc.CreatePayment(context.Background(), models.PaymentRequest{Amount: 99, PaymentMethod: "wallet", TripID: int64Ptr(3)})
	assert.True(t, models.IsConflict(err))

	got, err := uc.GetPaymentByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestCreatePayment_TripMustExist(t *testing.T) {
	uc, _, guard := newTestUC(t)

	guard.EXPECT().RequireTrip(gomock.Any(), int64(77)).Return(models.NewNotFoundError("trip %d", 77))

	_, err := uc.CreatePayment(context.Background(), models.PaymentRequest{Amount: 1, PaymentMethod: "cash", TripID: int64Ptr(77)})
	assert.True(t, models.IsNotFound(err))
}

func TestCreatePayment_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.PaymentRequest
	}{
		{"no trip", models.PaymentRequest{Amount: 1, PaymentMethod: "cash"}},
		{"negative amount", models.PaymentRequest{Amount: -1, PaymentMethod: "cash", TripID: int64Ptr(1)}},
		{"unknown method", models.PaymentRequest{Amount: 1, PaymentMethod: "barter", TripID: int64Ptr(1)}},
		{"unknown status", models.PaymentRequest{Amount: 1, PaymentMethod: "cash", PaymentStatus: "lost", TripID: int64Ptr(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newTestUC(t)
			_, err := uc.CreatePayment(context.Background(), tt.req)
			assert.True(t, models.IsValidation(err))
		})
	}
}

func TestUpdatePayment(t *testing.T) {
	existing := &models.Payment{ID: 1, Amount: 20, PaymentMethod: models.PaymentMethodCash, PaymentStatus: models.PaymentStatusPending, PaymentTime: fixedNow, TripID: 3}

	t.Run("partial", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)
		status := models.PaymentStatus("COMPLETED")

		repo.EXPECT().GetPaymentByID(gomock.Any(), int64(1)).Return(existing, nil)
		repo.EXPECT().UpdatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
				assert.Equal(t, models.PaymentStatusCompleted, p.PaymentStatus)
				assert.Equal(t, 20.0, p.Amount)
				assert.Equal(t, int64(3), p.TripID)
				return p, nil
			})

		_, err := uc.UpdatePayment(context.Background(), 1, models.PaymentPatch{PaymentStatus: &status})
		require.NoError(t, err)
	})

	t.Run("bad method", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)
		method := models.PaymentMethod("cheque")
		repo.EXPECT().GetPaymentByID(gomock.Any(), int64(1)).Return(existing, nil)

		_, err := uc.UpdatePayment(context.Background(), 1, models.PaymentPatch{PaymentMethod: &method})
		assert.True(t, models.IsValidation(err))
	})

	t.Run("missing", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)
		repo.EXPECT().GetPaymentByID(gomock.Any(), int64(2)).Return(nil, nil)

		_, err := uc.UpdatePayment(context.Background(), 2, models.PaymentPatch{})
		assert.True(t, models.IsNotFound(err))
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().UpdatePaymentStatus(gomock.Any(), int64(1), models.PaymentStatusRefunded).
		Return(&models.Payment{ID: 1, PaymentStatus: models.PaymentStatusRefunded}, nil)
	got, err := uc.UpdatePaymentStatus(context.Background(), 1, "refunded")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, got.PaymentStatus)

	_, err = uc.UpdatePaymentStatus(context.Background(), 1, "gone")
	assert.True(t, models.IsValidation(err))
}

func TestFindPayments(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().FindPaymentsByTripID(gomock.Any(), int64(5)).Return([]*models.Payment{}, nil)
	got, err := uc.FindPaymentsByTripID(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = uc.FindPaymentsByAmountGreaterThan(context.Background(), -5)
	assert.True(t, models.IsValidation(err))

	repo.EXPECT().FindPaymentsByAmountGreaterThan(gomock.Any(), 10.0).Return([]*models.Payment{{ID: 1}}, nil)
	got, err = uc.FindPaymentsByAmountGreaterThan(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	repo.EXPECT().FindPaymentsByStatus(gomock.Any(), models.PaymentStatusFailed).Return([]*models.Payment{}, nil)
	_, err = uc.FindPaymentsByStatus(context.Background(), "failed")
	assert.NoError(t, err)

	repo.EXPECT().FindPaymentsByMethod(gomock.Any(), models.PaymentMethodDebitCard).Return([]*models.Payment{}, nil)
	_, err = uc.FindPaymentsByMethod(context.Background(), "debit_card")
	assert.NoError(t, err)

	_, err = uc.FindPaymentsByMethod(context.Background(), "")
	assert.True(t, models.IsValidation(err))
}
