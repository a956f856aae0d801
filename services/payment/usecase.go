package payment

import (
	"context"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ridehail-admin/services/payment PaymentUC

// PaymentUC defines payment business operations
type PaymentUC interface {
	CreatePayment(ctx context.Context, req models.PaymentRequest) (*models.Payment, error)
	GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error)
	ListPayments(ctx context.Context) ([]*models.Payment, error)
	UpdatePayment(ctx context.Context, id int64, patch models.PaymentPatch) (*models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status string) (*models.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
	FindPaymentsByTripID(ctx context.Context, tripID int64) ([]*models.Payment, error)
	FindPaymentsByAmountGreaterThan(ctx context.Context, threshold float64) ([]*models.Payment, error)
	FindPaymentsByStatus(ctx context.Context, status string) ([]*models.Payment, error)
	FindPaymentsByMethod(ctx context.Context, method string) ([]*models.Payment, error)
}
