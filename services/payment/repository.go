package payment

import (
	"context"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ridehail-admin/services/payment PaymentRepo

// PaymentRepo is the entity store for payments
type PaymentRepo interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error)
	ListPayments(ctx context.Context) ([]*models.Payment, error)
	UpdatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status models.PaymentStatus) (*models.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
	ExistsByTripID(ctx context.Context, tripID int64) (bool, error)
	FindPaymentsByTripID(ctx context.Context, tripID int64) ([]*models.Payment, error)
	FindPaymentsByAmountGreaterThan(ctx context.Context, threshold float64) ([]*models.Payment, error)
	FindPaymentsByStatus(ctx context.Context, status models.PaymentStatus) ([]*models.Payment, error)
	FindPaymentsByMethod(ctx context.Context, method models.PaymentMethod) ([]*models.Payment, error)
}
