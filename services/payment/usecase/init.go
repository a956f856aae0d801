package usecase

import (
	"time"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/services/consistency"
	"github.com/piresc/ridehail-admin/services/payment"
)

type PaymentUC struct {
	paymentRepo payment.PaymentRepo
	guard       consistency.Guard
	cfg         *models.Config
	now         func() time.Time
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(paymentRepo payment.PaymentRepo, guard consistency.Guard, cfg *models.Config) *PaymentUC {
	return &PaymentUC{
		paymentRepo: paymentRepo,
		guard:       guard,
		cfg:         cfg,
		now:         time.Now,
	}
}
