package usecase

import (
	"context"
	"strings"

	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

// CreatePayment settles an existing trip that has no payment yet
func (uc *PaymentUC) CreatePayment(ctx context.Context, req models.PaymentRequest) (*models.Payment, error) {
	if req.TripID == nil {
		return nil, models.NewValidationError("tripId is required")
	}
	if req.Amount < 0 {
		return nil, models.NewValidationError("amount must not be negative")
	}
	method, ok := models.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		return nil, models.NewValidationError("unknown payment method %q", req.PaymentMethod)
	}

	p := &models.Payment{
		Amount:        req.Amount,
		PaymentMethod: method,
		PaymentStatus: models.PaymentStatusPending,
		PaymentTime:   uc.now().UTC(),
		TripID:        *req.TripID,
	}
	if strings.TrimSpace(req.PaymentStatus) != "" {
		status, ok := models.ParsePaymentStatus(req.PaymentStatus)
		if !ok {
			return nil, models.NewValidationError("unknown payment status %q", req.PaymentStatus)
		}
		p.PaymentStatus = status
	}
	if req.PaymentTime != nil {
		p.PaymentTime = *req.PaymentTime
	}

	if err := uc.guard.RequireTrip(ctx, p.TripID); err != nil {
		return nil, err
	}
	if err := uc.guard.RequireNoPaymentForTrip(ctx, p.TripID); err != nil {
		logger.Warn("Duplicate payment rejected", logger.Int64("trip_id", p.TripID))
		return nil, err
	}

	created, err := uc.paymentRepo.CreatePayment(ctx, p)
	if err != nil {
		return nil, err
	}

	logger.Info("Payment created",
		logger.Int64("payment_id", created.ID),
		logger.Int64("trip_id", created.TripID),
		logger.Float64("amount", created.Amount))
	return created, nil
}

func (uc *PaymentUC) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	p, err := uc.paymentRepo.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, models.NewNotFoundError("payment %d", id)
	}
	return p, nil
}

func (uc *PaymentUC) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return uc.paymentRepo.ListPayments(ctx)
}

// UpdatePayment merges the patch; the trip link is immutable
func (uc *PaymentUC) UpdatePayment(ctx context.Context, id int64, patch models.PaymentPatch) (*models.Payment, error) {
	existing, err := uc.paymentRepo.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.NewNotFoundError("payment %d", id)
	}

	if patch.PaymentMethod != nil {
		method, ok := models.ParsePaymentMethod(string(*patch.PaymentMethod))
		if !ok {
			return nil, models.NewValidationError("unknown payment method %q", *patch.PaymentMethod)
		}
		patch.PaymentMethod = &method
	}
	if patch.PaymentStatus != nil {
		status, ok := models.ParsePaymentStatus(string(*patch.PaymentStatus))
		if !ok {
			return nil, models.NewValidationError("unknown payment status %q", *patch.PaymentStatus)
		}
		patch.PaymentStatus = &status
	}

	merged := models.MergePayment(*existing, patch)
	if merged.Amount < 0 {
		return nil, models.NewValidationError("amount must not be negative")
	}

	updated, err := uc.paymentRepo.UpdatePayment(ctx, &merged)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, models.NewNotFoundError("payment %d", id)
	}
	return updated, nil
}

func (uc *PaymentUC) UpdatePaymentStatus(ctx context.Context, id int64, status string) (*models.Payment, error) {
	parsed, ok := models.ParsePaymentStatus(status)
	if !ok {
		return nil, models.NewValidationError("unknown payment status %q", status)
	}

	updated, err := uc.paymentRepo.UpdatePaymentStatus(ctx, id, parsed)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, models.NewNotFoundError("payment %d", id)
	}

	logger.Info("Payment status updated",
		logger.Int64("payment_id", id),
		logger.String("status", string(parsed)))
	return updated, nil
}

func (uc *PaymentUC) DeletePayment(ctx context.Context, id int64) error {
	if err := uc.paymentRepo.DeletePayment(ctx, id); err != nil {
		return err
	}
	logger.Info("Payment deleted", logger.Int64("payment_id", id))
	return nil
}

// FindPaymentsByTripID returns an empty slice when the trip is unpaid
func (uc *PaymentUC) FindPaymentsByTripID(ctx context.Context, tripID int64) ([]*models.Payment, error) {
	if tripID <= 0 {
		return nil, models.NewValidationError("trip id must be positive")
	}
	return uc.paymentRepo.FindPaymentsByTripID(ctx, tripID)
}

func (uc *PaymentUC) FindPaymentsByAmountGreaterThan(ctx context.Context, threshold float64) ([]*models.Payment, error) {
	if threshold < 0 {
		return nil, models.NewValidationError("amount threshold must not be negative")
	}
	return uc.paymentRepo.FindPaymentsByAmountGreaterThan(ctx, threshold)
}

func (uc *PaymentUC) FindPaymentsByStatus(ctx context.Context, status string) ([]*models.Payment, error) {
	parsed, ok := models.ParsePaymentStatus(status)
	if !ok {
		return nil, models.NewValidationError("unknown payment status %q", status)
	}
	return uc.paymentRepo.FindPaymentsByStatus(ctx, parsed)
}

func (uc *PaymentUC) FindPaymentsByMethod(ctx context.Context, method string) ([]*models.Payment, error) {
	parsed, ok := models.ParsePaymentMethod(method)
	if !ok {
		return nil, models.NewValidationError("unknown payment method %q", method)
	}
	return uc.paymentRepo.FindPaymentsByMethod(ctx, parsed)
}
