package models

import (
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodWallet     PaymentMethod = "wallet"
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	method := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	switch method {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodCash, PaymentMethodWallet:
		return method, true
	}
	return "", false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	status := PaymentStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return status, true
	}
	return "", false
}

// Payment settles a trip; a trip has at most one payment
type Payment struct {
	ID            int64         `json:"id" db:"id"`
	Amount        float64       `json:"amount" db:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod" db:"payment_method"`
	PaymentStatus PaymentStatus `json:"paymentStatus" db:"payment_status"`
	PaymentTime   time.Time     `json:"paymentTime" db:"payment_time"`
	TripID        int64         `json:"tripId" db:"trip_id"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}

type PaymentRequest struct {
	Amount        float64    `json:"amount" validate:"min=0"`
	PaymentMethod string     `json:"paymentMethod" validate:"required"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentTime   *time.Time `json:"paymentTime"`
	TripID        *int64     `json:"tripId" validate:"required"`
}

// PaymentPatch cannot move a payment to another trip
type PaymentPatch struct {
	Amount        *float64       `json:"amount"`
	PaymentMethod *PaymentMethod `json:"paymentMethod"`
	PaymentStatus *PaymentStatus `json:"paymentStatus"`
	PaymentTime   *time.Time     `json:"paymentTime"`
}

type PaymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func MergePayment(existing Payment, patch PaymentPatch) Payment {
	mergeField(&existing.Amount, patch.Amount)
	mergeField(&existing.PaymentMethod, patch.PaymentMethod)
	mergeField(&existing.PaymentStatus, patch.PaymentStatus)
	mergeField(&existing.PaymentTime, patch.PaymentTime)
	return existing
}
