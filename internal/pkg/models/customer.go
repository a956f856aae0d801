package models

import "time"

// Customer is a rider who books trips
type Customer struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type CustomerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

type CustomerPatch struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
}

func MergeCustomer(existing Customer, patch CustomerPatch) Customer {
	mergeField(&existing.Name, patch.Name)
	mergeField(&existing.Email, patch.Email)
	mergeField(&existing.PhoneNumber, patch.PhoneNumber)
	return existing
}
