package models

import (
	"strings"
	"time"
)

// TripStatus is a label only; transitions are not enforced
type TripStatus string

const (
	TripStatusRequested  TripStatus = "requested"
	TripStatusAccepted   TripStatus = "accepted"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCancelled  TripStatus = "cancelled"
)

// ParseTripStatus normalizes s and reports whether it is a known status
func ParseTripStatus(s string) (TripStatus, bool) {
	status := TripStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case TripStatusRequested, TripStatusAccepted, TripStatusInProgress, TripStatusCompleted, TripStatusCancelled:
		return status, true
	}
	return "", false
}

// Trip links exactly one captain and one customer
type Trip struct {
	ID          int64      `json:"id" db:"id"`
	TripDate    time.Time  `json:"tripDate" db:"trip_date"`
	Origin      string     `json:"origin" db:"origin"`
	Destination string     `json:"destination" db:"destination"`
	TripCost    float64    `json:"tripCost" db:"trip_cost"`
	Status      TripStatus `json:"status" db:"status"`
	CaptainID   int64      `json:"captainId" db:"captain_id"`
	CustomerID  int64      `json:"customerId" db:"customer_id"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

type TripRequest struct {
	TripDate    *time.Time `json:"tripDate"`
	Origin      string     `json:"origin" validate:"required"`
	Destination string     `json:"destination" validate:"required"`
	TripCost    float64    `json:"tripCost" validate:"min=0"`
	Status      string     `json:"status"`
	CaptainID   *int64     `json:"captainId" validate:"required"`
	CustomerID  *int64     `json:"customerId" validate:"required"`
}

type TripPatch struct {
	TripDate    *time.Time  `json:"tripDate"`
	Origin      *string     `json:"origin"`
	Destination *string     `json:"destination"`
	TripCost    *float64    `json:"tripCost"`
	Status      *TripStatus `json:"status"`
	CaptainID   *int64      `json:"captainId"`
	CustomerID  *int64      `json:"customerId"`
}

type TripStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func MergeTrip(existing Trip, patch TripPatch) Trip {
	mergeField(&existing.TripDate, patch.TripDate)
	mergeField(&existing.Origin, patch.Origin)
	mergeField(&existing.Destination, patch.Destination)
	mergeField(&existing.TripCost, patch.TripCost)
	mergeField(&existing.Status, patch.Status)
	mergeField(&existing.CaptainID, patch.CaptainID)
	mergeField(&existing.CustomerID, patch.CustomerID)
	return existing
}
