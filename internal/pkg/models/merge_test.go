package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMergeCaptain(t *testing.T) {
	avg := 4.5
	existing := Captain{ID: 1, Name: "Ali", LicenseNumber: "L-1", AvgRatingScore: &avg}

	t.Run("nil fields keep stored values", func(t *testing.T) {
		merged := MergeCaptain(existing, CaptainPatch{})
		assert.Equal(t, existing, merged)
	})

	t.Run("present fields overwrite", func(t *testing.T) {
		name := "Budi"
		merged := MergeCaptain(existing, CaptainPatch{Name: &name})
		assert.Equal(t, "Budi", merged.Name)
		assert.Equal(t, "L-1", merged.LicenseNumber)
		assert.Equal(t, &avg, merged.AvgRatingScore)
		assert.Equal(t, "Ali", existing.Name)
	})
}

func TestMergeTrip(t *testing.T) {
	date := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	existing := Trip{ID: 7, Origin: "A", Destination: "B", TripCost: 10, Status: TripStatusRequested, CaptainID: 1, CustomerID: 2}

	status := TripStatusCompleted
	cost := 0.0
	merged := MergeTrip(existing, TripPatch{TripDate: &date, Status: &status, TripCost: &cost})

	assert.Equal(t, date, merged.TripDate)
	assert.Equal(t, TripStatusCompleted, merged.Status)
	assert.Equal(t, 0.0, merged.TripCost)
	assert.Equal(t, "A", merged.Origin)
	assert.Equal(t, int64(1), merged.CaptainID)
}

func TestMergeRatingKeepsTarget(t *testing.T) {
	existing := Rating{EntityID: 3, EntityType: EntityTypeCaptain, Score: 2, Comment: "slow"}
	score := 5
	merged := MergeRating(existing, RatingPatch{Score: &score})

	assert.Equal(t, 5, merged.Score)
	assert.Equal(t, "slow", merged.Comment)
	assert.Equal(t, int64(3), merged.EntityID)
	assert.Equal(t, EntityTypeCaptain, merged.EntityType)
}

func TestParseEnums(t *testing.T) {
	s, ok := ParseTripStatus(" In_Progress ")
	assert.True(t, ok)
	assert.Equal(t, TripStatusInProgress, s)

	_, ok = ParseTripStatus("teleported")
	assert.False(t, ok)

	m, ok := ParsePaymentMethod("WALLET")
	assert.True(t, ok)
	assert.Equal(t, PaymentMethodWallet, m)

	_, ok = ParsePaymentStatus("maybe")
	assert.False(t, ok)
}

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("create payment: %w", NewConflictError("trip %d already has a payment", 9))
	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "trip 9 already has a payment")

	assert.True(t, IsValidation(NewValidationError("score must be between %d and %d", 1, 5)))
	assert.True(t, IsNotFound(NewNotFoundError("captain 1")))
}

func TestIsCaptainTarget(t *testing.T) {
	assert.True(t, IsCaptainTarget("CAPTAIN"))
	assert.True(t, IsCaptainTarget(" captain"))
	assert.False(t, IsCaptainTarget("customer"))
}
