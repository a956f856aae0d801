package validator

import (
	"testing"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestEchoValidator(t *testing.T) {
	v := New()

	t.Run("valid customer", func(t *testing.T) {
		err := v.Validate(models.CustomerRequest{Name: "Sari", Email: "sari@mail.com", PhoneNumber: "0812"})
		assert.NoError(t, err)
	})

	t.Run("missing and malformed fields", func(t *testing.T) {
		err := v.Validate(models.CustomerRequest{Email: "not-an-email"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Name is required")
		assert.Contains(t, err.Error(), "Email must be a valid email")
		assert.Contains(t, err.Error(), "PhoneNumber is required")
	})

	t.Run("negative cost", func(t *testing.T) {
		captain, customer := int64(1), int64(2)
		err := v.Validate(models.TripRequest{Origin: "A", Destination: "B", TripCost: -1, CaptainID: &captain, CustomerID: &customer})
		assert.EqualError(t, err, "TripCost must be at least 0")
	})
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@mail.com"))
	assert.False(t, IsEmail("a@"))
	assert.False(t, IsEmail(""))
}
