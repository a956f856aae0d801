package consistency

import (
	"context"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/internal/pkg/observability"
)

//go:generate mockgen -destination=mocks/mock_guard.go -package=mocks github.com/piresc/ridehail-admin/services/consistency Guard,EntityExister,PaymentLookup

// Guard runs precondition checks before a mutating write. Checks never
// mutate; a nil error means the write may proceed.
type Guard interface {
	RequireCaptain(ctx context.Context, id int64) error
	RequireCustomer(ctx context.Context, id int64) error
	RequireTrip(ctx context.Context, id int64) error
	RequireNoPaymentForTrip(ctx context.Context, tripID int64) error
	RequireRatingTarget(ctx context.Context, entityID *int64, entityType string) (string, error)
	ValidateScore(score *int) error
}

// EntityExister is the slice of an entity repository the guards need
type EntityExister interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type PaymentLookup interface {
	ExistsByTripID(ctx context.Context, tripID int64) (bool, error)
}

// EntityGuard checks references against the entity store
type EntityGuard struct {
	captains  EntityExister
	customers EntityExister
	trips     EntityExister
	payments  PaymentLookup
}

func NewEntityGuard(captains, customers, trips EntityExister, payments PaymentLookup) *EntityGuard {
	return &EntityGuard{
		captains:  captains,
		customers: customers,
		trips:     trips,
		payments:  payments,
	}
}

func (g *EntityGuard) RequireCaptain(ctx context.Context, id int64) error {
	return g.require(ctx, g.captains, models.EntityTypeCaptain, id)
}

func (g *EntityGuard) RequireCustomer(ctx context.Context, id int64) error {
	return g.require(ctx, g.customers, models.EntityTypeCustomer, id)
}

func (g *EntityGuard) RequireTrip(ctx context.Context, id int64) error {
	return g.require(ctx, g.trips, models.EntityTypeTrip, id)
}

func (g *EntityGuard) require(ctx context.Context, store EntityExister, kind string, id int64) error {
	if id <= 0 {
		reject(kind)
		return models.NewValidationError("%s id must be positive", kind)
	}
	ok, err := store.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		reject(kind)
		return models.NewNotFoundError("%s %d", kind, id)
	}
	return nil
}

// RequireNoPaymentForTrip enforces at most one payment per trip
func (g *EntityGuard) RequireNoPaymentForTrip(ctx context.Context, tripID int64) error {
	exists, err := g.payments.ExistsByTripID(ctx, tripID)
	if err != nil {
		return err
	}
	if exists {
		reject("payment_unique")
		return models.NewConflictError("trip %d already has a payment", tripID)
	}
	return nil
}

// RequireRatingTarget resolves (entityID, entityType) to an existing record
// and returns the normalized entity type.
func (g *EntityGuard) RequireRatingTarget(ctx context.Context, entityID *int64, entityType string) (string, error) {
	if entityID == nil {
		reject("rating_target")
		return "", models.NewValidationError("entityId is required")
	}
	kind := models.NormalizeEntityType(entityType)
	if kind == "" {
		reject("rating_target")
		return "", models.NewValidationError("entityType is required")
	}

	var err error
	switch kind {
	case models.EntityTypeCaptain:
		err = g.RequireCaptain(ctx, *entityID)
	case models.EntityTypeCustomer:
		err = g.RequireCustomer(ctx, *entityID)
	case models.EntityTypeTrip:
		err = g.RequireTrip(ctx, *entityID)
	default:
		reject("rating_target")
		return "", models.NewValidationError("unsupported entityType %q", entityType)
	}
	if err != nil {
		return "", err
	}
	return kind, nil
}

func (g *EntityGuard) ValidateScore(score *int) error {
	if score == nil {
		reject("score")
		return models.NewValidationError("score is required")
	}
	if *score < models.MinRatingScore || *score > models.MaxRatingScore {
		reject("score")
		return models.NewValidationError("score must be between %d and %d", models.MinRatingScore, models.MaxRatingScore)
	}
	return nil
}

func reject(guard string) {
	observability.GuardRejectionsTotal.WithLabelValues(guard).Inc()
}
