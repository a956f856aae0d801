package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating targets
const (
	EntityTypeCaptain  = "captain"
	EntityTypeCustomer = "customer"
	EntityTypeTrip     = "trip"
)

// NormalizeEntityType lower-cases and trims an entity type
func NormalizeEntityType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsCaptainTarget reports whether entityType names a captain, ignoring case
func IsCaptainTarget(entityType string) bool {
	return NormalizeEntityType(entityType) == EntityTypeCaptain
}

// Rating is a score given to a captain, customer or trip.
// It lives in the document store, so EntityID is not a real foreign key.
type Rating struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EntityID   int64              `json:"entityId" bson:"entity_id"`
	EntityType string             `json:"entityType" bson:"entity_type"`
	Score      int                `json:"score" bson:"score"`
	Comment    string             `json:"comment,omitempty" bson:"comment,omitempty"`
	RatingDate time.Time          `json:"ratingDate" bson:"rating_date"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updated_at"`
}

// RatingRequest keeps every field optional so the guards can report
// missing input as a validation error instead of a bind failure
type RatingRequest struct {
	EntityID   *int64     `json:"entityId"`
	EntityType string     `json:"entityType"`
	Score      *int       `json:"score"`
	Comment    string     `json:"comment"`
	RatingDate *time.Time `json:"ratingDate"`
}

// RatingPatch cannot retarget a rating
type RatingPatch struct {
	Score      *int       `json:"score"`
	Comment    *string    `json:"comment"`
	RatingDate *time.Time `json:"ratingDate"`
}

func MergeRating(existing Rating, patch RatingPatch) Rating {
	mergeField(&existing.Score, patch.Score)
	mergeField(&existing.Comment, patch.Comment)
	mergeField(&existing.RatingDate, patch.RatingDate)
	return existing
}

// CaptainRatingEvent is published after a captain's average is recomputed
type CaptainRatingEvent struct {
	CaptainID      int64     `json:"captainId"`
	AvgRatingScore float64   `json:"avgRatingScore"`
	RatingCount    int       `json:"ratingCount"`
	ComputedAt     time.Time `json:"computedAt"`
}

// RecomputeRequest asks a consumer to rebuild one captain's average
type RecomputeRequest struct {
	CaptainID   int64     `json:"captainId"`
	Reason      string    `json:"reason,omitempty"`
	RequestedAt time.Time `json:"requestedAt"`
}
