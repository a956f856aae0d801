package models

import "time"

// Captain is a driver who performs trips
type Captain struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	LicenseNumber  string    `json:"licenseNumber" db:"license_number"`
	AvgRatingScore *float64  `json:"avgRatingScore" db:"avg_rating_score"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// CaptainRequest is the create payload
type CaptainRequest struct {
	Name           string   `json:"name" validate:"required"`
	LicenseNumber  string   `json:"licenseNumber" validate:"required"`
	AvgRatingScore *float64 `json:"avgRatingScore" validate:"omitempty,min=0,max=5"`
}

// CaptainPatch is a partial update; nil fields keep the stored value.
// The average rating is a projection and cannot be patched.
type CaptainPatch struct {
	Name          *string `json:"name"`
	LicenseNumber *string `json:"licenseNumber"`
}

// MergeCaptain applies patch onto a copy of existing
func MergeCaptain(existing Captain, patch CaptainPatch) Captain {
	mergeField(&existing.Name, patch.Name)
	mergeField(&existing.LicenseNumber, patch.LicenseNumber)
	return existing
}
