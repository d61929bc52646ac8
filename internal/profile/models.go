package profile

import (
	"time"

	"schemesathi/internal/eligibility"
)

// Record is one user's stored demographic profile. Profiles are written
// whole: a PUT replaces the previous record.
type Record struct {
	UserID    string              `json:"user_id"`
	Profile   eligibility.Profile `json:"profile"`
	UpdatedAt time.Time           `json:"updated_at"`
}
