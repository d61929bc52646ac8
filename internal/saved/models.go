package saved

import "time"

// Record marks one scheme bookmarked by one user.
type Record struct {
	UserID   string    `json:"user_id"`
	SchemeID string    `json:"scheme_id"`
	SavedAt  time.Time `json:"saved_at"`
}
