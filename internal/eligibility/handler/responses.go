package handler

import "schemesathi/internal/eligibility"

// RecommendResponse wraps the ranked evaluations.
type RecommendResponse struct {
	Recommendations []eligibility.Evaluation `json:"recommendations"`
}
