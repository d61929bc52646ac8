package handler

import (
	"strings"

	"schemesathi/internal/catalog"
	"schemesathi/internal/eligibility"
	dErrors "schemesathi/pkg/domain-errors"
)

// ValidateProfile checks the demographic fields shared by every endpoint that
// accepts a profile. Normalization lowercases the location so rural/urban
// checks stay case-insensitive.
func ValidateProfile(p *eligibility.Profile) error {
	if p.Age <= 0 || p.Age > 120 {
		return dErrors.New(dErrors.CodeValidation, "age must be between 1 and 120")
	}
	if p.AnnualIncome < 0 {
		return dErrors.New(dErrors.CodeValidation, "annual_income must not be negative")
	}
	p.Location = strings.ToLower(strings.TrimSpace(p.Location))
	if p.Location != "" && p.Location != catalog.LocationUrban && p.Location != catalog.LocationRural {
		return dErrors.New(dErrors.CodeValidation, "location must be urban or rural")
	}
	if p.FamilySize < 0 {
		return dErrors.New(dErrors.CodeValidation, "family_size must not be negative")
	}
	return nil
}

// EvaluateRequest asks for a single-scheme verdict.
type EvaluateRequest struct {
	SchemeID string              `json:"scheme_id"`
	Profile  eligibility.Profile `json:"profile"`
}

func (r *EvaluateRequest) Validate() error {
	r.SchemeID = strings.TrimSpace(r.SchemeID)
	if r.SchemeID == "" {
		return dErrors.New(dErrors.CodeValidation, "scheme_id is required")
	}
	return ValidateProfile(&r.Profile)
}

// RecommendRequest asks for the ranked catalog.
type RecommendRequest struct {
	Profile eligibility.Profile `json:"profile"`
	Limit   int                 `json:"limit"`
}

func (r *RecommendRequest) Validate() error {
	if r.Limit < 0 {
		return dErrors.New(dErrors.CodeValidation, "limit must not be negative")
	}
	return ValidateProfile(&r.Profile)
}

// SummaryRequest asks for the aggregate statistics.
type SummaryRequest struct {
	Profile eligibility.Profile `json:"profile"`
}

func (r *SummaryRequest) Validate() error {
	return ValidateProfile(&r.Profile)
}
