package eligibility

import "schemesathi/internal/catalog"

// Profile is one applicant's snapshot. It is owned by the caller, immutable
// for the duration of a call, and always passed explicitly; the core keeps no
// ambient profile state.
type Profile struct {
	Age            int     `json:"age"`
	AnnualIncome   float64 `json:"annual_income"`
	Location       string  `json:"location"`
	Occupation     string  `json:"occupation"`
	SocialCategory string  `json:"social_category"`
	Disability     bool    `json:"disability"`
	LandOwnership  bool    `json:"land_ownership"`
	EducationLevel string  `json:"education_level"`
	FamilySize     int     `json:"family_size"`
}

// Evaluation is the transient verdict for one (profile, scheme) pair. It is
// recomputed on every request and never persisted.
//
// Invariant: Eligible is true iff Probability == 100, given at least one
// applicable constraint.
type Evaluation struct {
	Scheme          catalog.Scheme `json:"scheme"`
	Eligible        bool           `json:"eligible"`
	Probability     int            `json:"probability"`
	MissingCriteria []string       `json:"missing_criteria,omitempty"`
	Tips            []string       `json:"tips,omitempty"`
}

// Summary aggregates evaluations across the whole catalog for one profile.
type Summary struct {
	TotalSchemes       int              `json:"total_schemes"`
	EligibleCount      int              `json:"eligible_count"`
	PartialCount       int              `json:"partial_count"`
	EligibilityRate    int              `json:"eligibility_rate"`
	AverageProbability int              `json:"average_probability"`
	TopCategory        catalog.Category `json:"top_category,omitempty"`
}
