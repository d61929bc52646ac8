package eligibility

import (
	"fmt"
	"strings"

	"schemesathi/internal/catalog"
)

// constraint is one applicable criterion from a scheme's eligibility
// specification. The four kinds (range, ceiling, set-membership,
// required-boolean) all evaluate through this interface so the evaluator never
// branches per field.
type constraint interface {
	// satisfied reports whether the profile meets the criterion.
	satisfied(p Profile) bool
	// missing describes the unmet criterion using its concrete bounds.
	missing(p Profile) string
	// tip phrases guidance from the profile's current value toward the
	// criterion.
	tip(p Profile) string
}

// constraints builds the applicable constraint list for a spec in the fixed
// evaluation order: age range, income ceiling, occupation set, location set,
// category set, disability flag, land-ownership flag, education set. The order
// keeps missing-criteria and tip lists reproducible for identical input.
func constraints(spec catalog.EligibilitySpec) []constraint {
	var cons []constraint

	if spec.MinAge != nil || spec.MaxAge != nil {
		cons = append(cons, ageRange{min: spec.MinAge, max: spec.MaxAge})
	}
	if spec.MaxIncome != nil {
		cons = append(cons, incomeCeiling{ceiling: *spec.MaxIncome})
	}
	if len(spec.Occupations) > 0 {
		cons = append(cons, setMembership{
			label:   "occupation",
			allowed: spec.Occupations,
			value:   func(p Profile) string { return p.Occupation },
		})
	}
	if len(spec.Locations) > 0 {
		cons = append(cons, setMembership{
			label:   "location",
			allowed: spec.Locations,
			value:   func(p Profile) string { return p.Location },
		})
	}
	if len(spec.SocialCategories) > 0 {
		cons = append(cons, setMembership{
			label:   "social category",
			allowed: spec.SocialCategories,
			value:   func(p Profile) string { return p.SocialCategory },
		})
	}
	if spec.RequiresDisability != nil {
		cons = append(cons, disabilityFlag{required: *spec.RequiresDisability})
	}
	if spec.RequiresLandOwnership != nil {
		cons = append(cons, landOwnershipFlag{required: *spec.RequiresLandOwnership})
	}
	if len(spec.EducationLevels) > 0 {
		cons = append(cons, setMembership{
			label:   "education level",
			allowed: spec.EducationLevels,
			value:   func(p Profile) string { return p.EducationLevel },
		})
	}

	return cons
}

// ageRange checks min <= age <= max, inclusive on both ends. Either bound may
// be absent.
type ageRange struct {
	min, max *int
}

func (c ageRange) satisfied(p Profile) bool {
	if c.min != nil && p.Age < *c.min {
		return false
	}
	if c.max != nil && p.Age > *c.max {
		return false
	}
	return true
}

func (c ageRange) bounds() string {
	switch {
	case c.min != nil && c.max != nil:
		return fmt.Sprintf("between %d and %d", *c.min, *c.max)
	case c.min != nil:
		return fmt.Sprintf("at least %d", *c.min)
	default:
		return fmt.Sprintf("at most %d", *c.max)
	}
}

func (c ageRange) missing(Profile) string {
	return fmt.Sprintf("Age must be %s", c.bounds())
}

func (c ageRange) tip(p Profile) string {
	return fmt.Sprintf("Current age is %d; the scheme requires age %s", p.Age, c.bounds())
}

// incomeCeiling checks annual income <= ceiling, inclusive.
type incomeCeiling struct {
	ceiling float64
}

func (c incomeCeiling) satisfied(p Profile) bool {
	return p.AnnualIncome <= c.ceiling
}

func (c incomeCeiling) missing(Profile) string {
	return fmt.Sprintf("Annual income must not exceed ₹%.0f", c.ceiling)
}

func (c incomeCeiling) tip(p Profile) string {
	return fmt.Sprintf("Current annual income is ₹%.0f; the scheme requires at most ₹%.0f", p.AnnualIncome, c.ceiling)
}

// setMembership checks that the profile value is one of the allowed values.
// Comparison is case-insensitive so catalog casing never decides a verdict.
type setMembership struct {
	label   string
	allowed []string
	value   func(p Profile) string
}

func (c setMembership) satisfied(p Profile) bool {
	v := c.value(p)
	for _, a := range c.allowed {
		if strings.EqualFold(a, v) {
			return true
		}
	}
	return false
}

func (c setMembership) missing(Profile) string {
	return fmt.Sprintf("%s must be one of: %s", capitalize(c.label), strings.Join(c.allowed, ", "))
}

func (c setMembership) tip(p Profile) string {
	current := c.value(p)
	if current == "" {
		current = "not set"
	}
	return fmt.Sprintf("Current %s is %s; the scheme is open to: %s", c.label, current, strings.Join(c.allowed, ", "))
}

// disabilityFlag checks the profile's disability flag equals the required
// value exactly.
type disabilityFlag struct {
	required bool
}

func (c disabilityFlag) satisfied(p Profile) bool {
	return p.Disability == c.required
}

func (c disabilityFlag) missing(Profile) string {
	if c.required {
		return "Requires a disability certificate"
	}
	return "Not open to holders of a disability certificate"
}

func (c disabilityFlag) tip(p Profile) string {
	if c.required {
		return "Obtain a disability certificate from a government hospital to qualify"
	}
	return "This scheme is restricted to applicants without disability certification"
}

// landOwnershipFlag checks the profile's land-ownership flag equals the
// required value exactly.
type landOwnershipFlag struct {
	required bool
}

func (c landOwnershipFlag) satisfied(p Profile) bool {
	return p.LandOwnership == c.required
}

func (c landOwnershipFlag) missing(Profile) string {
	if c.required {
		return "Requires agricultural land ownership"
	}
	return "Only for applicants without land ownership"
}

func (c landOwnershipFlag) tip(p Profile) string {
	if c.required {
		return "Land ownership records in your name are needed to qualify"
	}
	return "This scheme targets landless applicants"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
