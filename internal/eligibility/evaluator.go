package eligibility

import (
	"math"

	"schemesathi/internal/catalog"
)

// Evaluate scores one profile against one scheme.
// This is pure domain logic - no I/O, no side effects. The function is
// deterministic for identical inputs and never fails on valid input.
//
// Probability is round(100 * satisfied / applicable) over the constraints that
// are actually set on the scheme; eligible iff every applicable constraint is
// satisfied. A scheme with zero constraints cannot be evaluated and is treated
// as a non-match rather than an automatic match, so it never surfaces as
// unranked noise.
func Evaluate(profile Profile, scheme catalog.Scheme) Evaluation {
	result := Evaluation{Scheme: scheme}

	cons := constraints(scheme.Eligibility)
	applicable := len(cons)
	if applicable == 0 {
		return result
	}

	satisfied := 0
	for _, c := range cons {
		if c.satisfied(profile) {
			satisfied++
			continue
		}
		result.MissingCriteria = append(result.MissingCriteria, c.missing(profile))
		result.Tips = append(result.Tips, c.tip(profile))
	}

	result.Probability = int(math.Round(100 * float64(satisfied) / float64(applicable)))
	result.Eligible = satisfied == applicable

	return result
}
