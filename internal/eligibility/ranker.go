package eligibility

import (
	"math"
	"sort"

	"schemesathi/internal/catalog"
)

// Rank evaluates every scheme for the profile and orders the results by
// descending probability. The sort is stable so ties keep catalog order,
// which keeps results deterministic. Truncating to a top-N window is the
// caller's concern.
func Rank(profile Profile, schemes []catalog.Scheme) []Evaluation {
	evals := make([]Evaluation, 0, len(schemes))
	for _, scheme := range schemes {
		evals = append(evals, Evaluate(profile, scheme))
	}

	sort.SliceStable(evals, func(i, j int) bool {
		return evals[i].Probability > evals[j].Probability
	})

	return evals
}

// Summarize derives aggregate statistics over all evaluations for one profile.
// An empty catalog yields the zero-valued summary; no division happens when
// there is nothing to divide.
func Summarize(profile Profile, schemes []catalog.Scheme) Summary {
	summary := Summary{TotalSchemes: len(schemes)}
	if len(schemes) == 0 {
		return summary
	}

	probabilitySum := 0
	categorySums := make(map[catalog.Category]int, 8)
	var categoryOrder []catalog.Category

	for _, scheme := range schemes {
		eval := Evaluate(profile, scheme)

		if eval.Eligible {
			summary.EligibleCount++
		} else if eval.Probability > 50 {
			summary.PartialCount++
		}
		probabilitySum += eval.Probability

		if _, seen := categorySums[scheme.Category]; !seen {
			categoryOrder = append(categoryOrder, scheme.Category)
		}
		categorySums[scheme.Category] += eval.Probability
	}

	total := float64(len(schemes))
	summary.EligibilityRate = int(math.Round(100 * float64(summary.EligibleCount) / total))
	summary.AverageProbability = int(math.Round(float64(probabilitySum) / total))

	// Highest cumulative probability wins; ties go to the category seen first
	// in catalog order.
	best := -1
	for _, cat := range categoryOrder {
		if categorySums[cat] > best {
			best = categorySums[cat]
			summary.TopCategory = cat
		}
	}

	return summary
}
