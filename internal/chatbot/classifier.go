package chatbot

import "strings"

// Classify assigns a topic category to one raw utterance.
// This is pure domain logic - no I/O, no side effects, no state between calls.
//
// Precedence, in order:
//  1. irrelevant keywords short-circuit everything;
//  2. specific-scheme aliases resolve before generic topic rules, so "am I
//     eligible for pm kisan" answers about PM-KISAN rather than generic
//     eligibility;
//  3. the rule table, highest declared priority first, first-declared rule on
//     priority ties;
//  4. unknown.
//
// An utterance matching nothing is a normal outcome, not an error.
func Classify(utterance string) Classification {
	text := strings.ToLower(strings.TrimSpace(utterance))
	if text == "" {
		return Classification{Category: CategoryUnknown}
	}

	// Padding lets boundary-sensitive keywords (written with surrounding
	// spaces) match at the start and end of the utterance.
	padded := " " + text + " "

	for _, kw := range irrelevantKeywords {
		if strings.Contains(padded, kw) {
			return Classification{Category: CategoryIrrelevant}
		}
	}

	for _, a := range schemeAliases {
		for _, phrase := range a.phrases {
			if strings.Contains(padded, phrase) {
				return Classification{Category: CategorySpecificScheme, SchemeID: a.schemeID}
			}
		}
	}

	best := Classification{Category: CategoryUnknown, Priority: -1}
	for _, r := range rules {
		if !matches(padded, r.keywords) {
			continue
		}
		// Strictly greater keeps the first-declared rule on ties.
		if r.priority > best.Priority {
			best = Classification{Category: r.category, Priority: r.priority}
		}
	}

	if best.Priority < 0 {
		return Classification{Category: CategoryUnknown}
	}
	return best
}

// matches reports whether any keyword of the rule appears in the utterance.
// Rule selection uses declared priority, never the match count.
func matches(padded string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(padded, kw) {
			return true
		}
	}
	return false
}
