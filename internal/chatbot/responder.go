package chatbot

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"schemesathi/internal/catalog"
	"schemesathi/internal/eligibility"
	pstrings "schemesathi/pkg/platform/strings"
)

// Recommender is the slice of the eligibility service the responder borrows
// when assembling personalized answers.
type Recommender interface {
	Recommend(ctx context.Context, profile eligibility.Profile, limit int) ([]eligibility.Evaluation, error)
	Summary(ctx context.Context, profile eligibility.Profile) (*eligibility.Summary, error)
}

// request carries everything a builder may need for one response.
type request struct {
	classification Classification
	utterance      string
	profile        *eligibility.Profile
	lang           string
}

type builderFunc func(ctx context.Context, req request) Response

// Responder dispatches a classification to its response builder. Builders
/// never fail: a missing profile or an unknown scheme degrades to guidance
// text, and every response carries non-empty text with at most
// MaxQuickReplies chips.
type Responder struct {
	catalog     catalog.Store
	recommender Recommender
	builders    map[Category]builderFunc
}

// NewResponder wires the dispatch table.
func NewResponder(store catalog.Store, recommender Recommender) *Responder {
	r := &Responder{
		catalog:     store,
		recommender: recommender,
	}

	r.builders = map[Category]builderFunc{
		CategoryGreeting:       r.buildGreeting,
		CategoryEligibility:    r.buildEligibility,
		CategorySchemes:        r.buildSchemes,
		CategoryApplication:    r.buildApplication,
		CategoryDocuments:      r.buildDocuments,
		CategoryFarmer:         r.buildTopic,
		CategoryEducation:      r.buildTopic,
		CategoryHealth:         r.buildTopic,
		CategoryHousing:        r.buildTopic,
		CategoryPension:        r.buildTopic,
		CategoryBusiness:       r.buildTopic,
		CategoryWomen:          r.buildTopic,
		CategoryThanks:         r.buildThanks,
		CategoryHelp:           r.buildHelp,
		CategorySpecificScheme: r.buildSpecificScheme,
		CategoryIrrelevant:     r.buildIrrelevant,
		CategoryUnknown:        r.buildUnknown,
	}

	return r
}

// Respond dispatches to the builder for the classification's category and
// normalizes the result so the response contract always holds.
func (r *Responder) Respond(ctx context.Context, cls Classification, utterance string, profile *eligibility.Profile, lang string) Response {
	build, ok := r.builders[cls.Category]
	if !ok {
		build = r.buildUnknown
	}

	resp := build(ctx, request{
		classification: cls,
		utterance:      utterance,
		profile:        profile,
		lang:           lang,
	})

	if resp.Text == "" {
		resp = r.buildUnknown(ctx, request{classification: cls})
	}
	resp.QuickReplies = pstrings.Truncate(pstrings.DedupeAndTrim(resp.QuickReplies), MaxQuickReplies)

	return resp
}

func (r *Responder) buildGreeting(context.Context, request) Response {
	return Response{
		Text: "Namaste! I am SchemeSathi, your guide to government welfare schemes. " +
			"I can check which schemes you qualify for, recommend the best matches for your profile, " +
			"and walk you through applications and documents.",
		QuickReplies: []string{"Check my eligibility", "Recommend schemes", "How to apply", "Required documents"},
	}
}

func (r *Responder) buildThanks(context.Context, request) Response {
	return Response{
		Text:         "Happy to help! Come back any time you want to check a scheme or your eligibility.",
		QuickReplies: []string{"Check my eligibility", "Browse schemes"},
	}
}

func (r *Responder) buildHelp(context.Context, request) Response {
	return Response{
		Text: "Here is what I can do:\n" +
			"• Check which schemes you are eligible for\n" +
			"• Recommend schemes matched to your profile\n" +
			"• Explain how applications work and which documents you need\n" +
			"• Answer questions about a specific scheme, like PM-KISAN or Ayushman Bharat",
		QuickReplies: []string{"Check my eligibility", "Recommend schemes", "How to apply", "Required documents"},
	}
}

func (r *Responder) buildIrrelevant(context.Context, request) Response {
	return Response{
		Text: "I can only help with government welfare schemes — eligibility checks, recommendations, " +
			"applications, and documents. Is there a scheme I can help you with?",
		QuickReplies: []string{"Browse schemes", "Check my eligibility", "Help"},
	}
}

func (r *Responder) buildUnknown(context.Context, request) Response {
	return Response{
		Text: "Sorry, I did not understand that. I can check your eligibility, recommend schemes, " +
			"and explain applications and documents — try asking about one of those.",
		QuickReplies: []string{"Check my eligibility", "Recommend schemes", "How to apply", "Help"},
	}
}

func (r *Responder) buildApplication(context.Context, request) Response {
	return Response{
		Text: "Most schemes follow the same steps:\n" +
			"1. Confirm you meet the eligibility criteria\n" +
			"2. Gather the required documents\n" +
			"3. Apply on the scheme portal or at your nearest Common Service Centre\n" +
			"4. Track the application with the reference number you receive",
		QuickReplies: []string{"Check my eligibility", "Required documents", "Browse schemes"},
	}
}

func (r *Responder) buildDocuments(context.Context, request) Response {
	return Response{
		Text: "Commonly required documents:\n" +
			"• Aadhaar card\n" +
			"• Income certificate\n" +
			"• Caste certificate, for category-based schemes\n" +
			"• Bank account details\n" +
			"• Land records, for farmer schemes\n" +
			"Ask me about a specific scheme for its exact list.",
		QuickReplies: []string{"Browse schemes", "Check my eligibility", "How to apply"},
	}
}

// buildEligibility is personalized: it gathers the ranking and the summary in
// parallel and reports the headline numbers with the top matches.
func (r *Responder) buildEligibility(ctx context.Context, req request) Response {
	if req.profile == nil {
		return r.profileFallback()
	}

	var (
		evals   []eligibility.Evaluation
		summary *eligibility.Summary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		evals, err = r.recommender.Recommend(gctx, *req.profile, 5)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = r.recommender.Summary(gctx, *req.profile)
		return err
	})
	if err := g.Wait(); err != nil {
		return r.buildUnknown(ctx, req)
	}

	if summary.TotalSchemes == 0 {
		return Response{
			Text:         "No schemes are loaded right now, so I cannot check your eligibility. Please try again later.",
			QuickReplies: []string{"Help"},
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You fully qualify for %d of %d schemes (%d%% eligibility rate, average match %d%%).",
		summary.EligibleCount, summary.TotalSchemes, summary.EligibilityRate, summary.AverageProbability)
	if summary.TopCategory != "" {
		fmt.Fprintf(&b, " Your strongest area is %s.", summary.TopCategory)
	}
	b.WriteString("\nYour top matches:")
	for _, eval := range evals {
		fmt.Fprintf(&b, "\n• %s — %d%% match", eval.Scheme.Name.Resolve(req.lang), eval.Probability)
	}

	return Response{
		Text:         b.String(),
		QuickReplies: []string{"How to apply", "Required documents", "Show more schemes"},
		Schemes:      schemeRefs(evals, req.lang),
	}
}

// buildSchemes lists recommendations when a profile is available, otherwise a
// neutral catalog sample.
func (r *Responder) buildSchemes(ctx context.Context, req request) Response {
	chips := []string{"Farmer schemes", "Education schemes", "Health schemes", "Pension schemes", "Check my eligibility"}

	if req.profile != nil {
		evals, err := r.recommender.Recommend(ctx, *req.profile, 5)
		if err == nil && len(evals) > 0 {
			var b strings.Builder
			b.WriteString("Based on your profile, these schemes fit you best:")
			for _, eval := range evals {
				fmt.Fprintf(&b, "\n• %s — %d%% match", eval.Scheme.Name.Resolve(req.lang), eval.Probability)
			}
			return Response{Text: b.String(), QuickReplies: chips, Schemes: schemeRefs(evals, req.lang)}
		}
	}

	schemes := r.catalog.All(ctx)
	if len(schemes) == 0 {
		return Response{
			Text:         "No schemes are loaded right now. Please try again later.",
			QuickReplies: []string{"Help"},
		}
	}
	if len(schemes) > 5 {
		schemes = schemes[:5]
	}

	var b strings.Builder
	b.WriteString("Here are some popular schemes:")
	for _, scheme := range schemes {
		fmt.Fprintf(&b, "\n• %s", scheme.Name.Resolve(req.lang))
	}
	b.WriteString("\nComplete your profile and I can tell you which ones you qualify for.")

	return Response{Text: b.String(), QuickReplies: chips, Schemes: plainRefs(schemes, req.lang)}
}

// buildTopic answers category questions (farmer, education, health, ...) from
// the catalog, annotated with match scores when a profile is available.
func (r *Responder) buildTopic(ctx context.Context, req request) Response {
	cat, ok := topicCategories[req.classification.Category]
	if !ok {
		return r.buildUnknown(ctx, req)
	}

	schemes := r.catalog.ListByCategory(ctx, cat)
	if len(schemes) == 0 {
		return Response{
			Text:         fmt.Sprintf("I do not have any %s schemes in the catalog right now.", cat),
			QuickReplies: []string{"Browse schemes", "Help"},
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Schemes for %s:", cat)

	if req.profile != nil {
		var refs []SchemeRef
		for _, scheme := range schemes {
			eval := eligibility.Evaluate(*req.profile, scheme)
			fmt.Fprintf(&b, "\n• %s — %d%% match", scheme.Name.Resolve(req.lang), eval.Probability)
			refs = append(refs, SchemeRef{
				ID:          scheme.ID,
				Name:        scheme.Name.Resolve(req.lang),
				Probability: eval.Probability,
				Eligible:    eval.Eligible,
			})
		}
		return Response{
			Text:         b.String(),
			QuickReplies: []string{"Check my eligibility", "How to apply", "Required documents"},
			Schemes:      refs,
		}
	}

	for _, scheme := range schemes {
		fmt.Fprintf(&b, "\n• %s", scheme.Name.Resolve(req.lang))
	}
	b.WriteString("\nComplete your profile to see your match score for each one.")

	return Response{
		Text:         b.String(),
		QuickReplies: []string{"Complete my profile", "How to apply", "Required documents"},
		Schemes:      plainRefs(schemes, req.lang),
	}
}

// buildSpecificScheme answers about one named scheme, with a personal verdict
// when a profile is available.
func (r *Responder) buildSpecificScheme(ctx context.Context, req request) Response {
	scheme, err := r.catalog.FindByID(ctx, req.classification.SchemeID)
	if err != nil {
		return Response{
			Text:         "I could not find that scheme in the catalog. Try browsing the full list instead.",
			QuickReplies: []string{"Browse schemes", "Help"},
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\nBenefits: %s",
		scheme.Name.Resolve(req.lang),
		scheme.Description.Resolve(req.lang),
		scheme.Benefits.Resolve(req.lang))
	fmt.Fprintf(&b, "\nDifficulty: %s | Success rate: %d%% | Processing time: %s",
		scheme.Difficulty, scheme.SuccessRate, scheme.ProcessingTime)

	ref := SchemeRef{ID: scheme.ID, Name: scheme.Name.Resolve(req.lang)}

	if req.profile != nil {
		eval := eligibility.Evaluate(*req.profile, scheme)
		ref.Probability = eval.Probability
		ref.Eligible = eval.Eligible

		if eval.Eligible {
			b.WriteString("\nGood news: your profile meets all the criteria for this scheme.")
		} else {
			fmt.Fprintf(&b, "\nYour profile matches %d%% of the criteria. Missing:", eval.Probability)
			for _, missing := range eval.MissingCriteria {
				fmt.Fprintf(&b, "\n• %s", missing)
			}
		}
	} else {
		b.WriteString("\nComplete your profile and I can tell you whether you qualify.")
	}

	return Response{
		Text:         b.String(),
		QuickReplies: []string{"How to apply", "Required documents", "Browse schemes", "Check my eligibility"},
		Schemes:      []SchemeRef{ref},
	}
}

func (r *Responder) profileFallback() Response {
	return Response{
		Text: "To check your eligibility I need your profile — age, annual income, occupation, " +
			"location, and social category. Please complete your profile first.",
		QuickReplies: []string{"Complete my profile", "Browse schemes", "Help"},
	}
}

func schemeRefs(evals []eligibility.Evaluation, lang string) []SchemeRef {
	refs := make([]SchemeRef, 0, len(evals))
	for _, eval := range evals {
		refs = append(refs, SchemeRef{
			ID:          eval.Scheme.ID,
			Name:        eval.Scheme.Name.Resolve(lang),
			Probability: eval.Probability,
			Eligible:    eval.Eligible,
		})
	}
	return refs
}

func plainRefs(schemes []catalog.Scheme, lang string) []SchemeRef {
	refs := make([]SchemeRef, 0, len(schemes))
	for _, scheme := range schemes {
		refs = append(refs, SchemeRef{ID: scheme.ID, Name: scheme.Name.Resolve(lang)})
	}
	return refs
}
