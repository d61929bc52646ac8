package chatbot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemesathi/internal/catalog"
	"schemesathi/internal/eligibility"
)

// stubRecommender runs the pure ranking functions over a fixed catalog,
// standing in for the eligibility service.
type stubRecommender struct {
	schemes []catalog.Scheme
	err     error
}

func (s *stubRecommender) Recommend(_ context.Context, profile eligibility.Profile, limit int) ([]eligibility.Evaluation, error) {
	if s.err != nil {
		return nil, s.err
	}
	evals := eligibility.Rank(profile, s.schemes)
	if limit > 0 && len(evals) > limit {
		evals = evals[:limit]
	}
	return evals, nil
}

func (s *stubRecommender) Summary(_ context.Context, profile eligibility.Profile) (*eligibility.Summary, error) {
	if s.err != nil {
		return nil, s.err
	}
	summary := eligibility.Summarize(profile, s.schemes)
	return &summary, nil
}

func testResponder(t *testing.T) (*Responder, []catalog.Scheme) {
	t.Helper()
	schemes := catalog.Seed()
	store := catalog.NewInMemoryStore(schemes)
	return NewResponder(store, &stubRecommender{schemes: schemes}), schemes
}

func farmerProfile() *eligibility.Profile {
	return &eligibility.Profile{
		Age:           45,
		AnnualIncome:  150000,
		Location:      "rural",
		Occupation:    "Farmer",
		LandOwnership: true,
	}
}

func TestResponderContract(t *testing.T) {
	responder, _ := testResponder(t)
	ctx := context.Background()

	categories := []Category{
		CategoryGreeting, CategoryEligibility, CategorySchemes,
		CategoryApplication, CategoryDocuments, CategoryFarmer,
		CategoryEducation, CategoryHealth, CategoryHousing,
		CategoryPension, CategoryBusiness, CategoryWomen,
		CategoryThanks, CategoryHelp, CategorySpecificScheme,
		CategoryIrrelevant, CategoryUnknown,
	}

	for _, withProfile := range []bool{false, true} {
		var profile *eligibility.Profile
		if withProfile {
			profile = farmerProfile()
		}
		for _, category := range categories {
			cls := Classification{Category: category}
			if category == CategorySpecificScheme {
				cls.SchemeID = "PM-KISAN"
			}
			resp := responder.Respond(ctx, cls, "", profile, "en")

			assert.NotEmpty(t, resp.Text, "category %s must produce text", category)
			assert.LessOrEqual(t, len(resp.QuickReplies), MaxQuickReplies,
				"category %s exceeds the quick-reply budget", category)
		}
	}
}

func TestResponderEligibility(t *testing.T) {
	responder, _ := testResponder(t)
	ctx := context.Background()

	t.Run("without profile asks to complete it", func(t *testing.T) {
		resp := responder.Respond(ctx, Classification{Category: CategoryEligibility}, "", nil, "en")
		assert.Contains(t, resp.Text, "complete your profile")
		assert.Empty(t, resp.Schemes)
	})

	t.Run("with profile reports matches", func(t *testing.T) {
		resp := responder.Respond(ctx, Classification{Category: CategoryEligibility}, "", farmerProfile(), "en")
		assert.Contains(t, resp.Text, "fully qualify")
		require.NotEmpty(t, resp.Schemes)
		assert.NotEmpty(t, resp.Schemes[0].Name)
	})

	t.Run("recommender failure falls back to guidance", func(t *testing.T) {
		store := catalog.NewInMemoryStore(catalog.Seed())
		broken := NewResponder(store, &stubRecommender{err: assert.AnError})

		resp := broken.Respond(ctx, Classification{Category: CategoryEligibility}, "", farmerProfile(), "en")
		assert.NotEmpty(t, resp.Text)
	})
}

func TestResponderSpecificScheme(t *testing.T) {
	responder, _ := testResponder(t)
	ctx := context.Background()

	t.Run("unknown scheme degrades gracefully", func(t *testing.T) {
		cls := Classification{Category: CategorySpecificScheme, SchemeID: "NOPE"}
		resp := responder.Respond(ctx, cls, "", nil, "en")
		assert.Contains(t, resp.Text, "could not find")
	})

	t.Run("eligible profile gets a positive verdict", func(t *testing.T) {
		cls := Classification{Category: CategorySpecificScheme, SchemeID: "PM-KISAN"}
		resp := responder.Respond(ctx, cls, "", farmerProfile(), "en")

		assert.Contains(t, resp.Text, "meets all the criteria")
		require.Len(t, resp.Schemes, 1)
		assert.True(t, resp.Schemes[0].Eligible)
		assert.Equal(t, 100, resp.Schemes[0].Probability)
	})

	t.Run("ineligible profile lists missing criteria", func(t *testing.T) {
		profile := farmerProfile()
		profile.Occupation = "Teacher"
		profile.LandOwnership = false

		cls := Classification{Category: CategorySpecificScheme, SchemeID: "PM-KISAN"}
		resp := responder.Respond(ctx, cls, "", profile, "en")

		assert.Contains(t, resp.Text, "Missing:")
		require.Len(t, resp.Schemes, 1)
		assert.False(t, resp.Schemes[0].Eligible)
	})

	t.Run("resolves localized names", func(t *testing.T) {
		cls := Classification{Category: CategorySpecificScheme, SchemeID: "PM-KISAN"}
		en := responder.Respond(ctx, cls, "", nil, "en")
		hi := responder.Respond(ctx, cls, "", nil, "hi")
		assert.NotEqual(t, en.Text, hi.Text)
	})
}

func TestResponderTopic(t *testing.T) {
	responder, _ := testResponder(t)
	ctx := context.Background()

	t.Run("lists schemes for the topic", func(t *testing.T) {
		resp := responder.Respond(ctx, Classification{Category: CategoryFarmer}, "", nil, "en")
		require.NotEmpty(t, resp.Schemes)
		for _, ref := range resp.Schemes {
			assert.NotEmpty(t, ref.ID)
			assert.NotEmpty(t, ref.Name)
		}
	})

	t.Run("annotates match scores when profile is present", func(t *testing.T) {
		resp := responder.Respond(ctx, Classification{Category: CategoryFarmer}, "", farmerProfile(), "en")
		assert.Contains(t, resp.Text, "% match")
	})
}
