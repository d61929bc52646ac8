package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"schemesathi/internal/eligibility"
	"schemesathi/internal/eligibility/handler/mocks"
	"schemesathi/internal/platform/logger"
	dErrors "schemesathi/pkg/domain-errors"
	"schemesathi/pkg/testutil"
)

func newTestHandler(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)

	h := New(mockService, logger.NewNop())
	r := chi.NewRouter()
	h.Register(r)
	return r, mockService
}

func validProfile() eligibility.Profile {
	return eligibility.Profile{
		Age:           45,
		AnnualIncome:  150000,
		Location:      "rural",
		Occupation:    "Farmer",
		LandOwnership: true,
	}
}

func TestHandleEvaluate(t *testing.T) {
	t.Run("returns the evaluation", func(t *testing.T) {
		router, mockService := newTestHandler(t)

		mockService.EXPECT().
			Evaluate(gomock.Any(), validProfile(), "PM-KISAN").
			Return(&eligibility.Evaluation{Eligible: true, Probability: 100}, nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/eligibility/evaluate", EvaluateRequest{
			SchemeID: "PM-KISAN",
			Profile:  validProfile(),
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[eligibility.Evaluation](t, rr)
		assert.True(t, resp.Eligible)
		assert.Equal(t, 100, resp.Probability)
	})

	t.Run("unknown scheme maps to 404", func(t *testing.T) {
		router, mockService := newTestHandler(t)

		mockService.EXPECT().
			Evaluate(gomock.Any(), gomock.Any(), "NOPE").
			Return(nil, dErrors.New(dErrors.CodeNotFound, "unknown scheme: NOPE"))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/eligibility/evaluate", EvaluateRequest{
			SchemeID: "NOPE",
			Profile:  validProfile(),
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})

	t.Run("missing scheme_id is a validation error", func(t *testing.T) {
		router, _ := newTestHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/eligibility/evaluate", EvaluateRequest{
			Profile: validProfile(),
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		router, _ := newTestHandler(t)

		req := testutil.NewRequestWithBody(t, http.MethodPost, "/v1/eligibility/evaluate", "{not json")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	t.Run("internal failures hide details", func(t *testing.T) {
		router, mockService := newTestHandler(t)

		mockService.EXPECT().
			Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeInternal, "catalog exploded"))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/eligibility/evaluate", EvaluateRequest{
			SchemeID: "PM-KISAN",
			Profile:  validProfile(),
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusInternalServerError)
		errResp := testutil.UnmarshalErrorResponse(t, rr)
		assert.Equal(t, "internal_error", errResp["error"])
		assert.NotContains(t, errResp, "error_description")
	})
}

func TestHandleRecommend(t *testing.T) {
	t.Run("returns the ranking", func(t *testing.T) {
		router, mockService := newTestHandler(t)

		mockService.EXPECT().
			Recommend(gomock.Any(), validProfile(), 3).
			Return([]eligibility.Evaluation{
				{Probability: 100, Eligible: true},
				{Probability: 75},
				{Probability: 50},
			}, nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/recommendations", RecommendRequest{
			Profile: validProfile(),
			Limit:   3,
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[RecommendResponse](t, rr)
		require.Len(t, resp.Recommendations, 3)
		assert.True(t, resp.Recommendations[0].Eligible)
	})

	t.Run("negative limit is a validation error", func(t *testing.T) {
		router, _ := newTestHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/recommendations", RecommendRequest{
			Profile: validProfile(),
			Limit:   -1,
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})
}

func TestHandleSummary(t *testing.T) {
	router, mockService := newTestHandler(t)

	mockService.EXPECT().
		Summary(gomock.Any(), validProfile()).
		Return(&eligibility.Summary{
			TotalSchemes:    12,
			EligibleCount:   4,
			EligibilityRate: 33,
		}, nil)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/recommendations/summary", SummaryRequest{
		Profile: validProfile(),
	})
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusOK(t, rr)
	resp := testutil.UnmarshalResponse[eligibility.Summary](t, rr)
	assert.Equal(t, 12, resp.TotalSchemes)
	assert.Equal(t, 4, resp.EligibleCount)
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*eligibility.Profile)
		wantErr string
	}{
		{name: "valid", mutate: func(*eligibility.Profile) {}},
		{name: "zero age", mutate: func(p *eligibility.Profile) { p.Age = 0 }, wantErr: "age"},
		{name: "age too high", mutate: func(p *eligibility.Profile) { p.Age = 130 }, wantErr: "age"},
		{name: "negative income", mutate: func(p *eligibility.Profile) { p.AnnualIncome = -1 }, wantErr: "annual_income"},
		{name: "bad location", mutate: func(p *eligibility.Profile) { p.Location = "mars" }, wantErr: "location"},
		{name: "empty location ok", mutate: func(p *eligibility.Profile) { p.Location = "" }},
		{name: "negative family size", mutate: func(p *eligibility.Profile) { p.FamilySize = -2 }, wantErr: "family_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := ValidateProfile(&p)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}

	t.Run("normalizes location casing", func(t *testing.T) {
		p := validProfile()
		p.Location = "  Rural "
		require.NoError(t, ValidateProfile(&p))
		assert.Equal(t, "rural", p.Location)
	})
}
