package httptransport

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemesathi/internal/platform/logger"
	"schemesathi/pkg/platform/middleware/auth"
	"schemesathi/pkg/requestcontext"
	"schemesathi/pkg/testutil"
)

type stubRegistrar struct {
	path    string
	lastCtx struct {
		userID    string
		requestID string
	}
}

func (s *stubRegistrar) Register(r chi.Router) {
	r.Get(s.path, func(w http.ResponseWriter, req *http.Request) {
		s.lastCtx.userID = requestcontext.UserID(req.Context())
		s.lastCtx.requestID = requestcontext.RequestID(req.Context())
		w.WriteHeader(http.StatusOK)
	})
}

const signingKey = "router-test-key"

func newTestRouter(checks map[string]HealthChecker) (http.Handler, *stubRegistrar, *stubRegistrar) {
	public := &stubRegistrar{path: "/v1/public"}
	personal := &stubRegistrar{path: "/v1/personal"}

	router := NewRouter(Config{
		Logger:             logger.NewNop(),
		TokenValidator:     auth.NewHS256Validator(signingKey),
		SupportedLanguages: []string{"en", "hi"},
		Eligibility:        public,
		Chat:               &stubRegistrar{path: "/v1/chat"},
		Profile:            personal,
		Saved:              &stubRegistrar{path: "/v1/saved"},
		HealthChecks:       checks,
	})
	return router, public, personal
}

func TestRouter(t *testing.T) {
	t.Run("public routes work without a token", func(t *testing.T) {
		router, public, _ := newTestRouter(nil)

		rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/v1/public", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, public.lastCtx.userID)
		assert.NotEmpty(t, public.lastCtx.requestID, "request ID middleware must run")
	})

	t.Run("public routes pick up a valid token", func(t *testing.T) {
		router, public, _ := newTestRouter(nil)

		token, err := auth.IssueToken(signingKey, "user-1", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/public", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := testutil.DoRequest(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-1", public.lastCtx.userID)
	})

	t.Run("personal routes require a token", func(t *testing.T) {
		router, _, _ := newTestRouter(nil)

		rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/v1/personal", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("personal routes accept a valid token", func(t *testing.T) {
		router, _, personal := newTestRouter(nil)

		token, err := auth.IssueToken(signingKey, "user-1", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/personal", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := testutil.DoRequest(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-1", personal.lastCtx.userID)
	})

	t.Run("healthz reports ok with no checks", func(t *testing.T) {
		router, _, _ := newTestRouter(nil)

		rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		testutil.AssertJSONContains(t, rr, "status", "ok")
	})

	t.Run("healthz degrades when a dependency fails", func(t *testing.T) {
		router, _, _ := newTestRouter(map[string]HealthChecker{
			"redis":    func() error { return nil },
			"postgres": func() error { return errors.New("down") },
		})

		rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		testutil.AssertJSONContains(t, rr, "status", "degraded")
	})

	t.Run("metrics endpoint is exposed", func(t *testing.T) {
		router, _, _ := newTestRouter(nil)

		rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestAuthenticatedSessionFlow(t *testing.T) {
	router, _, personal := newTestRouter(nil)

	var token string
	testutil.Given(t, "a citizen holding a signed token", func(t *testing.T) {
		var err error
		token, err = auth.IssueToken(signingKey, "citizen-9", time.Hour)
		require.NoError(t, err)
	})

	testutil.When(t, "they call a personal route with the token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/personal", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := testutil.DoRequest(router, req)
		require.Equal(t, http.StatusOK, rr.Code)
	})

	testutil.Then(t, "the handler sees their identity", func(t *testing.T) {
		assert.Equal(t, "citizen-9", personal.lastCtx.userID)
	})
}
