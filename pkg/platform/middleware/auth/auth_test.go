package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemesathi/internal/platform/logger"
	"schemesathi/pkg/requestcontext"
)

const testKey = "test-signing-key"

func userCapture(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = requestcontext.UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestHS256Validator(t *testing.T) {
	validator := NewHS256Validator(testKey)

	t.Run("valid token round-trips the subject", func(t *testing.T) {
		token, err := IssueToken(testKey, "user-1", time.Hour)
		require.NoError(t, err)

		claims, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		token, err := IssueToken("other-key", "user-1", time.Hour)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := IssueToken(testKey, "user-1", -time.Minute)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	validator := NewHS256Validator(testKey)

	t.Run("valid token injects the user ID", func(t *testing.T) {
		var got string
		handler := RequireAuth(validator, logger.NewNop())(userCapture(&got))

		token, err := IssueToken(testKey, "user-1", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-1", got)
	})

	t.Run("missing token is a 401", func(t *testing.T) {
		var got string
		handler := RequireAuth(validator, logger.NewNop())(userCapture(&got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token is a 401", func(t *testing.T) {
		var got string
		handler := RequireAuth(validator, logger.NewNop())(userCapture(&got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	validator := NewHS256Validator(testKey)

	t.Run("anonymous request passes with no user", func(t *testing.T) {
		var got string
		handler := OptionalAuth(validator, logger.NewNop())(userCapture(&got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, got)
	})

	t.Run("valid token injects the user ID", func(t *testing.T) {
		var got string
		handler := OptionalAuth(validator, logger.NewNop())(userCapture(&got))

		token, err := IssueToken(testKey, "user-1", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-1", got)
	})

	t.Run("invalid token is still rejected", func(t *testing.T) {
		var got string
		handler := OptionalAuth(validator, logger.NewNop())(userCapture(&got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer junk")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
