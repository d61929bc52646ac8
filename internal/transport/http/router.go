// Package httptransport assembles the HTTP surface: middleware chain, public
// and authenticated route groups, and the operational endpoints.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"schemesathi/pkg/platform/httputil"
	"schemesathi/pkg/platform/middleware/auth"
	"schemesathi/pkg/platform/middleware/language"
	"schemesathi/pkg/platform/middleware/metadata"
	"schemesathi/pkg/platform/middleware/requestid"
	"schemesathi/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports whether a backing dependency is reachable. Optional
// dependencies register a nil-safe checker.
type HealthChecker func() error

// Config carries everything the router needs.
type Config struct {
	Logger             *slog.Logger
	TokenValidator     auth.TokenValidator
	SupportedLanguages []string

	// Public handlers work without authentication; chat additionally
	// personalizes when a valid token is present.
	Eligibility Registrar
	Chat        Registrar

	// Personal handlers require authentication.
	Profile Registrar
	Saved   Registrar

	HealthChecks map[string]HealthChecker
}

// NewRouter wires the middleware chain and mounts all route groups.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(language.Middleware(cfg.SupportedLanguages...))
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/healthz", handleHealth(cfg.HealthChecks))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(public chi.Router) {
		public.Use(auth.OptionalAuth(cfg.TokenValidator, cfg.Logger))
		cfg.Eligibility.Register(public)
		cfg.Chat.Register(public)
	})

	r.Group(func(personal chi.Router) {
		personal.Use(auth.RequireAuth(cfg.TokenValidator, cfg.Logger))
		cfg.Profile.Register(personal)
		cfg.Saved.Register(personal)
	})

	return r
}

// handleHealth reports overall service health plus per-dependency status.
func handleHealth(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		deps := make(map[string]string, len(checks))
		for name, check := range checks {
			if check == nil {
				continue
			}
			if err := check(); err != nil {
				deps[name] = "unhealthy"
				status = http.StatusServiceUnavailable
				continue
			}
			deps[name] = "healthy"
		}

		body := map[string]any{"status": "ok"}
		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		if len(deps) > 0 {
			body["dependencies"] = deps
		}
		httputil.WriteJSON(w, status, body)
	}
}
