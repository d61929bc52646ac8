// Package requestid assigns every request a stable identifier for log and
// analytics correlation.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"schemesathi/pkg/requestcontext"
)

// Header is the inbound/outbound request ID header.
const Header = "X-Request-ID"

// Middleware reuses the client-supplied request ID when present, otherwise
// generates one, and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(Header, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
