// Package language resolves the presentation language for a request.
// Localized scheme text is resolved at presentation time only; core
// evaluation logic never branches on language.
package language

import (
	"net/http"
	"strings"

	"schemesathi/pkg/requestcontext"
)

// Middleware picks the presentation language with the precedence
// ?lang query parameter > Accept-Language header > none (callers fall back to
// the catalog default). Only codes in supported are honored.
func Middleware(supported ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(supported))
	for _, code := range supported {
		allowed[strings.ToLower(code)] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := normalize(r.URL.Query().Get("lang"))
			if lang == "" {
				lang = fromAcceptLanguage(r.Header.Get("Accept-Language"))
			}
			if lang != "" && !allowed[lang] {
				lang = ""
			}

			ctx := r.Context()
			if lang != "" {
				ctx = requestcontext.WithLanguage(ctx, lang)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// fromAcceptLanguage returns the primary subtag of the first listed language,
// ignoring quality weights. Full content negotiation is not needed for a
// two-language catalog.
func fromAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}
	first := header
	if idx := strings.Index(first, ","); idx != -1 {
		first = first[:idx]
	}
	if idx := strings.Index(first, ";"); idx != -1 {
		first = first[:idx]
	}
	return normalize(first)
}

func normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if idx := strings.Index(code, "-"); idx != -1 {
		code = code[:idx]
	}
	return code
}
