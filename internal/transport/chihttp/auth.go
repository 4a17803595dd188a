package chihttp

import (
	"net/http"
	"strings"
)

const codeUnauthorized = "unauthorized"

// authExempt lists routes that skip authentication so probes and
// scrapers work without credentials.
func authExempt(path string) bool {
	return path == "/healthz" || path == "/metrics"
}

// BearerAuthMiddleware validates Bearer tokens against the configured
// API keys. With no keys configured the middleware is a pass-through.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	keys := make(map[string]struct{}, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys[k] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, errMsg := bearerToken(r)
			if errMsg != "" {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, errMsg)
				return
			}
			if _, ok := keys[token]; !ok {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid api key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken pulls the token out of the Authorization header. The second
// return value is a client-facing message when the header is unusable.
func bearerToken(r *http.Request) (string, string) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", "missing authorization header"
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", "authorization header must use Bearer scheme"
	}
	return auth[len(prefix):], ""
}
