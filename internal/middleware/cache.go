package middleware

import (
	"net/http"
	"strings"

	"github.com/qaspilab/qaspilab/internal/config"
)

// CacheControl sets Cache-Control headers based on request path:
//   - writes, submissions, health and metrics: never cached
//   - swagger docs: 1 hour
//   - budget options and galleries: 5 minutes, shared caches allowed
//   - other API reads: 1 minute with revalidation
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cachePolicy(r.Method, r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func cachePolicy(method, path string) string {
	if method != http.MethodGet && method != http.MethodHead {
		return "no-store"
	}

	switch {
	case path == config.SubmitIdeaPath, path == "/healthz", path == "/metrics":
		return "no-store"
	case strings.HasPrefix(path, "/swagger/"):
		return "public, max-age=3600"
	case path == "/api/budgets", strings.HasPrefix(path, "/api/galleries/"):
		return "public, max-age=300"
	case strings.HasPrefix(path, "/api/"):
		return "public, max-age=60, must-revalidate"
	default:
		return "no-cache"
	}
}
