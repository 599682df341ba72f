package middleware

import (
	"net/http"

	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/rs/cors"
)

// CORS lets the marketing site call the API from its own origins.
// An empty list disables cross-origin access.
func CORS(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", config.SurfaceHeader},
		MaxAge:         600,
	})
	return c.Handler
}
