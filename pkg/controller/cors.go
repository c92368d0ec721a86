package controller

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAgeSeconds = 300

// WithCORS returns a middleware that answers CORS preflight requests with 204
// No Content and decorates actual requests from allowed origins. A "*" entry
// allows every origin.
func WithCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Content-Type", "Content-Length", "Accept-Encoding", "Authorization",
			"Accept", "Origin", "Cache-Control", "X-Request-Id",
		},
		ExposedHeaders:       []string{"X-Request-Id"},
		AllowCredentials:     true,
		MaxAge:               corsMaxAgeSeconds,
		OptionsSuccessStatus: http.StatusNoContent,
	})
}
