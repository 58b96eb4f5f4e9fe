package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/jsamuelsen11/todoapp/internal/platform/config"
)

// CORS answers preflight requests and decorates responses for the browser
// origins listed in cfg. Origins not on the list get no CORS headers.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: cfg.AllowedMethods,
		AllowedHeaders: cfg.AllowedHeaders,
		ExposedHeaders: []string{headerRequestID, headerCorrelationID},
		MaxAge:         cfg.MaxAge,
	})
}
