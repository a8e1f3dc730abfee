package middleware

import (
	"net/http"

	"github.com/SyedqaderEng/financeOS-sub001/internal/config"
	"github.com/go-chi/cors"
)

// CORS lets the configured browser origins call the API with the session
// cookie and the CSRF header.
func CORS(cfg *config.Config) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", CSRFHeader},
		ExposedHeaders:   []string{CSRFHeader, "Content-Disposition", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
