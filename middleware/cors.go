package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns middleware that allows requests from any origin, matching
// what the dashboard expects.
func CORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	})
	return c.Handler
}
