package routes

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the browser client to call the API with credentials.
// An empty allowedOrigins list accepts any origin by echoing it back,
// since "*" is not valid alongside credentials.
func CORS(allowedOrigins []string) func(next http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}
	if len(allowedOrigins) == 0 {
		opts.AllowOriginFunc = func(r *http.Request, origin string) bool { return true }
	}
	return cors.Handler(opts)
}
