package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"Quill/internal/api/handlers"

	"github.com/go-chi/chi/v5"
)

// Pinger reports whether the database is reachable. Satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RegisterHealthRoutes registers GET /health
func RegisterHealthRoutes(r chi.Router, db Pinger) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			slog.Error("health check failed", slog.String("error", err.Error()))
			handlers.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		handlers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
