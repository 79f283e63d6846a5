package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/moodlens/moodlens-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, modeTracking *handlers.ModeTracking) {
	// Mode tracking routes
	r.Post("/api/mode_tracking", modeTracking.ModeTrack)
	r.Get("/api/mode_tracking/journal", modeTracking.GetJournal)
	r.Get("/api/mode_tracking/current", modeTracking.GetCurrentMode)
}
