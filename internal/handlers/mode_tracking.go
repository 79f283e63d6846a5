package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/moodlens/moodlens-backend/internal/models"
	"github.com/moodlens/moodlens-backend/internal/services"
)

// Submitter runs one journal submission end to end.
type Submitter interface {
	Submit(ctx context.Context, in services.SubmitInput) (*services.SubmitResult, error)
}

// JournalReader returns a user's journal document.
type JournalReader interface {
	GetJournal(ctx context.Context, email string) (*models.JournalDocument, error)
}

// ModeReader returns a user's current mode projection.
type ModeReader interface {
	CurrentMode(ctx context.Context, email string) (string, error)
}

// ModeTracking serves the mode tracking API. Dependencies are injected at
// construction instead of read from package globals.
type ModeTracking struct {
	ingest Submitter
	store  JournalReader
	users  ModeReader
}

// NewModeTracking creates the mode tracking handler set.
func NewModeTracking(ingest Submitter, store JournalReader, users ModeReader) *ModeTracking {
	return &ModeTracking{
		ingest: ingest,
		store:  store,
		users:  users,
	}
}

// ModeTrackRequest is the JSON body for POST /api/mode_tracking
type ModeTrackRequest struct {
	Email    string `json:"email"`
	Title    string `json:"title"`
	Sentence string `json:"sentence"`
}

// ModeTrackResponse is the success body for POST /api/mode_tracking
type ModeTrackResponse struct {
	Message    string `json:"message"`
	Content    string `json:"content"`
	Prediction string `json:"prediction"`
}

// GetJournalResponse is the body for GET /api/mode_tracking/journal
type GetJournalResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Email   string              `json:"email,omitempty"`
	Journal []models.DateBucket `json:"journal"`
	Total   int                 `json:"total"`
}

// ModeTrack analyzes a journal submission and appends it to the user's
// journal. Response bodies and status codes are a fixed contract with the
// frontend; don't reword them.
func (h *ModeTracking) ModeTrack(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req ModeTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req == (ModeTrackRequest{}) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"Alert": "You didn't write anything!"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := h.ingest.Submit(ctx, services.SubmitInput{
		Email:    req.Email,
		Title:    req.Title,
		Sentence: req.Sentence,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"Error": "'email', 'sentence' and 'title' are required fields."})
		case errors.Is(err, services.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"Error": "Email not found"})
		default:
			log.Printf("[ModeTrack] submission failed for %s: %v", req.Email, err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"Error": "Failed to analyze journal entry"})
		}
		return
	}

	json.NewEncoder(w).Encode(ModeTrackResponse{
		Message:    "Journal entry analyzed successfully.",
		Content:    result.Content,
		Prediction: result.Prediction,
	})
}

// GetJournal returns the user's date buckets, newest first, with limit/skip
// pagination over buckets.
func (h *ModeTracking) GetJournal(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	email := r.URL.Query().Get("email")
	if email == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(GetJournalResponse{
			Success: false,
			Message: "'email' query parameter is required",
			Journal: []models.DateBucket{},
		})
		return
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	skip := 0
	if skipStr := r.URL.Query().Get("skip"); skipStr != "" {
		if parsedSkip, err := strconv.Atoi(skipStr); err == nil && parsedSkip >= 0 {
			skip = parsedSkip
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc, err := h.store.GetJournal(ctx, email)
	if err != nil {
		log.Printf("[GetJournal] failed to fetch journal for %s: %v", email, err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(GetJournalResponse{
			Success: false,
			Message: "Failed to fetch journal",
			Journal: []models.DateBucket{},
		})
		return
	}

	// Buckets are stored oldest first; serve newest first.
	total := len(doc.Journal)
	buckets := make([]models.DateBucket, 0, limit)
	for i := total - 1 - skip; i >= 0 && len(buckets) < limit; i-- {
		buckets = append(buckets, doc.Journal[i])
	}

	json.NewEncoder(w).Encode(GetJournalResponse{
		Success: true,
		Email:   doc.Email,
		Journal: buckets,
		Total:   total,
	})
}

// GetCurrentMode returns the user's current_mode projection.
func (h *ModeTracking) GetCurrentMode(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	email := r.URL.Query().Get("email")
	if email == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"Error": "'email' query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mode, err := h.users.CurrentMode(ctx, email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"Error": "Email not found"})
			return
		}
		log.Printf("[GetCurrentMode] failed to fetch current mode for %s: %v", email, err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"Error": "Failed to fetch current mode"})
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"email":        email,
		"current_mode": mode,
	})
}
