package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moodlens/moodlens-backend/internal/classifier"
	"github.com/moodlens/moodlens-backend/internal/models"
)

// DateLayout is the calendar-date key format for journal buckets: DD-MM-YYYY.
const DateLayout = "02-01-2006"

// MoodClassifier labels a piece of journal text.
type MoodClassifier interface {
	Classify(ctx context.Context, text string) (classifier.Mood, error)
}

// UserFinder checks that a user exists.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// JournalAppender performs the date-bucketed journal append.
type JournalAppender interface {
	Append(ctx context.Context, email, date string, entry models.JournalEntry) error
}

// SubmitInput is one journal submission. Title is optional.
type SubmitInput struct {
	Email    string
	Title    string
	Sentence string
}

// SubmitResult echoes the accepted content with its predicted mood.
type SubmitResult struct {
	Prediction string
	Content    string
}

// IngestService orchestrates one submission: validate, check the user
// exists, classify, and append to the journal. All dependencies are injected
// at construction.
type IngestService struct {
	classifier MoodClassifier
	users      UserFinder
	store      JournalAppender
	now        func() time.Time
}

// NewIngestService creates an IngestService over the given capabilities.
func NewIngestService(mc MoodClassifier, users UserFinder, store JournalAppender) *IngestService {
	return &IngestService{
		classifier: mc,
		users:      users,
		store:      store,
		now:        time.Now,
	}
}

// Submit runs one submission start to finish. Validation and user-lookup
// failures happen before any side effect. After that the flow is best
// effort: a store failure is returned but already-completed steps are not
// rolled back.
func (s *IngestService) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if in.Email == "" || in.Sentence == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err != nil {
		return nil, err
	}

	entryID := uuid.NewString()

	mood, err := s.classifier.Classify(ctx, in.Sentence)
	if err != nil {
		return nil, fmt.Errorf("classify entry: %w", err)
	}

	today := s.now().UTC().Format(DateLayout)

	entry := models.JournalEntry{
		ID:         entryID,
		Title:      in.Title,
		Content:    in.Sentence,
		Prediction: string(mood),
	}

	if err := s.store.Append(ctx, in.Email, today, entry); err != nil {
		return nil, fmt.Errorf("append journal entry: %w", err)
	}

	return &SubmitResult{
		Prediction: string(mood),
		Content:    in.Sentence,
	}, nil
}
