package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/moodlens/moodlens-backend/internal/classifier"
	"github.com/moodlens/moodlens-backend/internal/models"
)

type memStore struct {
	docs        map[string]*models.JournalDocument
	currentMode map[string]string
	appendErr   error
	appends     int
}

func newMemStore() *memStore {
	return &memStore{
		docs:        make(map[string]*models.JournalDocument),
		currentMode: make(map[string]string),
	}
}

func (m *memStore) Append(ctx context.Context, email, date string, entry models.JournalEntry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appends++
	m.docs[email] = appendEntry(m.docs[email], email, date, entry)
	m.currentMode[email] = entry.Prediction
	return nil
}

type fakeDirectory struct {
	emails map[string]bool
	calls  int
}

func (f *fakeDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.calls++
	if f.emails[email] {
		return &models.User{Email: email}, nil
	}
	return nil, ErrUserNotFound
}

type stubClassifier struct {
	mood  classifier.Mood
	err   error
	calls int
}

func (s *stubClassifier) Classify(ctx context.Context, text string) (classifier.Mood, error) {
	s.calls++
	return s.mood, s.err
}

func newTestIngest(mood classifier.Mood) (*IngestService, *memStore, *stubClassifier) {
	store := newMemStore()
	clf := &stubClassifier{mood: mood}
	dir := &fakeDirectory{emails: map[string]bool{"a@x.com": true}}
	svc := NewIngestService(clf, dir, store)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return svc, store, clf
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name  string
		input SubmitInput
	}{
		{name: "missing sentence", input: SubmitInput{Email: "a@x.com", Title: "Day1"}},
		{name: "missing email", input: SubmitInput{Sentence: "I feel fine"}},
		{name: "missing both", input: SubmitInput{Title: "Day1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, clf := newTestIngest(classifier.MoodNormal)

			_, err := svc.Submit(context.Background(), tt.input)
			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("Submit() error = %v, want ErrMissingFields", err)
			}
			if clf.calls != 0 {
				t.Fatal("classifier must not run for invalid input")
			}
			if store.appends != 0 {
				t.Fatal("store must not be touched for invalid input")
			}
		})
	}
}

func TestSubmitUnknownUser(t *testing.T) {
	svc, store, clf := newTestIngest(classifier.MoodNormal)

	_, err := svc.Submit(context.Background(), SubmitInput{Email: "nobody@x.com", Sentence: "I feel fine"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("Submit() error = %v, want ErrUserNotFound", err)
	}
	if clf.calls != 0 || store.appends != 0 {
		t.Fatal("no work may happen for an unknown user")
	}
}

func TestSubmitSuccess(t *testing.T) {
	svc, store, _ := newTestIngest(classifier.MoodNormal)

	result, err := svc.Submit(context.Background(), SubmitInput{
		Email:    "a@x.com",
		Title:    "Day1",
		Sentence: "I feel fine",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result.Prediction != "Normal" {
		t.Fatalf("prediction = %q, want Normal", result.Prediction)
	}
	if result.Content != "I feel fine" {
		t.Fatalf("content = %q, want original sentence", result.Content)
	}

	doc := store.docs["a@x.com"]
	if doc == nil || len(doc.Journal) != 1 {
		t.Fatalf("want exactly one bucket, got %+v", doc)
	}
	bucket := doc.Journal[0]
	if bucket.Date != "15-03-2026" {
		t.Fatalf("bucket date = %q, want 15-03-2026 (DD-MM-YYYY in UTC)", bucket.Date)
	}
	if len(bucket.Entries) != 1 {
		t.Fatalf("entry count = %d, want 1", len(bucket.Entries))
	}

	got := bucket.Entries[0]
	if _, err := uuid.Parse(got.ID); err != nil {
		t.Fatalf("entry id %q is not a valid UUID: %v", got.ID, err)
	}
	if got.Title != "Day1" || got.Content != "I feel fine" || got.Prediction != "Normal" {
		t.Fatalf("entry = %+v", got)
	}

	if store.currentMode["a@x.com"] != "Normal" {
		t.Fatalf("current_mode = %q, want Normal", store.currentMode["a@x.com"])
	}
}

// Two submissions on the same date land in one bucket, in submission order,
// and leave current_mode at the latest prediction.
func TestSubmitTwiceSameDate(t *testing.T) {
	svc, store, _ := newTestIngest(classifier.MoodNormal)

	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(context.Background(), SubmitInput{
			Email:    "a@x.com",
			Title:    "Day1",
			Sentence: "I feel fine",
		}); err != nil {
			t.Fatalf("Submit() #%d error = %v", i+1, err)
		}
	}

	doc := store.docs["a@x.com"]
	if len(doc.Journal) != 1 {
		t.Fatalf("bucket count = %d, want 1", len(doc.Journal))
	}
	entries := doc.Journal[0].Entries
	if len(entries) != 2 {
		t.Fatalf("entry count = %d, want 2", len(entries))
	}
	if entries[0].ID == entries[1].ID {
		t.Fatal("each submission must get a fresh entry id")
	}
	for _, e := range entries {
		if e.Prediction != "Normal" {
			t.Fatalf("entry prediction = %q, want Normal", e.Prediction)
		}
	}
	if store.currentMode["a@x.com"] != "Normal" {
		t.Fatalf("current_mode = %q, want Normal", store.currentMode["a@x.com"])
	}
}

func TestSubmitOnDifferentDates(t *testing.T) {
	svc, store, _ := newTestIngest(classifier.MoodNormal)

	if _, err := svc.Submit(context.Background(), SubmitInput{Email: "a@x.com", Sentence: "first day"}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	svc.now = func() time.Time {
		return time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	}
	if _, err := svc.Submit(context.Background(), SubmitInput{Email: "a@x.com", Sentence: "second day"}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	doc := store.docs["a@x.com"]
	if len(doc.Journal) != 2 {
		t.Fatalf("bucket count = %d, want 2", len(doc.Journal))
	}
	if doc.Journal[0].Date != "15-03-2026" || doc.Journal[1].Date != "16-03-2026" {
		t.Fatalf("bucket dates = %q, %q", doc.Journal[0].Date, doc.Journal[1].Date)
	}
	if len(doc.Journal[0].Entries) != 1 || len(doc.Journal[1].Entries) != 1 {
		t.Fatal("each date bucket must hold exactly its own entry")
	}
}

func TestSubmitCurrentModeFollowsLatestPrediction(t *testing.T) {
	svc, store, clf := newTestIngest(classifier.MoodNormal)

	if _, err := svc.Submit(context.Background(), SubmitInput{Email: "a@x.com", Sentence: "I feel fine"}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	clf.mood = classifier.MoodStress
	result, err := svc.Submit(context.Background(), SubmitInput{Email: "a@x.com", Sentence: "deadlines everywhere"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if store.currentMode["a@x.com"] != result.Prediction {
		t.Fatalf("current_mode = %q, want %q", store.currentMode["a@x.com"], result.Prediction)
	}
}

func TestSubmitClassifierFailureStopsBeforeStore(t *testing.T) {
	svc, store, clf := newTestIngest(classifier.MoodNormal)
	clf.err = errors.New("model backend down")

	_, err := svc.Submit(context.Background(), SubmitInput{Email: "a@x.com", Sentence: "I feel fine"})
	if err == nil {
		t.Fatal("Submit() should fail when classification fails")
	}
	if store.appends != 0 {
		t.Fatal("store must not be written when classification fails")
	}
}

func TestSubmitStoreFailurePropagates(t *testing.T) {
	svc, store, _ := newTestIngest(classifier.MoodNormal)
	storeErr := errors.New("store unavailable")
	store.appendErr = storeErr

	_, err := svc.Submit(context.Background(), SubmitInput{Email: "a@x.com", Sentence: "I feel fine"})
	if !errors.Is(err, storeErr) {
		t.Fatalf("Submit() error = %v, want wrapped store error", err)
	}
	if len(store.currentMode) != 0 {
		t.Fatal("current_mode must not change when the append fails")
	}
}
