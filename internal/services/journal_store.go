package services

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moodlens/moodlens-backend/internal/models"
)

// MongoJournalStore owns the journal collection: one document per user,
// entries grouped into one bucket per calendar date. It also mirrors the
// latest prediction into the user's current_mode field.
type MongoJournalStore struct {
	journal *mongo.Collection
	users   *mongo.Collection
}

// NewJournalStore creates a store over the given database's journal and
// users collections.
func NewJournalStore(db *mongo.Database) *MongoJournalStore {
	return &MongoJournalStore{
		journal: db.Collection("journal"),
		users:   db.Collection("users"),
	}
}

// Append adds entry to the user's bucket for date, creating the document or
// the bucket as needed, then updates the user's current_mode.
//
// The bucket writes use Mongo's positional $push, which is atomic at the
// document level; that atomicity is what holds the one-bucket-per-date
// invariant under concurrent appends for the same user. The current_mode
// update runs only after the bucket write succeeded, and a failure there is
// returned, not masked (the already-written entry stays; there is no
// rollback across the two collections).
func (s *MongoJournalStore) Append(ctx context.Context, email, date string, entry models.JournalEntry) error {
	var doc models.JournalDocument
	err := s.journal.FindOne(ctx, bson.M{"email": email}).Decode(&doc)

	switch {
	case err == mongo.ErrNoDocuments:
		// First-ever submission: create the document with a single bucket.
		newDoc := models.JournalDocument{
			Email: email,
			Journal: []models.DateBucket{
				{Date: date, Entries: []models.JournalEntry{entry}},
			},
		}
		if _, err := s.journal.InsertOne(ctx, newDoc); err != nil {
			return fmt.Errorf("insert journal document: %w", err)
		}

	case err != nil:
		return fmt.Errorf("find journal document: %w", err)

	case bucketIndex(&doc, date) >= 0:
		// A bucket for this date exists: push into it, never create a second one.
		if _, err := s.journal.UpdateOne(ctx,
			bson.M{"email": email, "journal.date": date},
			bson.M{"$push": bson.M{"journal.$.entries": entry}},
		); err != nil {
			return fmt.Errorf("append entry to date bucket: %w", err)
		}

	default:
		// Document exists but this date is new: add a bucket alongside the others.
		if _, err := s.journal.UpdateOne(ctx,
			bson.M{"email": email},
			bson.M{"$push": bson.M{"journal": models.DateBucket{Date: date, Entries: []models.JournalEntry{entry}}}},
		); err != nil {
			return fmt.Errorf("append date bucket: %w", err)
		}
	}

	if err := s.setCurrentMode(ctx, email, entry.Prediction); err != nil {
		log.Printf("[JournalStore] journal updated but current_mode update failed for %s: %v", email, err)
		return fmt.Errorf("update current_mode: %w", err)
	}

	return nil
}

// setCurrentMode writes the projection and drops the stale cached reads.
func (s *MongoJournalStore) setCurrentMode(ctx context.Context, email, prediction string) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"current_mode": prediction}},
	)
	if err != nil {
		return err
	}

	// Cache invalidation is best effort; a failure leaves a stale read for
	// at most the cache TTL.
	if err := Cache.Delete(CurrentModeKey(email)); err != nil {
		log.Printf("[JournalStore] failed to invalidate current_mode cache for %s: %v", email, err)
	}
	if err := Cache.Delete(JournalKey(email)); err != nil {
		log.Printf("[JournalStore] failed to invalidate journal cache for %s: %v", email, err)
	}

	return nil
}

// GetJournal returns the user's journal document. A user with no journal yet
// gets an empty document, not an error.
func (s *MongoJournalStore) GetJournal(ctx context.Context, email string) (*models.JournalDocument, error) {
	var doc models.JournalDocument
	if ok, _ := Cache.Get(JournalKey(email), &doc); ok {
		return &doc, nil
	}

	err := s.journal.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return &models.JournalDocument{Email: email, Journal: []models.DateBucket{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find journal document: %w", err)
	}

	if err := Cache.Set(JournalKey(email), &doc); err != nil {
		log.Printf("[JournalStore] failed to cache journal for %s: %v", email, err)
	}

	return &doc, nil
}
