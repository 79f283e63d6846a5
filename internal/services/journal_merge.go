package services

import "github.com/moodlens/moodlens-backend/internal/models"

// bucketIndex returns the position of the bucket for date in doc, or -1 when
// no such bucket exists.
func bucketIndex(doc *models.JournalDocument, date string) int {
	if doc == nil {
		return -1
	}
	for i, bucket := range doc.Journal {
		if bucket.Date == date {
			return i
		}
	}
	return -1
}

// appendEntry applies the date-bucketed merge to an in-memory document and
// returns the result. A nil doc yields a fresh document; an existing bucket
// for the date gains the entry at the end; otherwise a new bucket is added
// after the existing ones. These are the same three cases
// MongoJournalStore.Append translates into Mongo writes.
func appendEntry(doc *models.JournalDocument, email, date string, entry models.JournalEntry) *models.JournalDocument {
	if doc == nil {
		return &models.JournalDocument{
			Email: email,
			Journal: []models.DateBucket{
				{Date: date, Entries: []models.JournalEntry{entry}},
			},
		}
	}

	if i := bucketIndex(doc, date); i >= 0 {
		doc.Journal[i].Entries = append(doc.Journal[i].Entries, entry)
		return doc
	}

	doc.Journal = append(doc.Journal, models.DateBucket{
		Date:    date,
		Entries: []models.JournalEntry{entry},
	})
	return doc
}
