package models

// JournalEntry is a single analyzed journal submission. All fields are final
// at creation time; nothing in this service mutates an entry afterwards.
type JournalEntry struct {
	ID         string `bson:"_id" json:"_id"`
	Title      string `bson:"title" json:"title"`
	Content    string `bson:"content" json:"content"`
	Prediction string `bson:"prediction" json:"prediction"`
}

// DateBucket groups the entries submitted on one calendar date.
// Date is DD-MM-YYYY in UTC; Entries keep submission order.
type DateBucket struct {
	Date    string         `bson:"date" json:"date"`
	Entries []JournalEntry `bson:"entries" json:"entries"`
}

// JournalDocument is the one-per-user journal document.
// Journal holds at most one bucket per date value.
type JournalDocument struct {
	Email   string       `bson:"email" json:"email"`
	Journal []DateBucket `bson:"journal" json:"journal"`
}
