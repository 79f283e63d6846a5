package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`

	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email" json:"email"`

	// CurrentMode is the prediction of the user's most recently accepted
	// journal entry, across all dates.
	CurrentMode string `bson:"current_mode,omitempty" json:"current_mode,omitempty"`
}
