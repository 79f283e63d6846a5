package services

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moodlens/moodlens-backend/internal/models"
)

// UserService reads the users collection. Accounts are created elsewhere;
// this service only looks users up and serves the current_mode projection.
type UserService struct {
	users *mongo.Collection
}

// NewUserService creates a UserService over the given database.
func NewUserService(db *mongo.Database) *UserService {
	return &UserService{users: db.Collection("users")}
}

// FindByEmail returns the user record for email, or ErrUserNotFound.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// CurrentMode returns the user's current_mode, serving from the Redis cache
// when possible. An empty string means the user has no accepted entries yet.
func (s *UserService) CurrentMode(ctx context.Context, email string) (string, error) {
	if mode, ok, _ := Cache.GetString(CurrentModeKey(email)); ok {
		return mode, nil
	}

	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if user.CurrentMode != "" {
		if err := Cache.SetString(CurrentModeKey(email), user.CurrentMode); err != nil {
			log.Printf("[UserService] failed to cache current_mode for %s: %v", email, err)
		}
	}

	return user.CurrentMode, nil
}
