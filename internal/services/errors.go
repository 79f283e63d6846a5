package services

import "errors"

var (
	// ErrMissingFields is returned when a submission lacks email or sentence.
	ErrMissingFields = errors.New("'email', 'sentence' and 'title' are required fields")

	// ErrUserNotFound is returned when no user record exists for an email.
	ErrUserNotFound = errors.New("email not found")
)
