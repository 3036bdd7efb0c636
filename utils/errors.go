package utils

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for the auth and task boundaries. Handlers map these to
// HTTP statuses or flash messages and must never surface raw storage errors.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrInvalidDescription = errors.New("description must be between 1 and 255 characters")
	ErrInvalidCategory    = errors.New("category must be at most 100 characters")

	ErrEmailTaken = errors.New("email address already exists")
	ErrPhoneTaken = errors.New("phone number already exists")

	ErrEmailNotFound      = errors.New("email not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")

	ErrTaskNotFound = errors.New("task not found")
	ErrNotTaskOwner = errors.New("task belongs to another user")

	ErrTranslationFailed = errors.New("translation failed")
)

const uniqueViolation = "23505"

// MapUniqueViolation converts a commit-time unique-constraint failure into
// the matching conflict sentinel. The constraint name tells us which field
// collided when two registrations race past the pre-check.
func MapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return ErrEmailTaken
	case strings.Contains(pgErr.ConstraintName, "phone"):
		return ErrPhoneTaken
	default:
		return err
	}
}
