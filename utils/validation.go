package utils

import (
	netmail "net/mail"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{0,14}$`)

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func ValidateEmail(email string) error {
	_, err := netmail.ParseAddress(email)

	return err
}

// ValidatePhoneNumber allows digits with an optional leading + and common
// separators, capped at the 15 characters the users table stores.
func ValidatePhoneNumber(phone string) error {
	if len(phone) == 0 || len(phone) > 15 {
		return ErrInvalidPhone
	}
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// ValidateTaskDescription enforces the 255-character column bound.
func ValidateTaskDescription(description string) error {
	if len(description) == 0 || len(description) > 255 {
		return ErrInvalidDescription
	}
	return nil
}

// ValidateTaskCategory enforces the 100-character column bound. An empty
// category is allowed; the column defaults to ''.
func ValidateTaskCategory(category string) error {
	if len(category) > 100 {
		return ErrInvalidCategory
	}
	return nil
}

func SamePassword(password string, confirmedPassword string) bool {
	return password == confirmedPassword
}
