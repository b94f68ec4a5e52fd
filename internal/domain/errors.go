// Package domain contains the core business entities for Alexander Directory.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors - these represent business rule violations.
// They are distinct from infrastructure errors (randomness, delivery, etc.).

var (
	// ===========================================
	// Validation Errors
	// ===========================================

	// ErrBlankFirstName indicates the first name is empty or whitespace.
	ErrBlankFirstName = errors.New("first name must not be blank")

	// ErrNoContactMethod indicates neither email nor phone was supplied.
	ErrNoContactMethod = errors.New("email or phone must be supplied")

	// ErrInvalidPhone indicates the phone number does not normalize to the
	// canonical form of a "+" followed by exactly 11 digits.
	ErrInvalidPhone = errors.New("phone must start with + and contain 11 digits")

	// ErrFullNameFormat indicates the full name does not split into one or
	// two whitespace-separated tokens.
	ErrFullNameFormat = errors.New("full name must contain only a first name and a last name")

	// ===========================================
	// Registry Errors
	// ===========================================

	// ErrUserAlreadyExists indicates a user with the same login is registered.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ===========================================
	// Credential Errors
	// ===========================================

	// ErrPasswordMismatch indicates the supplied password does not verify
	// against the stored credential hash.
	ErrPasswordMismatch = errors.New("password does not match the current password")
)

// DomainError wraps a domain error with the input that violated it.
type DomainError struct {
	// Err is the underlying domain error.
	Err error

	// Message provides additional context.
	Message string

	// Input is the offending value (e.g., the raw phone or full name).
	Input string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s (%q)", e.Err.Error(), e.Message, e.Input)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError with context.
func NewDomainError(err error, message, input string) *DomainError {
	return &DomainError{
		Err:     err,
		Message: message,
		Input:   input,
	}
}
