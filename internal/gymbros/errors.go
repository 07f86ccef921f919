// Package gymbros holds the core business logic of the GymBros backend:
// friend graph maintenance, friend discovery by code, and the daily activity
// feed. It depends only on the store interfaces defined in stores.go so the
// whole package is testable against in-memory fakes.
package gymbros

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced user or request does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicateRequest is returned when a pending request already exists for the same sender and recipient
	ErrDuplicateRequest = errors.New("a pending friend request already exists")
	// ErrAlreadyFriends is returned when the recipient is already in the sender's friend set
	ErrAlreadyFriends = errors.New("users are already friends")
	// ErrAlreadyResolved is returned when accepting or rejecting a request that is no longer pending
	ErrAlreadyResolved = errors.New("friend request has already been resolved")
	// ErrSelfRequest is returned when a user sends a friend request to themselves
	ErrSelfRequest = errors.New("cannot send a friend request to yourself")
	// ErrInvalidCodeFormat is returned when a friend code is not exactly 4 digits
	ErrInvalidCodeFormat = errors.New("friend code must be exactly 4 digits")
	// ErrCodeSpaceExhausted is returned when code generation runs out of attempts
	ErrCodeSpaceExhausted = errors.New("could not generate an unused friend code")
)

// TransientError wraps a store failure. Domain errors above are terminal for
// the calling operation; a TransientError may be retried by the caller.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *TransientError) Unwrap() error { return e.Err }

// Transient wraps err as a retryable store failure. Returns nil if err is nil
// and leaves domain errors and existing TransientErrors untouched.
func Transient(op string, err error) error {
	if err == nil {
		return nil
	}
	var te *TransientError
	if errors.As(err, &te) || isDomain(err) {
		return err
	}
	return &TransientError{Op: op, Err: err}
}

func isDomain(err error) bool {
	for _, d := range []error{
		ErrNotFound, ErrDuplicateRequest, ErrAlreadyFriends, ErrAlreadyResolved,
		ErrSelfRequest, ErrInvalidCodeFormat, ErrCodeSpaceExhausted,
	} {
		if errors.Is(err, d) {
			return true
		}
	}
	return false
}
