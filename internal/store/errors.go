package store

import "errors"

// Sentinel errors returned by the user repository to signal well-known
// failure conditions. Callers should use [errors.Is] to match against them.
var (
	// ErrEmailAlreadyRegistered is returned when a registration attempt
	// reuses the email of an existing record. The stored collection is
	// left untouched.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrAccountNotFound is returned by Verify when no record matches the
	// supplied email. Kept distinct from [ErrWrongPassword] on purpose:
	// the gate shows a different message for each case.
	ErrAccountNotFound = errors.New("account not found")

	// ErrWrongPassword is returned by Verify when a record matches the
	// email but the supplied password differs from the stored one.
	ErrWrongPassword = errors.New("wrong password")
)
