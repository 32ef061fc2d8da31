package models

import "time"

// User represents one registered visitor identity kept in the kiosk's local
// slot storage. Records are append-only: nothing in the application updates
// or deletes them after creation.
//
// The password is stored verbatim. The kiosk gate is a presentation device,
// not a security boundary; the stored collection lives in a world-readable
// local file and must never be treated as a credential database.
type User struct {
	// Name is the display name of the visitor. May be empty for records
	// created through flows that skip the name field.
	Name string `json:"name"`

	// Email is the unique key of the record within the local collection.
	// Matching is exact (case-sensitive).
	Email string `json:"email"`

	// Password is the plaintext password the visitor typed at registration.
	Password string `json:"password"`

	// Language is the locale code chosen at registration time, if any.
	Language Language `json:"language,omitempty"`

	// CreatedAt is set once when the record is created and never changes.
	CreatedAt time.Time `json:"createdAt"`
}
