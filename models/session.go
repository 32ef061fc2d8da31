package models

// Session describes who, if anyone, is currently considered signed in.
// It is derived from two storage slots and is never persisted as a unit:
// the session manager reconstructs it on every restore.
type Session struct {
	// CurrentUser is present once a login or registration succeeds.
	CurrentUser *User

	// Authenticated is true only when the persisted "registered" flag and
	// CurrentUser agree. Any disagreement between the two slots resolves
	// to an unauthenticated session.
	Authenticated bool

	// ID is a per-login identifier stamped by the session manager.
	// Used only to correlate log entries; it carries no authority.
	ID string
}

// Anonymous returns the unauthenticated session.
func Anonymous() Session {
	return Session{}
}
