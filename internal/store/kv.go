package store

// Slot names recognized by the kiosk. The whole persisted state of the
// application is a flat mapping from these keys to UTF-8 strings; "users"
// and "currentUser" hold JSON-serialized values.
const (
	// SlotUsers holds the JSON array of registered [models.User] records.
	SlotUsers = "users"

	// SlotCurrentUser holds the JSON object of the signed-in user.
	SlotCurrentUser = "currentUser"

	// SlotIsRegistered holds the literal string "true" while a session is
	// active; the slot is absent otherwise.
	SlotIsRegistered = "isRegistered"

	// SlotLanguage holds the active locale code.
	SlotLanguage = "language"

	// SlotRememberedEmail holds the email to pre-fill on the next visit.
	SlotRememberedEmail = "rememberedEmail"

	// SlotShowSuccess and SlotShowHeaderSuccess are one-shot UI flags set
	// after a successful sign-in and consumed by the showcase screen.
	SlotShowSuccess       = "showSuccess"
	SlotShowHeaderSuccess = "showHeaderSuccess"

	// SlotIsPlaying tracks the background-music toggle.
	SlotIsPlaying = "isPlaying"
)

// KV is the durable key-value slot storage behind every stateful component
// of the kiosk. Operations are synchronous; a write is visible to every
// subsequent read in the same process. Backend failures never propagate:
// Get reports absence, Set and Remove log and carry on, so callers treat
// storage as infallible and a failed write leaves the previous value.
type KV interface {
	// Get returns the value stored under key and whether the key exists.
	Get(key string) (string, bool)
	// Set stores value under key, replacing any previous value.
	Set(key, value string)
	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)
}
