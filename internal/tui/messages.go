package tui

import (
	"github.com/sarychelek/kiosk/internal/validators"
	"github.com/sarychelek/kiosk/models"
)

// NavigateTo switches the gate router to another page. An optional Payload
// is re-delivered to the newly active page.
type NavigateTo struct {
	Page    string
	Payload interface{}
}

// GateDone finishes the gate flow: the visitor in User is signed in.
type GateDone struct {
	User models.User
}

// authOpenMsg is the payload the language screen sends when opening the
// credential card.
type authOpenMsg struct {
	mode validators.Mode
}

// authOutcomeMsg carries the result of a register/sign-in attempt.
type authOutcomeMsg struct {
	user models.User
	err  error
}

// Pacing timers. Each fires exactly once; an exited program simply never
// receives the pending message.
type (
	languagePickedMsg struct{ lang models.Language }
	submitTimerMsg    struct{}
	completeTimerMsg  struct{}
	clearMessageMsg   struct{}
	clearStatusMsg    struct{}
)

type copiedMsg struct{ err error }
