// SPDX-License-Identifier: Apache-2.0

package service

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/sarychelek/kiosk/internal/logger"
	"github.com/sarychelek/kiosk/internal/store"
	"github.com/sarychelek/kiosk/models"
)

// SessionService tracks the current visitor. A session is nothing more
// than two storage slots that must agree: the "isRegistered" marker and
// the serialized current user. Everything here is idempotent; calling
// Logout on an already-anonymous kiosk changes nothing.
type SessionService struct {
	kv     store.KV
	logger *logger.Logger
}

func NewSessionService(kv store.KV, log *logger.Logger) *SessionService {
	return &SessionService{kv: kv, logger: log}
}

// Restore rebuilds the session from storage at startup. It returns an
// authenticated session only when the registered marker is the literal
// "true" AND the current-user slot deserializes into a record; every other
// combination — a marker without a user, a user without a marker, a
// tampered payload — resolves to anonymous. Fail closed, never trust a
// partial state.
func (s *SessionService) Restore() models.Session {
	flag, ok := s.kv.Get(store.SlotIsRegistered)
	if !ok || flag != "true" {
		return models.Anonymous()
	}

	raw, ok := s.kv.Get(store.SlotCurrentUser)
	if !ok {
		return models.Anonymous()
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn().Err(err).Msg("malformed currentUser slot, treating session as anonymous")
		return models.Anonymous()
	}

	s.logger.Debug().Str("email", user.Email).Msg("session restored")
	return models.Session{CurrentUser: &user, Authenticated: true, ID: uuid.NewString()}
}

// Login persists user as the current visitor and marks the kiosk
// registered. When rememberEmail is set the email is kept for pre-filling
// the form on the next visit, otherwise any remembered value is dropped.
// If the record carries a language preference it becomes the active
// language; a record without one leaves the current choice untouched.
// The one-shot success flags are armed for the showcase to consume.
func (s *SessionService) Login(user models.User, rememberEmail bool) models.Session {
	payload, err := json.Marshal(user)
	if err != nil {
		// User has no unencodable fields; this is effectively unreachable.
		s.logger.Err(err).Msg("encode currentUser slot")
		return models.Anonymous()
	}

	s.kv.Set(store.SlotCurrentUser, string(payload))
	s.kv.Set(store.SlotIsRegistered, "true")

	if rememberEmail {
		s.kv.Set(store.SlotRememberedEmail, user.Email)
	} else {
		s.kv.Remove(store.SlotRememberedEmail)
	}

	if user.Language.Valid() {
		s.kv.Set(store.SlotLanguage, string(user.Language))
	}

	s.kv.Set(store.SlotShowSuccess, "true")
	s.kv.Set(store.SlotShowHeaderSuccess, "true")

	session := models.Session{CurrentUser: &user, Authenticated: true, ID: uuid.NewString()}
	s.logger.Info().Str("email", user.Email).Str("session", session.ID).Msg("visitor signed in")
	return session
}

// Logout returns the kiosk to its pristine first-visit state: the session
// slots, the language choice and the transient success flags are all
// removed, so the next start shows the language-selection step again.
// The registered-users collection itself is left alone.
func (s *SessionService) Logout() {
	s.kv.Remove(store.SlotCurrentUser)
	s.kv.Remove(store.SlotIsRegistered)
	s.kv.Remove(store.SlotLanguage)
	s.kv.Remove(store.SlotShowSuccess)
	s.kv.Remove(store.SlotShowHeaderSuccess)

	s.logger.Info().Msg("visitor signed out")
}

// RememberedEmail returns the email stored by a previous "remember me"
// login, if any.
func (s *SessionService) RememberedEmail() (string, bool) {
	return s.kv.Get(store.SlotRememberedEmail)
}
