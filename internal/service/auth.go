package service

import (
	"github.com/sarychelek/kiosk/internal/logger"
	"github.com/sarychelek/kiosk/internal/store"
	"github.com/sarychelek/kiosk/models"
)

// AuthService fronts the local credential store for the gate. It adds no
// policy of its own: uniqueness and the two distinct sign-in failures are
// enforced by the repository, and validation happens before the form is
// ever submitted here.
type AuthService struct {
	users  *store.UserRepository
	logger *logger.Logger
}

func NewAuthService(users *store.UserRepository, log *logger.Logger) *AuthService {
	return &AuthService{users: users, logger: log}
}

// Register creates a new visitor record. Fails with
// [store.ErrEmailAlreadyRegistered] when the email is taken.
func (a *AuthService) Register(candidate models.User) (models.User, error) {
	return a.users.Register(candidate)
}

// SignIn checks the credentials against the stored collection. Fails with
// [store.ErrAccountNotFound] or [store.ErrWrongPassword]; the gate shows a
// different message for each.
func (a *AuthService) SignIn(email, password string) (models.User, error) {
	return a.users.Verify(email, password)
}

// HasAccounts reports whether anyone has registered on this kiosk yet.
// The gate opens the credential card in sign-in mode when true, sign-up
// mode otherwise.
func (a *AuthService) HasAccounts() bool {
	return len(a.users.ListUsers()) > 0
}
