// SPDX-License-Identifier: Apache-2.0

package store

import (
	"encoding/json"
	"time"

	"github.com/sarychelek/kiosk/internal/logger"
	"github.com/sarychelek/kiosk/models"
)

// UserRepository manages the local collection of registered visitors kept
// under the "users" slot. The collection is read and written as a whole:
// registration is a plain read-modify-write with no cross-process guard,
// matching the single-visitor nature of a kiosk (last writer wins).
type UserRepository struct {
	kv     KV
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] on top of the provided
// slot storage.
func NewUserRepository(kv KV, log *logger.Logger) *UserRepository {
	log.Debug().Msg("creating user repository")
	return &UserRepository{kv: kv, logger: log}
}

// ListUsers returns every registered record. An absent or malformed "users"
// slot yields an empty slice: the slot lives outside the application's
// control and may have been cleared or tampered with, so deserialization
// problems degrade to "nobody registered yet" instead of failing the caller.
func (r *UserRepository) ListUsers() []models.User {
	raw, ok := r.kv.Get(SlotUsers)
	if !ok {
		return nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		r.logger.Warn().Err(err).Msg("malformed users slot, treating as empty")
		return nil
	}

	return users
}

// FindByEmail returns the record whose email exactly matches the argument.
// Matching is case-sensitive.
func (r *UserRepository) FindByEmail(email string) (models.User, bool) {
	for _, u := range r.ListUsers() {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// Register appends a new record to the collection and persists it.
// CreatedAt is stamped here and never changes afterwards.
//
// Returns [ErrEmailAlreadyRegistered] when a record with the same email
// exists; in that case the stored collection is left exactly as it was.
func (r *UserRepository) Register(candidate models.User) (models.User, error) {
	users := r.ListUsers()
	for _, u := range users {
		if u.Email == candidate.Email {
			return models.User{}, ErrEmailAlreadyRegistered
		}
	}

	candidate.CreatedAt = time.Now().UTC()
	users = append(users, candidate)

	payload, err := json.Marshal(users)
	if err != nil {
		// Only reachable with values json cannot encode; User has none.
		r.logger.Err(err).Msg("encode users slot")
		return models.User{}, err
	}
	r.kv.Set(SlotUsers, string(payload))

	r.logger.Info().Str("email", candidate.Email).Msg("visitor registered")
	return candidate, nil
}

// Verify checks the supplied credentials against the stored collection.
// The two failure modes stay distinct so the gate can show different
// messages: [ErrAccountNotFound] when no record matches the email,
// [ErrWrongPassword] when the record exists but the password differs
// (exact string equality, no hashing by design).
func (r *UserRepository) Verify(email, password string) (models.User, error) {
	user, found := r.FindByEmail(email)
	if !found {
		return models.User{}, ErrAccountNotFound
	}
	if user.Password != password {
		return models.User{}, ErrWrongPassword
	}
	return user, nil
}
