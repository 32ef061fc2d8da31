// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"testing"

	"github.com/sarychelek/kiosk/internal/logger"
	"github.com/sarychelek/kiosk/models"
)

func newTestUserRepo() (*UserRepository, *MemoryKV) {
	kv := NewMemoryKV()
	return NewUserRepository(kv, logger.Nop()), kv
}

func TestRegisterAndVerify_Roundtrip(t *testing.T) {
	repo, _ := newTestUserRepo()

	created, err := repo.Register(models.User{
		Name:     "Aigerim",
		Email:    "aigerim@example.com",
		Password: "password123",
		Language: models.LanguageKyrgyz,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped on registration")
	}

	found, err := repo.Verify("aigerim@example.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Aigerim" || found.Language != models.LanguageKyrgyz {
		t.Errorf("roundtrip lost fields: %+v", found)
	}
}

func TestRegister_DuplicateEmailLeavesCollectionUnchanged(t *testing.T) {
	repo, kv := newTestUserRepo()

	if _, err := repo.Register(models.User{Email: "a@b.com", Password: "password123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before, _ := kv.Get(SlotUsers)

	_, err := repo.Register(models.User{Email: "a@b.com", Password: "different1"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}

	after, _ := kv.Get(SlotUsers)
	if before != after {
		t.Error("failed registration must not touch the stored collection")
	}
}

func TestVerify_FailureModesStayDistinct(t *testing.T) {
	repo, _ := newTestUserRepo()

	if _, err := repo.Register(models.User{Email: "a@b.com", Password: "password123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := repo.Verify("missing@b.com", "password123")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}

	_, err = repo.Verify("a@b.com", "wrong-password")
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}

func TestFindByEmail_CaseSensitive(t *testing.T) {
	repo, _ := newTestUserRepo()

	if _, err := repo.Register(models.User{Email: "Visitor@B.com", Password: "password123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, found := repo.FindByEmail("visitor@b.com"); found {
		t.Error("matching is byte-exact, differently-cased lookup must miss")
	}
	if _, found := repo.FindByEmail("Visitor@B.com"); !found {
		t.Error("exact lookup must hit")
	}
}

func TestListUsers_MalformedSlotDegradesToEmpty(t *testing.T) {
	repo, kv := newTestUserRepo()

	kv.Set(SlotUsers, "{not json")
	if users := repo.ListUsers(); len(users) != 0 {
		t.Errorf("expected empty collection, got %v", users)
	}

	// A malformed collection does not block new registrations.
	if _, err := repo.Register(models.User{Email: "a@b.com", Password: "password123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users := repo.ListUsers(); len(users) != 1 {
		t.Errorf("expected one record after re-registration, got %d", len(users))
	}
}

func TestListUsers_AbsentSlot(t *testing.T) {
	repo, _ := newTestUserRepo()
	if users := repo.ListUsers(); users != nil {
		t.Errorf("expected nil for absent slot, got %v", users)
	}
}
