package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sarychelek/kiosk/internal/logger"
	"github.com/sarychelek/kiosk/internal/service"
	"github.com/sarychelek/kiosk/internal/store"
	"github.com/sarychelek/kiosk/models"
)

func newTestShowcase(t *testing.T) (*ShowcaseModel, *store.MemoryKV, *service.SessionService) {
	t.Helper()
	kv := store.NewMemoryKV()
	log := logger.Nop()
	session := service.NewSessionService(kv, log)
	prefs := service.NewPreferenceService(kv, models.LanguageEnglish, false, log)

	user := models.User{Name: "Aigerim", Email: "a@b.com"}
	return NewShowcaseModel(session, prefs, time.Millisecond, user), kv, session
}

func TestShowcase_InitConsumesSuccessFlags(t *testing.T) {
	model, kv, session := newTestShowcase(t)
	session.Login(models.User{Email: "a@b.com"}, false)

	cmd := model.Init()
	if cmd == nil || !model.toast {
		t.Fatal("armed success flags must produce the welcome toast")
	}

	// One-shot: the flags are gone from storage.
	for _, slot := range []string{store.SlotShowSuccess, store.SlotShowHeaderSuccess} {
		if _, ok := kv.Get(slot); ok {
			t.Errorf("flag %q must be consumed", slot)
		}
	}

	// A second visit shows no toast.
	model.toast = false
	if cmd := model.Init(); cmd != nil || model.toast {
		t.Error("consumed flags must not re-arm the toast")
	}
}

func TestShowcase_PageNavigationWraps(t *testing.T) {
	model, _, _ := newTestShowcase(t)

	model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if model.page != len(showcasePages)-1 {
		t.Errorf("left from the first page must wrap, got %d", model.page)
	}
	model.Update(tea.KeyMsg{Type: tea.KeyRight})
	if model.page != 0 {
		t.Errorf("right must wrap back, got %d", model.page)
	}
}

func TestShowcase_SignOutClearsSessionAndQuits(t *testing.T) {
	model, _, session := newTestShowcase(t)
	session.Login(models.User{Email: "a@b.com"}, false)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd == nil {
		t.Fatal("sign-out must quit the program")
	}
	if !model.LoggedOut {
		t.Error("sign-out must be reported to the caller")
	}
	if session.Restore().Authenticated {
		t.Error("sign-out must clear the persisted session")
	}
}

func TestShowcase_PlainQuitKeepsSession(t *testing.T) {
	model, _, session := newTestShowcase(t)
	session.Login(models.User{Email: "a@b.com"}, false)
	model.Init()

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q must quit the program")
	}
	if model.LoggedOut {
		t.Error("a plain quit is not a sign-out")
	}
	if !session.Restore().Authenticated {
		t.Error("the session must survive a plain quit")
	}
}

func TestShowcase_CopyOnlyOnContactPage(t *testing.T) {
	model, _, _ := newTestShowcase(t)

	// Not on the contact page: the key does nothing.
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if cmd != nil {
		t.Error("copy must be inert outside the contact page")
	}

	for showcasePages[model.page].navKey != "nav_contact" {
		model.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if cmd == nil {
		t.Error("expected a clipboard command on the contact page")
	}
}

func TestShowcase_LanguageCycle(t *testing.T) {
	model, kv, _ := newTestShowcase(t)

	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if lang, _ := kv.Get(store.SlotLanguage); lang != "kg" {
		t.Errorf("expected en → kg, slot holds %q", lang)
	}
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if lang, _ := kv.Get(store.SlotLanguage); lang != "ru" {
		t.Errorf("expected kg → ru, slot holds %q", lang)
	}
}
