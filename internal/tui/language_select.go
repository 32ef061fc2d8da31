// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sarychelek/kiosk/internal/service"
	"github.com/sarychelek/kiosk/internal/validators"
	"github.com/sarychelek/kiosk/models"
)

// LanguageSelectModel is the first step of the gate: a bilingual welcome
// screen offering the first-contact languages. The chosen code is persisted
// the moment it is picked, not deferred to form submission; after a short
// pause the credential card opens — in sign-in mode when this kiosk already
// has registered visitors, sign-up mode otherwise.
type LanguageSelectModel struct {
	auth  *service.AuthService
	prefs *service.PreferenceService
	delay time.Duration

	idx    int
	picked bool
}

type languageOption struct {
	lang   models.Language
	flag   string
	name   string
	native string
}

var gateOptions = []languageOption{
	{lang: models.LanguageKyrgyz, flag: "🇰🇬", name: "Кыргызча", native: "Kyrgyz Language"},
	{lang: models.LanguageRussian, flag: "🇷🇺", name: "Русский", native: "Russian Language"},
}

// NewLanguageSelectModel creates the language-selection page.
func NewLanguageSelectModel(auth *service.AuthService, prefs *service.PreferenceService, delay time.Duration) *LanguageSelectModel {
	return &LanguageSelectModel{auth: auth, prefs: prefs, delay: delay}
}

func (m *LanguageSelectModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model]. Handled messages:
//   - [languagePickedMsg] — the post-pick pause elapsed; opens the
//     credential card with the start mode decided by the stored collection.
//   - up/down          — moves the cursor.
//   - enter            — persists the highlighted language and starts the
//     pick pause.
func (m *LanguageSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(languagePickedMsg); ok {
		m.picked = false
		mode := validators.SignUp
		if m.auth.HasAccounts() {
			mode = validators.SignIn
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: "auth", Payload: authOpenMsg{mode: mode}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.picked {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(gateOptions)-1 {
			m.idx++
		}
	case "enter":
		chosen := gateOptions[m.idx].lang
		m.prefs.SetLanguage(chosen)
		m.picked = true
		return m, tea.Tick(m.delay, func(time.Time) tea.Msg {
			return languagePickedMsg{lang: chosen}
		})
	}

	return m, nil
}

// View implements [tea.Model]. The welcome copy is intentionally bilingual:
// no language has been chosen yet, so the screen speaks both.
func (m *LanguageSelectModel) View() string {
	var b strings.Builder
	b.WriteString("Кош келиңиз • Добро пожаловать\n")
	b.WriteString("Тилди тандаңыз • Выберите язык\n\n")

	for i, opt := range gateOptions {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(opt.flag)
		b.WriteString(" ")
		b.WriteString(opt.name)
		b.WriteString(" — ")
		b.WriteString(opt.native)
		b.WriteString("\n")
	}

	if m.picked {
		b.WriteString("\n...\n")
	}

	return renderPage("САРЫ-ЧЕЛЕК", strings.TrimRight(b.String(), "\n"), "enter │ ↑/↓ │ ctrl+c")
}
