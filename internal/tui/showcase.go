// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sarychelek/kiosk/internal/i18n"
	"github.com/sarychelek/kiosk/internal/service"
	"github.com/sarychelek/kiosk/internal/store"
	"github.com/sarychelek/kiosk/models"
)

// showcasePages pairs each header tab with its body text, in header order.
var showcasePages = []struct {
	navKey  string
	bodyKey string
}{
	{"nav_main", "page_main"},
	{"nav_about", "page_about"},
	{"nav_history", "page_history"},
	{"nav_nature", "page_nature"},
	{"nav_gallery", "page_gallery"},
	{"nav_how_to_go", "page_how_to_go"},
	{"nav_contact", "page_contact"},
}

// ShowcaseModel is the signed-in half of the kiosk: the regional pages a
// visitor browses after passing the gate. It runs as its own program, after
// the gate program has exited. Leaving with the sign-out key reports
// LoggedOut to the caller so the whole flow can start over from the
// language step.
type ShowcaseModel struct {
	session *service.SessionService
	prefs   *service.PreferenceService
	ttl     time.Duration

	user models.User
	page int

	toast  bool
	status string

	// LoggedOut is set when the visitor signed out rather than just
	// closing the kiosk.
	LoggedOut bool
}

// NewShowcaseModel creates the showcase for the signed-in user.
func NewShowcaseModel(session *service.SessionService, prefs *service.PreferenceService, ttl time.Duration, user models.User) *ShowcaseModel {
	return &ShowcaseModel{session: session, prefs: prefs, ttl: ttl, user: user}
}

// Init implements [tea.Model]. Consumes the one-shot success flags armed at
// login; when either was set, a welcome toast is shown once and auto-hidden.
func (m *ShowcaseModel) Init() tea.Cmd {
	shown := m.prefs.TakeFlag(store.SlotShowSuccess)
	header := m.prefs.TakeFlag(store.SlotShowHeaderSuccess)
	if !shown && !header {
		return nil
	}

	m.toast = true
	return tea.Tick(m.ttl, func(time.Time) tea.Msg { return clearMessageMsg{} })
}

// Update implements [tea.Model]. Handled messages:
//   - left/right       — moves between pages.
//   - l                — cycles the language (en → kg → ru → en).
//   - m                — toggles the background-music flag.
//   - c                — copies the contact email (contact page only).
//   - x                — signs out and quits with LoggedOut set.
//   - q / ctrl+c       — quits, leaving the session in place.
//   - [copiedMsg]      — resolves the clipboard attempt into a status line.
//   - [clearMessageMsg] / [clearStatusMsg] — auto-hide timers.
func (m *ShowcaseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearMessageMsg:
		m.toast = false
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = i18n.Lookup(m.prefs.Language(), "copied")
		}
		return m, tea.Tick(m.ttl, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "shift+tab":
			m.page = (m.page - 1 + len(showcasePages)) % len(showcasePages)

		case "right", "tab":
			m.page = (m.page + 1) % len(showcasePages)

		case "l":
			m.prefs.CycleLanguage()

		case "m":
			playing := m.prefs.ToggleMusic()
			key := "music_off"
			if playing {
				key = "music_on"
			}
			m.status = i18n.Lookup(m.prefs.Language(), key)
			return m, tea.Tick(m.ttl, func(time.Time) tea.Msg { return clearStatusMsg{} })

		case "c":
			if showcasePages[m.page].navKey != "nav_contact" {
				return m, nil
			}
			email := i18n.Lookup(m.prefs.Language(), "contact_email")
			return m, func() tea.Msg { return copiedMsg{err: clipboard.WriteAll(email)} }

		case "x":
			m.session.Logout()
			m.LoggedOut = true
			return m, tea.Quit

		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements [tea.Model]. A header of tabs, the active page body and a
// transient status line, all in the active language.
func (m *ShowcaseModel) View() string {
	lang := m.prefs.Language()
	tr := func(key string) string { return i18n.Lookup(lang, key) }

	var b strings.Builder

	tabs := make([]string, 0, len(showcasePages))
	for i, p := range showcasePages {
		label := tr(p.navKey)
		if i == m.page {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, inactiveTab.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, " │ "))
	b.WriteString("\n\n")

	if m.toast {
		b.WriteString(successStyle.Render("✓ " + tr("welcome_back") + ", " + m.user.Name + "!"))
		b.WriteString("\n\n")
	}

	b.WriteString(wrapText(tr(showcasePages[m.page].bodyKey), 52))
	b.WriteString("\n")

	if showcasePages[m.page].navKey == "nav_contact" {
		b.WriteString("\n" + tr("contact_email") + "\n" + tr("contact_phone") + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status) + "\n")
	}

	help := "←/→ │ l: " + tr("language") + " │ m │ x: " + tr("back_to_registration") + " │ q"
	if showcasePages[m.page].navKey == "nav_contact" {
		help = "←/→ │ c │ l: " + tr("language") + " │ m │ x: " + tr("back_to_registration") + " │ q"
	}

	return appStyle.Render(renderPage(strings.ToUpper(tr("sary_chelek")), strings.TrimRight(b.String(), "\n"), help))
}
