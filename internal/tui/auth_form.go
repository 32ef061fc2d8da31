// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sarychelek/kiosk/internal/config"
	"github.com/sarychelek/kiosk/internal/i18n"
	"github.com/sarychelek/kiosk/internal/service"
	"github.com/sarychelek/kiosk/internal/store"
	"github.com/sarychelek/kiosk/internal/validators"
	"github.com/sarychelek/kiosk/models"
)

const (
	iName = iota
	iEmail
	iPassword
	iConfirm
)

// AuthFormModel is the second step of the gate: one credential card with a
// sign-in and a sign-up tab over the same inputs. Submitting runs the pure
// validators first; only a clean form reaches the credential store, after a
// short simulated processing pause. Store-level failures (duplicate email,
// unknown account, wrong password) surface as a single global message,
// validation problems per field.
type AuthFormModel struct {
	auth    *service.AuthService
	session *service.SessionService
	prefs   *service.PreferenceService
	pacing  config.KioskGate

	mode       validators.Mode
	inputs     []textinput.Model
	focus      int
	remember   bool
	submitting bool
	succeeded  bool

	fieldErrs  validators.FieldErrors
	globalKey  string
	successKey string

	pending     validators.CredentialForm
	pendingUser models.User
}

// NewAuthFormModel creates the credential card with four pre-configured
// inputs; the password pair uses masked echo.
func NewAuthFormModel(auth *service.AuthService, session *service.SessionService, prefs *service.PreferenceService, pacing config.KioskGate) *AuthFormModel {
	inputs := make([]textinput.Model, 4)

	inputs[iName] = textinput.New()
	inputs[iName].CharLimit = 64
	inputs[iName].Width = 40

	inputs[iEmail] = textinput.New()
	inputs[iEmail].CharLimit = 64
	inputs[iEmail].Width = 40

	inputs[iPassword] = textinput.New()
	inputs[iPassword].CharLimit = 256
	inputs[iPassword].Width = 40
	inputs[iPassword].EchoMode = textinput.EchoPassword
	inputs[iPassword].EchoCharacter = '*'

	inputs[iConfirm] = textinput.New()
	inputs[iConfirm].CharLimit = 256
	inputs[iConfirm].Width = 40
	inputs[iConfirm].EchoMode = textinput.EchoPassword
	inputs[iConfirm].EchoCharacter = '*'

	return &AuthFormModel{
		auth:    auth,
		session: session,
		prefs:   prefs,
		pacing:  pacing,
		mode:    validators.SignUp,
		inputs:  inputs,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *AuthFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// visible returns the input indexes shown in the current mode, in focus
// order.
func (m *AuthFormModel) visible() []int {
	if m.mode == validators.SignIn {
		return []int{iEmail, iPassword}
	}
	return []int{iName, iEmail, iPassword, iConfirm}
}

// Update implements [tea.Model]. Handled messages:
//   - [authOpenMsg]     — (re)opens the card in the requested mode and
//     pre-fills a remembered email.
//   - [submitTimerMsg]  — the simulated processing pause elapsed; runs the
//     actual register/sign-in against the store.
//   - [authOutcomeMsg]  — resolves the attempt: error message or success
//     pause followed by [GateDone].
//   - esc               — back to the language step.
//   - tab / shift+tab   — moves focus across the visible inputs.
//   - ctrl+t            — toggles sign-in/sign-up: keeps the email, clears
//     the passwords, the name and every error.
//   - ctrl+r            — toggles "remember email" (sign-in only).
//   - ctrl+l            — flips the card language between kg and ru.
//   - enter             — validates and, if clean, starts the submit pause.
//
// All other messages are forwarded to the focused input widget.
func (m *AuthFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authOpenMsg:
		m.open(msg.mode)
		return m, textinput.Blink

	case submitTimerMsg:
		if !m.submitting || m.succeeded {
			return m, nil
		}
		return m, m.cmdAuthenticate()

	case authOutcomeMsg:
		if msg.err != nil {
			m.submitting = false
			m.globalKey = outcomeMessageKey(msg.err)
			return m, nil
		}

		m.succeeded = true
		m.pendingUser = msg.user
		if m.mode == validators.SignIn {
			m.successKey = "success_signin"
		} else {
			m.successKey = "success_signup"
		}

		complete := m.pacing.SignUpCompleteDelay
		if m.mode == validators.SignIn {
			complete = m.pacing.SignInCompleteDelay
		}
		return m, tea.Batch(
			tea.Tick(complete, func(time.Time) tea.Msg { return completeTimerMsg{} }),
			tea.Tick(m.pacing.MessageTTL, func(time.Time) tea.Msg { return clearMessageMsg{} }),
		)

	case completeTimerMsg:
		if !m.succeeded {
			return m, nil
		}
		user := m.pendingUser
		return m, func() tea.Msg { return GateDone{User: user} }

	case clearMessageMsg:
		m.successKey = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			if m.succeeded {
				return m, nil
			}
			m.submitting = false
			m.clearMessages()
			return m, func() tea.Msg { return NavigateTo{Page: "language"} }

		case "tab":
			m.focusNext()
			return m, nil

		case "shift+tab":
			m.focusPrev()
			return m, nil

		case "ctrl+t":
			if m.submitting {
				return m, nil
			}
			m.toggleMode()
			return m, nil

		case "ctrl+r":
			if m.mode == validators.SignIn {
				m.remember = !m.remember
			}
			return m, nil

		case "ctrl+l":
			m.prefs.SetLanguage(m.prefs.Language().Other())
			return m, nil

		case "enter":
			if m.submitting {
				return m, nil
			}
			return m, m.submit()
		}
	}

	visible := m.visible()
	idx := visible[m.focus]
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

// open resets the card for a fresh visit in the given mode, pre-filling a
// remembered email when one was stored.
func (m *AuthFormModel) open(mode validators.Mode) {
	m.mode = mode
	m.submitting = false
	m.succeeded = false
	m.clearMessages()

	m.inputs[iName].SetValue("")
	m.inputs[iPassword].SetValue("")
	m.inputs[iConfirm].SetValue("")

	if email, ok := m.session.RememberedEmail(); ok && m.inputs[iEmail].Value() == "" {
		m.inputs[iEmail].SetValue(email)
		m.remember = true
	}

	m.setFocus(0)
}

// toggleMode switches the sub-mode. The email survives; the name, both
// password fields and every pending message are cleared, and the validated
// field set changes with the mode.
func (m *AuthFormModel) toggleMode() {
	if m.mode == validators.SignIn {
		m.mode = validators.SignUp
	} else {
		m.mode = validators.SignIn
	}

	m.inputs[iName].SetValue("")
	m.inputs[iPassword].SetValue("")
	m.inputs[iConfirm].SetValue("")
	m.clearMessages()
	m.setFocus(0)
}

func (m *AuthFormModel) clearMessages() {
	m.fieldErrs = nil
	m.globalKey = ""
	m.successKey = ""
}

func (m *AuthFormModel) submit() tea.Cmd {
	form := validators.CredentialForm{
		Name:            m.inputs[iName].Value(),
		Email:           strings.TrimSpace(m.inputs[iEmail].Value()),
		Password:        m.inputs[iPassword].Value(),
		ConfirmPassword: m.inputs[iConfirm].Value(),
	}

	if errs := validators.ValidateCredentials(form, m.mode); len(errs) > 0 {
		m.fieldErrs = errs
		m.globalKey = "error_fix_fields"
		return nil
	}

	m.clearMessages()
	m.submitting = true
	m.pending = form
	return tea.Tick(m.pacing.SubmitDelay, func(time.Time) tea.Msg { return submitTimerMsg{} })
}

func (m *AuthFormModel) cmdAuthenticate() tea.Cmd {
	form := m.pending
	mode := m.mode
	remember := m.remember
	auth, session, prefs := m.auth, m.session, m.prefs

	return func() tea.Msg {
		if mode == validators.SignIn {
			user, err := auth.SignIn(form.Email, form.Password)
			if err != nil {
				return authOutcomeMsg{err: err}
			}
			session.Login(user, remember)
			return authOutcomeMsg{user: user}
		}

		user, err := auth.Register(models.User{
			Name:     strings.TrimSpace(form.Name),
			Email:    form.Email,
			Password: form.Password,
			Language: prefs.Language(),
		})
		if err != nil {
			return authOutcomeMsg{err: err}
		}
		session.Login(user, remember)
		return authOutcomeMsg{user: user}
	}
}

// outcomeMessageKey maps a store-level failure to its localization key.
// The two sign-in failures stay distinguishable on purpose.
func outcomeMessageKey(err error) string {
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return "error_account_not_found"
	case errors.Is(err, store.ErrWrongPassword):
		return "error_wrong_password"
	case errors.Is(err, store.ErrEmailAlreadyRegistered):
		return "error_email_registered"
	default:
		return err.Error()
	}
}

func (m *AuthFormModel) focusNext() {
	visible := m.visible()
	m.inputs[visible[m.focus]].Blur()
	m.focus = (m.focus + 1) % len(visible)
	m.inputs[visible[m.focus]].Focus()
}

func (m *AuthFormModel) focusPrev() {
	visible := m.visible()
	m.inputs[visible[m.focus]].Blur()
	m.focus = (m.focus - 1 + len(visible)) % len(visible)
	m.inputs[visible[m.focus]].Focus()
}

func (m *AuthFormModel) setFocus(pos int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	visible := m.visible()
	if pos >= len(visible) {
		pos = 0
	}
	m.focus = pos
	m.inputs[visible[pos]].Focus()
}

// View implements [tea.Model]. Renders the tab pair, the visible inputs as
// a two-column table with per-field errors, the cosmetic strength meter and
// the global outcome message, all in the active language.
func (m *AuthFormModel) View() string {
	lang := m.prefs.Language()
	tr := func(key string) string { return i18n.Lookup(lang, key) }

	var b strings.Builder

	signIn := tr("signin_tab")
	signUp := tr("signup_tab")
	if m.mode == validators.SignIn {
		b.WriteString(activeTab.Render(signIn) + "  " + inactiveTab.Render(signUp))
		b.WriteString("\n" + helpStyle.Render(tr("signin_subtitle")))
	} else {
		b.WriteString(inactiveTab.Render(signIn) + "  " + activeTab.Render(signUp))
		b.WriteString("\n" + helpStyle.Render(tr("signup_subtitle")))
	}
	b.WriteString("\n\n")

	if m.mode == validators.SignUp {
		m.renderField(&b, tr, "label_name", iName, validators.FieldName)
	}
	m.renderField(&b, tr, "label_email", iEmail, validators.FieldEmail)
	m.renderField(&b, tr, "label_password", iPassword, validators.FieldPassword)
	m.renderStrength(&b, tr)
	if m.mode == validators.SignUp {
		m.renderField(&b, tr, "label_confirm", iConfirm, validators.FieldConfirmPassword)
	}

	if m.mode == validators.SignIn {
		mark := "[ ]"
		if m.remember {
			mark = "[x]"
		}
		b.WriteString("\n" + mark + " " + tr("remember_email") + " (ctrl+r)\n")
	}

	submitKey := "submit_signup"
	submittingKey := "submitting_signup"
	if m.mode == validators.SignIn {
		submitKey = "submit_signin"
		submittingKey = "submitting_signin"
	}
	if m.submitting {
		b.WriteString("\n[" + tr(submittingKey) + "]\n")
	} else {
		b.WriteString("\n[" + tr(submitKey) + "]\n")
	}

	if m.successKey != "" {
		b.WriteString("\n" + successStyle.Render("✓ "+tr(m.successKey)) + "\n")
	} else if m.globalKey != "" {
		b.WriteString("\n" + errorStyle.Render("✗ "+tr(m.globalKey)) + "\n")
	}

	title := strings.ToUpper(tr("signup_tab"))
	if m.mode == validators.SignIn {
		title = strings.ToUpper(tr("signin_tab"))
	}

	help := "esc: " + tr("back") + " │ tab │ ctrl+t: " + signIn + "/" + signUp + " │ ctrl+l: KG/RU │ enter"
	return renderPage(title, strings.TrimRight(b.String(), "\n"), help)
}

func (m *AuthFormModel) renderField(b *strings.Builder, tr func(string) string, labelKey string, input int, field string) {
	b.WriteString(tr(labelKey) + "\n")
	b.WriteString("[" + m.inputs[input].View() + "]\n")
	if msgKey, ok := m.fieldErrs[field]; ok {
		b.WriteString(errorStyle.Render("✗ "+tr(msgKey)) + "\n")
	}
}

// renderStrength draws the cosmetic password meter. Hidden while the
// password is empty or already flagged by validation.
func (m *AuthFormModel) renderStrength(b *strings.Builder, tr func(string) string) {
	password := m.inputs[iPassword].Value()
	if password == "" {
		return
	}
	if _, flagged := m.fieldErrs[validators.FieldPassword]; flagged {
		return
	}

	strength := validators.PasswordStrength(password)
	label := 1
	if strength > 1 {
		label = strength
	}

	color := strengthColors[label-1]
	bar := strings.Repeat("█", strength*2) + strings.Repeat("░", (4-strength)*2)
	b.WriteString(lipgloss.NewStyle().Foreground(color).Render(bar))
	b.WriteString(" " + tr("strength_"+strconv.Itoa(label)) + "\n")
}
