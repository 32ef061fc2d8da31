package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sarychelek/kiosk/internal/config"
	"github.com/sarychelek/kiosk/internal/logger"
	"github.com/sarychelek/kiosk/internal/service"
	"github.com/sarychelek/kiosk/internal/validators"
	"github.com/sarychelek/kiosk/models"
)

var ErrUserQuit = errors.New("киоск закрыт пользователем")

type TUI struct {
	services *service.Services
	gate     config.KioskGate
	logger   *logger.Logger
}

func New(services *service.Services, gate config.KioskGate, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, gate: gate, logger: log}, nil
}

// GateFlow runs the registration gate program until a visitor is signed in.
// The language step is skipped when a language was already chosen on a
// previous visit. Closing the program returns [ErrUserQuit].
func (t *TUI) GateFlow(ctx context.Context) (models.User, error) {
	authModel := NewAuthFormModel(t.services.Auth, t.services.Session, t.services.Prefs, t.gate)
	pages := map[string]tea.Model{
		"language": NewLanguageSelectModel(t.services.Auth, t.services.Prefs, t.gate.LanguagePickDelay),
		"auth":     authModel,
	}

	start := "language"
	if t.services.Prefs.HasLanguage() {
		// A returning visitor skips the language step; open the card
		// directly, sign-in when anyone is registered on this kiosk.
		start = "auth"
		mode := validators.SignUp
		if t.services.Auth.HasAccounts() {
			mode = validators.SignIn
		}
		authModel.open(mode)
	}

	root := NewRootModel(pages, start)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.resultUser == nil {
		return models.User{}, ErrUserQuit
	}

	return *result.resultUser, nil
}

// ShowcaseLoop runs the signed-in browsing program. It reports logout=true
// when the visitor signed out, false when they merely closed the kiosk.
func (t *TUI) ShowcaseLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := NewShowcaseModel(t.services.Session, t.services.Prefs, t.gate.MessageTTL, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(*ShowcaseModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.LoggedOut, nil
}
