// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/sarychelek/kiosk/internal/logger"
	"github.com/sarychelek/kiosk/internal/service"
	"github.com/sarychelek/kiosk/internal/tui"
	"github.com/sarychelek/kiosk/models"
)

// App runs the kiosk end to end: a persisted session goes straight to the
// showcase, everyone else passes the registration gate first. Signing out
// restarts the whole flow from the language step; closing the terminal
// leaves the session in place for the next start.
type App struct {
	services *service.Services
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, log *logger.Logger) *App {
	return &App{services: services, tui: ui, logger: log}
}

// Run blocks until the visitor leaves the kiosk.
func (a *App) Run() error {
	ctx := context.Background()

	var user models.User

	session := a.services.Session.Restore()
	if session.Authenticated {
		user = *session.CurrentUser
		a.logger.Info().Str("email", user.Email).Msg("session restored, skipping gate")
	} else {
		var err error
		user, err = a.tui.GateFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("gate flow: %w", err)
		}
	}

	logout, err := a.tui.ShowcaseLoop(ctx, user)
	if err != nil {
		return fmt.Errorf("showcase loop: %w", err)
	}
	if logout {
		return a.Run()
	}

	return nil
}
