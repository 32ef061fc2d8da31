package service

import (
	"github.com/sarychelek/kiosk/internal/config"
	"github.com/sarychelek/kiosk/internal/logger"
	"github.com/sarychelek/kiosk/internal/store"
	"github.com/sarychelek/kiosk/models"
)

// Services groups the kiosk's business services into a single value passed
// to the UI layer.
type Services struct {
	// Auth registers visitors and checks their credentials.
	Auth *AuthService

	// Session tracks who is currently signed in.
	Session *SessionService

	// Prefs manages the language preference and the small UI flags.
	Prefs *PreferenceService
}

// NewServices wires the service layer on top of the storage layer.
func NewServices(storages *store.Storages, cfg config.KioskApp, log *logger.Logger) *Services {
	log.Debug().Msg("creating services")

	return &Services{
		Auth:    NewAuthService(storages.Users, log),
		Session: NewSessionService(storages.KV, log),
		Prefs:   NewPreferenceService(storages.KV, models.Language(cfg.DefaultLanguage), cfg.MusicAutoplay, log),
	}
}
