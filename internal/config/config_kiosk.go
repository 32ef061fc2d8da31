package config

import (
	"fmt"
	"time"
)

// KioskApp holds application-level kiosk settings derived from the shared
// structured config.
type KioskApp struct {
	// DefaultLanguage is the fallback locale code.
	DefaultLanguage string
	// MusicAutoplay starts the music toggle in the "on" position.
	MusicAutoplay bool
	// Version is the application version string.
	Version string
}

// KioskDB contains local slot database settings for the kiosk.
type KioskDB struct {
	// DSN is the sqlite file path (or ":memory:") of the slot storage.
	DSN string
}

// KioskStorage groups kiosk storage backend settings.
type KioskStorage struct {
	// DB holds local database settings.
	DB KioskDB
}

// KioskGate groups the registration-gate pacing settings.
type KioskGate struct {
	LanguagePickDelay   time.Duration
	SubmitDelay         time.Duration
	SignInCompleteDelay time.Duration
	SignUpCompleteDelay time.Duration
	MessageTTL          time.Duration
}

// KioskConfig is the top-level kiosk configuration assembled from
// [StructuredConfig].
type KioskConfig struct {
	// App contains application-level kiosk settings.
	App KioskApp
	// Storage contains kiosk storage settings.
	Storage KioskStorage
	// Gate contains gate pacing settings.
	Gate KioskGate
}

// GetKioskConfig builds and validates the kiosk config view from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the kiosk runtime, and validates the resulting [KioskConfig].
func GetKioskConfig() (*KioskConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	kioskCfg := &KioskConfig{
		App: KioskApp{
			DefaultLanguage: cfg.App.DefaultLanguage,
			MusicAutoplay:   cfg.App.MusicAutoplay,
			Version:         cfg.App.Version,
		},
		Storage: KioskStorage{
			DB: KioskDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Gate: KioskGate{
			LanguagePickDelay:   cfg.Gate.LanguagePickDelay,
			SubmitDelay:         cfg.Gate.SubmitDelay,
			SignInCompleteDelay: cfg.Gate.SignInCompleteDelay,
			SignUpCompleteDelay: cfg.Gate.SignUpCompleteDelay,
			MessageTTL:          cfg.Gate.MessageTTL,
		},
	}

	return kioskCfg, kioskCfg.validate()
}

func (cfg *KioskConfig) validate() error {
	switch cfg.App.DefaultLanguage {
	case "en", "kg", "ru":
	default:
		return ErrInvalidAppConfigs
	}

	if cfg.Gate.SubmitDelay <= 0 || cfg.Gate.MessageTTL <= 0 ||
		cfg.Gate.LanguagePickDelay <= 0 ||
		cfg.Gate.SignInCompleteDelay <= 0 || cfg.Gate.SignUpCompleteDelay <= 0 {
		return ErrInvalidGateConfigs
	}

	return nil
}
