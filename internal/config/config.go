// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the kiosk.
// It aggregates all sub-configurations and is populated by merging values
// from command-line flags, environment variables, an optional JSON file and
// built-in defaults, in that order of precedence.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the fallback locale and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local slot storage backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Gate holds the pacing durations of the registration gate.
	Gate Gate `envPrefix:"GATE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DefaultLanguage is the locale code used before any visitor has
	// picked a language (e.g. "en", "kg", "ru").
	// Env: APP_DEFAULT_LANGUAGE
	DefaultLanguage string `env:"DEFAULT_LANGUAGE"`

	// MusicAutoplay starts the background-music toggle in the "on"
	// position on first run.
	// Env: APP_MUSIC_AUTOPLAY
	MusicAutoplay bool `env:"MUSIC_AUTOPLAY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the slot database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local slot database.
type DB struct {
	// DSN is the sqlite file path of the slot storage. The special values
	// ":memory:" and "" select a volatile in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Gate holds the cosmetic pacing of the registration gate. None of these
// delays hide real I/O; they exist so screen transitions read as deliberate
// instead of instantaneous.
type Gate struct {
	// LanguagePickDelay is the pause between picking a language and
	// showing the credential form.
	// Env: GATE_LANGUAGE_PICK_DELAY
	LanguagePickDelay time.Duration `env:"LANGUAGE_PICK_DELAY"`

	// SubmitDelay is the simulated processing time after submitting the
	// credential form, before the outcome is resolved.
	// Env: GATE_SUBMIT_DELAY
	SubmitDelay time.Duration `env:"SUBMIT_DELAY"`

	// SignInCompleteDelay and SignUpCompleteDelay are how long the success
	// message stays on screen before the gate hands over to the showcase.
	// Env: GATE_SIGNIN_COMPLETE_DELAY / GATE_SIGNUP_COMPLETE_DELAY
	SignInCompleteDelay time.Duration `env:"SIGNIN_COMPLETE_DELAY"`
	SignUpCompleteDelay time.Duration `env:"SIGNUP_COMPLETE_DELAY"`

	// MessageTTL is how long transient success messages live before
	// auto-expiring.
	// Env: GATE_MESSAGE_TTL
	MessageTTL time.Duration `env:"MESSAGE_TTL"`
}

// GetStructuredConfig loads and merges configuration from every source.
// Precedence, highest first: flags, environment, JSON file, defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building structured config: %w", err)
	}

	return cfg, nil
}
