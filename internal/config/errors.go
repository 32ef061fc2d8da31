package config

import "errors"

// Validation errors returned by [KioskConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown default locale code).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidGateConfigs indicates invalid gate pacing settings
	// (for example, a zero or negative delay).
	ErrInvalidGateConfigs = errors.New("invalid gate configuration")
)
