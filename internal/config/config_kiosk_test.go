package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validKioskConfig() *KioskConfig {
	return &KioskConfig{
		App: KioskApp{DefaultLanguage: "en"},
		Gate: KioskGate{
			LanguagePickDelay:   600 * time.Millisecond,
			SubmitDelay:         900 * time.Millisecond,
			SignInCompleteDelay: 1200 * time.Millisecond,
			SignUpCompleteDelay: 2 * time.Second,
			MessageTTL:          2 * time.Second,
		},
	}
}

func TestKioskConfigValidate(t *testing.T) {
	require.NoError(t, validKioskConfig().validate())

	tests := []struct {
		name    string
		mutate  func(*KioskConfig)
		wantErr error
	}{
		{"unknown language", func(c *KioskConfig) { c.App.DefaultLanguage = "de" }, ErrInvalidAppConfigs},
		{"empty language", func(c *KioskConfig) { c.App.DefaultLanguage = "" }, ErrInvalidAppConfigs},
		{"zero submit delay", func(c *KioskConfig) { c.Gate.SubmitDelay = 0 }, ErrInvalidGateConfigs},
		{"negative ttl", func(c *KioskConfig) { c.Gate.MessageTTL = -time.Second }, ErrInvalidGateConfigs},
		{"zero pick delay", func(c *KioskConfig) { c.Gate.LanguagePickDelay = 0 }, ErrInvalidGateConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validKioskConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}
