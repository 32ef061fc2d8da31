package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierConfigWins verifies merge precedence: a field set by an
// earlier (higher-priority) config is not overwritten by a later one.
func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{DefaultLanguage: "ru"}},
		&StructuredConfig{App: App{DefaultLanguage: "en", Version: "1.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.App.DefaultLanguage)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

// TestWithDefaults_FillsOnlyZeroFields verifies that the built-in defaults
// lose to every explicitly configured value.
func TestWithDefaults_FillsOnlyZeroFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:  App{DefaultLanguage: "kg"},
		Gate: Gate{SubmitDelay: 5 * time.Second},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "kg", cfg.App.DefaultLanguage)
	assert.Equal(t, 5*time.Second, cfg.Gate.SubmitDelay)

	// Untouched fields come from the defaults.
	assert.Equal(t, "sary-chelek.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 600*time.Millisecond, cfg.Gate.LanguagePickDelay)
	assert.Equal(t, 1200*time.Millisecond, cfg.Gate.SignInCompleteDelay)
	assert.Equal(t, 2*time.Second, cfg.Gate.SignUpCompleteDelay)
	assert.Equal(t, 2*time.Second, cfg.Gate.MessageTTL)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_DEFAULT_LANGUAGE", "ru")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "ru", b.configs[0].App.DefaultLanguage)
}

// TestWithJSON_UsesPathFromEarlierSource verifies that the JSON file named
// by a previously loaded source is parsed and appended.
func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	body := `{"app": {"default_language": "ru"}, "gate": {"message_ttl": "3s"}}`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.App.DefaultLanguage)
	assert.Equal(t, 3*time.Second, cfg.Gate.MessageTTL)
}

// TestWithJSON_NoPathIsNoop verifies that withJSON without a configured path
// appends nothing and sets no error.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.withJSON()
	assert.Empty(t, b.configs)
	assert.NoError(t, b.err)
}

// TestWithJSON_BadFileSetsError verifies that a broken JSON file surfaces
// at build time.
func TestWithJSON_BadFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "missing.json"})

	cfg, err := b.withJSON().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}
