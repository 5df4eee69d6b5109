package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(dir string, data []byte) error {
	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0600)
}

func TestInitializeConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "en_US", cfg.Locale)
	assert.Equal(t, "subscriptions.yaml", cfg.Data.File)
	assert.Equal(t, 7, cfg.Reminders.LeadDays)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.Model)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SUBSCAN_LOCALE", "fr_FR")
	t.Setenv("SUBSCAN_REMINDERS_LEAD_DAYS", "14")
	t.Setenv("SUBSCAN_AI_ENABLED", "true")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "fr_FR", cfg.Locale)
	assert.Equal(t, 14, cfg.Reminders.LeadDays)
	assert.True(t, cfg.AI.Enabled)
}

func TestInitializeConfigGeminiKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestInitializeConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	configYAML := []byte("locale: de_DE\nreminders:\n  lead_days: 3\n")
	require.NoError(t, writeConfigFile(dir, configYAML))

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "de_DE", cfg.Locale)
	assert.Equal(t, 3, cfg.Reminders.LeadDays)
	// Values absent from the file keep their defaults.
	assert.Equal(t, "subscriptions.yaml", cfg.Data.File)
}

func TestConfigureLogging(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingInvalidLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("LOG_FORMAT", "")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestGetGeminiAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "abc123")
	assert.Equal(t, "abc123", GetGeminiAPIKey())

	t.Setenv("GEMINI_API_KEY", "")
	assert.Equal(t, "", GetGeminiAPIKey())
}
