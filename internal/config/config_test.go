package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogConfig.LogFormat)
	assert.Empty(t, cfg.WebhookConfig.WebhookURL)
}

func TestLoadConfig_NoConfigFile(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.json")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configData := `
webhook_config:
  webhook_url: "https://discord.com/api/webhooks/1/abc"
  username: "ci-bot"
log_config:
  log_level: "debug"
  log_format: "json"
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadConfig(configFile)

	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", cfg.WebhookConfig.WebhookURL)
	assert.Equal(t, "ci-bot", cfg.WebhookConfig.Username)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, "json", cfg.LogConfig.LogFormat)
}

func TestLoadConfig_JSONFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	configData := `{
		"webhook_config": {"webhook_url": "https://discord.com/api/webhooks/1/abc"},
		"log_config": {"log_level": "warn"}
	}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadConfig(configFile)

	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", cfg.WebhookConfig.WebhookURL)
	assert.Equal(t, "warn", cfg.LogConfig.LogLevel)
}

func TestLoadConfig_InvalidWebhookURL(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configData := `
webhook_config:
  webhook_url: "not a url"
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadConfig(configFile)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configData := `
log_config:
  log_level: "chatty"
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadConfig(configFile)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, ValidateConfig(NewDefaultConfig()))
}

func TestGetConfigPath_ExplicitFlagWins(t *testing.T) {
	assert.Equal(t, "/some/path.yaml", GetConfigPath("/some/path.yaml"))
}

func TestGetConfigPath_EnvVar(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/env/config.yaml")

	assert.Equal(t, "/env/config.yaml", GetConfigPath(""))
}
