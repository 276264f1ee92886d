package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/O-Mutt/discord-webhook/internal/errorwrapper"
	"gopkg.in/yaml.v3"
)

// Config contains all configuration sections for the application
type Config struct {
	LogConfig     LogConfig     `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	WebhookConfig WebhookConfig `json:"webhook_config,omitempty" yaml:"webhook_config,omitempty"`
}

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		LogConfig:     NewDefaultLogConfig(),
		WebhookConfig: NewDefaultWebhookConfig(),
	}
}

// LoadConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both
// JSON and YAML formats. A missing config file is not an error: defaults are
// returned and discrete inputs carry the run.
func LoadConfig(providedPath string) (*Config, error) {
	cfg := NewDefaultConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	if !fileExists(filePath) {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "config file does not exist")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "config validation failed")
	}

	return cfg, nil
}

// parseConfigContent unmarshals config data based on the file extension.
// YAML is preferred if the extension is .yaml or .yml.
func parseConfigContent(data []byte, filePath string, cfg *Config) error {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".json":
		return json.Unmarshal(data, cfg)
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, cfg); err == nil {
			return nil
		}
		return json.Unmarshal(data, cfg)
	}
}
