package config

// Default values for configuration sections
const (
	DefaultLogFile       = ""
	DefaultLogFormat     = "console"
	DefaultLogLevel      = "info"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 100
)

// ConfigPathEnvVar overrides the config file search when set
const ConfigPathEnvVar = "DISCORD_WEBHOOK_CONFIG_PATH"
