package logger

import (
	"github.com/O-Mutt/discord-webhook/internal/config"
	"github.com/rs/zerolog"
)

// New creates a zerolog logger from application config
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
