package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ValidateConfig performs validation on the Config structure.
func ValidateConfig(cfg *Config) error {
	validate := validator.New()

	// Register custom validation for log levels
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := fl.Field().String()
		if level == "" {
			return true
		}
		_, err := zerolog.ParseLevel(strings.ToLower(level))
		return err == nil
	})

	// Register custom validation for log formats
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "json", "console", "text":
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errs, ok := err.(validator.ValidationErrors); ok {
			validationErrors = errs
		} else {
			return fmt.Errorf("config validation failed: %w", err)
		}

		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("field '%s' failed on '%s' rule", fieldErr.Namespace(), fieldErr.Tag()))
		}
		return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
	}

	return nil
}
