package inputs

import (
	"os"
	"strings"
)

// Source provides read access to named string inputs. An empty string means
// the input is absent.
type Source interface {
	Get(name string) string
}

// EnvSource reads inputs from INPUT_* environment variables, the convention
// CI runners use to pass step parameters. A hyphenated name like "avatar-url"
// resolves to INPUT_AVATAR-URL first, then INPUT_AVATAR_URL.
type EnvSource struct {
	lookup func(key string) (string, bool)
}

// NewEnvSource creates an EnvSource backed by the process environment
func NewEnvSource() *EnvSource {
	return &EnvSource{lookup: os.LookupEnv}
}

// Get returns the trimmed value of the named input, or empty when unset
func (s *EnvSource) Get(name string) string {
	upper := strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	if value, ok := s.lookup("INPUT_" + upper); ok {
		return strings.TrimSpace(value)
	}
	if value, ok := s.lookup("INPUT_" + strings.ReplaceAll(upper, "-", "_")); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

// MapSource serves inputs from an in-memory map
type MapSource map[string]string

// Get returns the value for name, or empty when absent
func (s MapSource) Get(name string) string {
	return s[name]
}

// Overlay chains sources: Get returns the first non-empty value in order
type Overlay []Source

// NewOverlay creates an overlay from highest to lowest priority
func NewOverlay(sources ...Source) Overlay {
	return Overlay(sources)
}

// Get returns the first non-empty value among the chained sources
func (o Overlay) Get(name string) string {
	for _, src := range o {
		if value := src.Get(name); value != "" {
			return value
		}
	}
	return ""
}
