package config

// WebhookConfig defines defaults for webhook delivery. Discrete inputs
// override these values at runtime.
type WebhookConfig struct {
	WebhookURL string `json:"webhook_url,omitempty" yaml:"webhook_url,omitempty" validate:"omitempty,url"`
	Username   string `json:"username,omitempty" yaml:"username,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty" validate:"omitempty,url"`
}

// NewDefaultWebhookConfig creates default webhook configuration
func NewDefaultWebhookConfig() WebhookConfig {
	return WebhookConfig{
		WebhookURL: "",
		Username:   "",
		AvatarURL:  "",
	}
}
