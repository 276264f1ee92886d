package httpclient

import "time"

// HTTPClientConfig holds configuration for the webhook HTTP client
type HTTPClientConfig struct {
	Timeout             time.Duration // Request timeout
	DialTimeout         time.Duration // Connection dial timeout
	KeepAlive           time.Duration // Keep-alive duration
	TLSHandshakeTimeout time.Duration // TLS handshake timeout
	IdleConnTimeout     time.Duration // Idle connection timeout
	MaxIdleConns        int           // Maximum idle connections
	EnableHTTP2         bool          // Enable HTTP/2 support
	UserAgent           string        // User agent set on every request
}

// DefaultHTTPClientConfig returns the default HTTP client configuration
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             20 * time.Second,
		DialTimeout:         10 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        10,
		EnableHTTP2:         true,
		UserAgent:           "discord-webhook",
	}
}
