package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHTTPClientConfig(t *testing.T) {
	cfg := DefaultHTTPClientConfig()

	assert.Equal(t, 20*time.Second, cfg.Timeout)
	assert.True(t, cfg.EnableHTTP2)
	assert.Equal(t, "discord-webhook", cfg.UserAgent)
}

func TestNewHTTPClient_AppliesTimeout(t *testing.T) {
	cfg := DefaultHTTPClientConfig()
	cfg.Timeout = 5 * time.Second

	client := NewHTTPClient(cfg, zerolog.Nop())

	require.NotNil(t, client)
	assert.Equal(t, 5*time.Second, client.Timeout)
}

func TestNewHTTPClient_SetsDefaultUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := NewHTTPClient(DefaultHTTPClientConfig(), zerolog.Nop())
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "discord-webhook", gotAgent)
}

func TestNewHTTPClient_KeepsExplicitUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := NewHTTPClient(DefaultHTTPClientConfig(), zerolog.Nop())
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom-agent/1.0")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "custom-agent/1.0", gotAgent)
}

func TestNewHTTPClient_WithoutUserAgentUsesBareTransport(t *testing.T) {
	cfg := DefaultHTTPClientConfig()
	cfg.UserAgent = ""

	client := NewHTTPClient(cfg, zerolog.Nop())

	_, wrapped := client.Transport.(*userAgentTransport)
	assert.False(t, wrapped)
}
