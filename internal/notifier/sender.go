package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/O-Mutt/discord-webhook/internal/errorwrapper"
	"github.com/O-Mutt/discord-webhook/internal/payload"
	"github.com/rs/zerolog"
)

const (
	// payloadJSONField is the multipart field carrying the serialized payload
	payloadJSONField = "payload_json"
	// uploadFileField is the multipart field carrying the file attachment
	uploadFileField = "upload-file"
	// threadQueryParam routes the message into a thread when set
	threadQueryParam = "thread_id"
)

// Delivery carries the transport inputs for one webhook send.
type Delivery struct {
	WebhookURL string // Destination webhook URL (required)
	ThreadID   string // Optional thread id, appended as a query parameter
	FilePath   string // Optional file attachment, switches to multipart upload
}

// WebhookNotifier delivers message payloads to a Discord webhook.
type WebhookNotifier struct {
	logger     zerolog.Logger
	httpClient *http.Client
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(logger zerolog.Logger, httpClient *http.Client) *WebhookNotifier {
	moduleLogger := logger.With().Str("module", "WebhookNotifier").Logger()

	if httpClient == nil {
		moduleLogger.Warn().Msg("HTTP client is nil, using default HTTP client with 20s timeout.")
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}

	return &WebhookNotifier{
		logger:     moduleLogger,
		httpClient: httpClient,
	}
}

// Send delivers the payload, as a multipart upload when a file attachment is
// given and as a plain JSON POST otherwise. A remote response with status 400
// or above is logged as an error but is not returned as one: the run's exit
// status reflects construction and transport failures only.
func (wn *WebhookNotifier) Send(ctx context.Context, delivery Delivery, p *payload.MessagePayload) error {
	if delivery.WebhookURL == "" {
		return errorwrapper.NewValidationError("webhook-url", delivery.WebhookURL, "webhook URL is required")
	}

	targetURL, err := wn.resolveTargetURL(delivery)
	if err != nil {
		return err
	}

	payloadJSON, err := json.Marshal(p)
	if err != nil {
		wn.logger.Error().Err(err).Msg("Failed to marshal payload to JSON")
		return errorwrapper.WrapError(err, "failed to marshal payload")
	}

	var req *http.Request
	if delivery.FilePath != "" {
		req, err = wn.newMultipartRequest(ctx, targetURL, payloadJSON, delivery.FilePath)
	} else {
		req, err = wn.newJSONRequest(ctx, targetURL, payloadJSON)
	}
	if err != nil {
		return err
	}

	resp, err := wn.httpClient.Do(req)
	if err != nil {
		wn.logger.Error().Err(err).Str("webhook_url", delivery.WebhookURL).Msg("Failed to send webhook notification")
		return errorwrapper.NewNetworkError(delivery.WebhookURL, "webhook request failed", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		httpErr := errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, string(respBody), delivery.WebhookURL)
		wn.logger.Error().
			Err(httpErr).
			Int("status_code", resp.StatusCode).
			Str("response_body", string(respBody)).
			Msg("Webhook rejected by remote service")
		return nil
	}

	wn.logger.Info().
		Int("status_code", resp.StatusCode).
		Str("response_body", string(respBody)).
		Msg("Webhook notification sent successfully")
	return nil
}

// resolveTargetURL validates the webhook URL and appends the thread id query
// parameter when one is supplied
func (wn *WebhookNotifier) resolveTargetURL(delivery Delivery) (string, error) {
	parsed, err := url.ParseRequestURI(delivery.WebhookURL)
	if err != nil {
		wn.logger.Error().Err(err).Str("url", delivery.WebhookURL).Msg("Invalid webhook URL provided")
		return "", errorwrapper.NewValidationError("webhook-url", delivery.WebhookURL, "not a valid URL")
	}

	if delivery.ThreadID != "" {
		query := parsed.Query()
		query.Set(threadQueryParam, delivery.ThreadID)
		parsed.RawQuery = query.Encode()
	}

	return parsed.String(), nil
}

// newJSONRequest builds a plain JSON POST request
func (wn *WebhookNotifier) newJSONRequest(ctx context.Context, targetURL string, payloadJSON []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(payloadJSON))
	if err != nil {
		wn.logger.Error().Err(err).Msg("Failed to create webhook HTTP request")
		return nil, errorwrapper.WrapError(err, "failed to create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// newMultipartRequest builds a multipart POST pairing the file stream with
// the serialized payload
func (wn *WebhookNotifier) newMultipartRequest(ctx context.Context, targetURL string, payloadJSON []byte, filePath string) (*http.Request, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		wn.logger.Error().Err(err).Str("file_path", filePath).Msg("Failed to read file for attachment")
		return nil, errorwrapper.WrapError(err, "failed to read attachment file")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField(payloadJSONField, string(payloadJSON)); err != nil {
		wn.logger.Error().Err(err).Msg("Failed to write payload_json field to multipart writer")
		return nil, errorwrapper.WrapError(err, "failed to write payload_json to multipart")
	}

	part, err := writer.CreateFormFile(uploadFileField, filepath.Base(filePath))
	if err != nil {
		wn.logger.Error().Err(err).Msg("Failed to create form file for attachment")
		return nil, errorwrapper.WrapError(err, "failed to create form file")
	}
	if _, err := io.Copy(part, bytes.NewReader(fileData)); err != nil {
		wn.logger.Error().Err(err).Msg("Failed to copy file data to multipart form")
		return nil, errorwrapper.WrapError(err, "failed to copy file data to form")
	}

	if err := writer.Close(); err != nil {
		wn.logger.Error().Err(err).Msg("Failed to close multipart writer")
		return nil, errorwrapper.WrapError(err, "failed to close multipart writer")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, body)
	if err != nil {
		wn.logger.Error().Err(err).Msg("Failed to create webhook HTTP request with attachment")
		return nil, errorwrapper.WrapError(err, "failed to create webhook request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req, nil
}
