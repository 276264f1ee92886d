package notifier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/O-Mutt/discord-webhook/internal/errorwrapper"
	"github.com/O-Mutt/discord-webhook/internal/payload"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method      string
	contentType string
	query       string
	body        []byte
	payloadJSON string
	fileField   string
	fileName    string
	fileContent []byte
}

func newCaptureServer(t *testing.T, status int) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.contentType = r.Header.Get("Content-Type")
		captured.query = r.URL.RawQuery

		if strings.HasPrefix(captured.contentType, "multipart/") {
			if err := r.ParseMultipartForm(16 << 20); err != nil {
				t.Errorf("failed to parse multipart form: %v", err)
				w.WriteHeader(status)
				return
			}
			captured.payloadJSON = r.FormValue("payload_json")
			for field, headers := range r.MultipartForm.File {
				captured.fileField = field
				captured.fileName = headers[0].Filename
				file, err := headers[0].Open()
				if err != nil {
					t.Errorf("failed to open multipart file: %v", err)
					continue
				}
				captured.fileContent, _ = io.ReadAll(file)
				file.Close()
			}
		} else {
			captured.body, _ = io.ReadAll(r.Body)
		}

		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	return server, captured
}

func simplePayload() *payload.MessagePayload {
	return payload.NewMessagePayloadBuilder().WithContent("hi").Build()
}

func TestSend_JSONPost(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusNoContent)
	wn := NewWebhookNotifier(zerolog.Nop(), server.Client())

	err := wn.Send(context.Background(), Delivery{WebhookURL: server.URL}, simplePayload())

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "application/json", captured.contentType)
	assert.JSONEq(t, `{"content":"hi"}`, string(captured.body))
	assert.Empty(t, captured.query)
}

func TestSend_ThreadIDAppendedAsQueryParam(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusNoContent)
	wn := NewWebhookNotifier(zerolog.Nop(), server.Client())

	err := wn.Send(context.Background(), Delivery{WebhookURL: server.URL, ThreadID: "12345"}, simplePayload())

	require.NoError(t, err)
	assert.Equal(t, "thread_id=12345", captured.query)
}

func TestSend_MultipartUpload(t *testing.T) {
	attachment := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(attachment, []byte("attachment body"), 0644))

	server, captured := newCaptureServer(t, http.StatusOK)
	wn := NewWebhookNotifier(zerolog.Nop(), server.Client())

	err := wn.Send(context.Background(), Delivery{WebhookURL: server.URL, FilePath: attachment}, simplePayload())

	require.NoError(t, err)
	assert.Contains(t, captured.contentType, "multipart/form-data")
	assert.JSONEq(t, `{"content":"hi"}`, captured.payloadJSON)
	assert.Equal(t, "upload-file", captured.fileField)
	assert.Equal(t, "report.txt", captured.fileName)
	assert.Equal(t, []byte("attachment body"), captured.fileContent)
}

func TestSend_MultipartMissingFile(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusOK)
	wn := NewWebhookNotifier(zerolog.Nop(), server.Client())

	err := wn.Send(context.Background(), Delivery{WebhookURL: server.URL, FilePath: "/nonexistent/file.txt"}, simplePayload())

	assert.Error(t, err)
}

func TestSend_RemoteRejectionIsNotAnError(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusBadRequest)
	wn := NewWebhookNotifier(zerolog.Nop(), server.Client())

	err := wn.Send(context.Background(), Delivery{WebhookURL: server.URL}, simplePayload())

	assert.NoError(t, err)
}

func TestSend_MissingWebhookURL(t *testing.T) {
	wn := NewWebhookNotifier(zerolog.Nop(), nil)

	err := wn.Send(context.Background(), Delivery{}, simplePayload())

	require.Error(t, err)
	var validationErr *errorwrapper.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSend_TransportFailure(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusOK)
	client := server.Client()
	url := server.URL
	server.Close()

	wn := NewWebhookNotifier(zerolog.Nop(), client)

	err := wn.Send(context.Background(), Delivery{WebhookURL: url}, simplePayload())

	require.Error(t, err)
	var netErr *errorwrapper.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestSend_RawPayloadForwardedVerbatim(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK)
	wn := NewWebhookNotifier(zerolog.Nop(), server.Client())

	raw := payload.NewRawPayload([]byte(`{"content":"raw override"}`))
	err := wn.Send(context.Background(), Delivery{WebhookURL: server.URL}, raw)

	require.NoError(t, err)
	assert.JSONEq(t, `{"content":"raw override"}`, string(captured.body))
}
