package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truepedia.io/truepedia/internal/config"
)

func newTestClient(t *testing.T, apiKey string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.TranslateConfig{
		Endpoint:      srv.URL + "/translate",
		APIKey:        apiKey,
		Timeout:       5 * time.Second,
		RatePerSecond: 100,
		Burst:         10,
	})
}

func TestClientTranslate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Hello world", req["q"])
		assert.Equal(t, "en", req["source"])
		assert.Equal(t, "de", req["target"])
		assert.Equal(t, "text", req["format"])
		_, hasKey := req["api_key"]
		assert.False(t, hasKey, "api_key must be omitted when unset")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"translatedText":"Hallo Welt"}`))
	})

	got, err := client.Translate(context.Background(), "Hello world", "en", "de")
	require.NoError(t, err)
	assert.Equal(t, "Hallo Welt", got)
}

func TestClientTranslateSendsAPIKey(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "secret-key", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "secret-key", req["api_key"])
		_, _ = w.Write([]byte(`{"translatedText":"ok"}`))
	})

	_, err := client.Translate(context.Background(), "Hello", "en", "de")
	require.NoError(t, err)
}

func TestClientTranslateProviderErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"slowdown"}`))
	})

	_, err := client.Translate(context.Background(), "Hello", "en", "de")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClientTranslateCancelledContext(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"translatedText":"ok"}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Translate(ctx, "Hello", "en", "de")
	assert.ErrorIs(t, err, context.Canceled)
}
