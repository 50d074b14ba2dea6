package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcarbon/internal/config"
	"smartcarbon/internal/domain"
	"smartcarbon/internal/insight"
	"smartcarbon/internal/insight/openai"
	"smartcarbon/internal/port"
)

func newTestGenerator(serverURL, apiKey string) *openai.Generator {
	return openai.NewGenerator(&config.InsightProviderConfig{
		Provider:    "openai",
		APIKey:      apiKey,
		BaseURL:     serverURL + "/v1",
		TimeoutSecs: 5,
	})
}

func TestGenerate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer session-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini-2024-07-18",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Switch to LED lighting."}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	out, err := newTestGenerator(server.URL, "configured").Generate(context.Background(),
		port.InsightRequest{Prompt: "analyze", APIKey: "session-key"})

	require.NoError(t, err)
	assert.Equal(t, "Switch to LED lighting.", out.Text)
	assert.Equal(t, "gpt-4o-mini-2024-07-18", out.ModelUsed)
}

func TestGenerate_MissingKey(t *testing.T) {
	_, err := newTestGenerator("http://unused", "").Generate(context.Background(), port.InsightRequest{Prompt: "p"})
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestGenerate_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "Rate limit reached", "type": "requests", "code": "rate_limit_exceeded"}}`))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL, "k").Generate(context.Background(), port.InsightRequest{Prompt: "p"})

	var rlErr *insight.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "openai", rlErr.Provider)
}

func TestGenerate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "x", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL, "k").Generate(context.Background(), port.InsightRequest{Prompt: "p"})
	assert.ErrorContains(t, err, "no choices")
}
