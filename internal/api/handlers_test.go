package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"card_words_ai/internal/ai"
	"card_words_ai/internal/card"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockChatClient struct {
	calls        int
	mockComplete func(ctx context.Context, req ai.ChatRequest) (string, error)
}

func (m *mockChatClient) Complete(ctx context.Context, req ai.ChatRequest) (string, error) {
	m.calls++
	return m.mockComplete(ctx, req)
}

func newTestRouter(client ai.ChatClient, key string) *gin.Engine {
	gen := ai.NewGenerator(client, func() string { return key }, "")
	return NewRouter(RouterConfig{ServiceName: "test", MetricsEnabled: true}, NewAPIHandler(gen))
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGenerate_MissingKey(t *testing.T) {
	client := &mockChatClient{mockComplete: func(context.Context, ai.ChatRequest) (string, error) {
		return "should not happen", nil
	}}
	r := newTestRouter(client, "")

	w := do(r, http.MethodPost, "/api/generate", `{"prompt": "Write a card"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]string{"error": "API key is not configured"}, decode(t, w))
	assert.Equal(t, 0, client.calls)
}

func TestGenerate_MissingKeyBeatsBadBody(t *testing.T) {
	r := newTestRouter(&mockChatClient{}, "")

	w := do(r, http.MethodPost, "/api/generate", `not json`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "API key is not configured", decode(t, w)["error"])
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	client := &mockChatClient{mockComplete: func(context.Context, ai.ChatRequest) (string, error) {
		return "", errors.New("upstream said 401: invalid api key gsk_secret")
	}}
	r := newTestRouter(client, "gsk_secret")

	w := do(r, http.MethodPost, "/api/generate", `{"prompt": "Write a card"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]string{"error": "Failed to generate message"}, decode(t, w))
	assert.NotContains(t, w.Body.String(), "gsk_secret")
	assert.Equal(t, 1, client.calls)
}

func TestGenerate_BadBody(t *testing.T) {
	cases := map[string]string{
		"malformed":      `{"prompt": `,
		"missing prompt": `{}`,
		"empty prompt":   `{"prompt": ""}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client := &mockChatClient{}
			r := newTestRouter(client, "k")

			w := do(r, http.MethodPost, "/api/generate", body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "Failed to generate message", decode(t, w)["error"])
			assert.Equal(t, 0, client.calls)
		})
	}
}

func TestGenerate_Success(t *testing.T) {
	var gotPrompt string
	client := &mockChatClient{mockComplete: func(_ context.Context, req ai.ChatRequest) (string, error) {
		gotPrompt = req.User
		return "Dear Friend, ...", nil
	}}
	r := newTestRouter(client, "k")

	w := do(r, http.MethodPost, "/api/generate", `{"prompt": "Write a Birthday card message for my Friend."}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"message": "Dear Friend, ..."}, decode(t, w))
	assert.Equal(t, "Write a Birthday card message for my Friend.", gotPrompt)
}

func TestGenerate_EmptyContentKeepsMessageField(t *testing.T) {
	client := &mockChatClient{mockComplete: func(context.Context, ai.ChatRequest) (string, error) {
		return "", nil
	}}
	r := newTestRouter(client, "k")

	w := do(r, http.MethodPost, "/api/generate", `{"prompt": "Write a card"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": ""}`, w.Body.String())
}

func TestCompose(t *testing.T) {
	r := newTestRouter(&mockChatClient{}, "")

	w := do(r, http.MethodPost, "/api/compose",
		`{"cardType": "Birthday", "recipient": "Friend", "wordCount": "short", "includePoem": true}`)

	require.Equal(t, http.StatusOK, w.Code)
	prompt := decode(t, w)["prompt"]
	assert.Equal(t, card.BuildPrompt(card.GenerationRequest{
		CardType:              "Birthday",
		RecipientRelationship: "Friend",
		LengthTier:            card.LengthShort,
		IncludePoem:           true,
	}), prompt)
	assert.Contains(t, prompt, "50-100 words")
}

func TestCompose_BadBody(t *testing.T) {
	r := newTestRouter(&mockChatClient{}, "")

	w := do(r, http.MethodPost, "/api/compose", `{"includePoem": "maybe"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid parameter", decode(t, w)["error"])
}

func TestOptions(t *testing.T) {
	r := newTestRouter(&mockChatClient{}, "")

	w := do(r, http.MethodGet, "/api/options", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got card.FormOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, card.Options(), got)
}

func TestHealthAndReady(t *testing.T) {
	notReady := newTestRouter(&mockChatClient{}, "")
	ready := newTestRouter(&mockChatClient{}, "k")

	w := do(notReady, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])

	w = do(notReady, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "not_ready", decode(t, w)["status"])

	w = do(ready, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(&mockChatClient{}, "")
	do(r, http.MethodGet, "/health", "")

	w := do(r, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "card_words_http_requests_total")
}
