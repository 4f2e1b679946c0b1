package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"card_words_ai/internal/card"
	apperrors "card_words_ai/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRelay struct {
	prompts []string
	text    string
	err     error
}

func (f *fakeRelay) GenerateMessage(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func newTestEngine(t *testing.T, relay Relay) *gin.Engine {
	t.Helper()
	page, err := NewPage(relay)
	require.NoError(t, err)
	r := gin.New()
	page.Register(r)
	return r
}

func postForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewPage_RequiresRelay(t *testing.T) {
	_, err := NewPage(nil)
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	r := newTestEngine(t, &fakeRelay{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Find The Perfect Words")
	assert.Contains(t, body, `<option value="Birthday">Birthday</option>`)
	assert.Contains(t, body, `<option value="short">Short and Sweet</option>`)
	assert.Contains(t, body, "Creating Magic...")
	assert.Contains(t, body, "<h3>How does the AI card message generator work?</h3>")
	assert.NotContains(t, body, "Soul Stirring Words")
}

func TestSubmit_Success(t *testing.T) {
	relay := &fakeRelay{text: "Dear Friend,\nHappy birthday."}
	r := newTestEngine(t, relay)

	form := url.Values{
		"cardType":        {"Birthday"},
		"recipient":       {"Friend"},
		"wordCount":       {"long"},
		"characteristics": {"Kind", "Funny"},
		"includePoem":     {"true"},
	}
	w := postForm(r, form)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, relay.prompts, 1)
	assert.Equal(t, card.BuildPrompt(card.GenerationRequest{
		CardType:              "Birthday",
		RecipientRelationship: "Friend",
		LengthTier:            card.LengthLong,
		Characteristics:       []string{"Kind", "Funny"},
		IncludePoem:           true,
	}), relay.prompts[0])

	body := w.Body.String()
	assert.Contains(t, body, `<div class="message" id="message">Dear Friend,
Happy birthday.</div>`)
	assert.Contains(t, body, "Copy to Clipboard")
	assert.Contains(t, body, `<option value="Birthday" selected>Birthday</option>`)
	assert.Contains(t, body, `<option value="Funny" selected>Funny</option>`)
	assert.Contains(t, body, `value="true" checked`)
}

func TestSubmit_RelayErrorShownVerbatim(t *testing.T) {
	r := newTestEngine(t, &fakeRelay{err: apperrors.ErrAPIKeyMissing})

	w := postForm(r, url.Values{"cardType": {"Love"}, "recipient": {"Partner"}})

	assert.Contains(t, w.Body.String(), `<div class="error" role="alert">API key is not configured</div>`)
	assert.NotContains(t, w.Body.String(), "Soul Stirring Words")
}

func TestSubmit_GenerationFailure(t *testing.T) {
	r := newTestEngine(t, &fakeRelay{err: apperrors.ErrGenerationFailed.WithError(errors.New("503"))})

	w := postForm(r, url.Values{"cardType": {"Love"}})

	assert.Contains(t, w.Body.String(), ">Failed to generate message</div>")
	assert.NotContains(t, w.Body.String(), "503")
}

func TestSubmit_UnknownErrorUsesFallback(t *testing.T) {
	r := newTestEngine(t, &fakeRelay{err: errors.New("connection reset by peer")})

	w := postForm(r, url.Values{"cardType": {"Love"}})

	assert.Contains(t, w.Body.String(), FallbackError)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestSubmit_InvalidFormUsesFallback(t *testing.T) {
	relay := &fakeRelay{}
	r := newTestEngine(t, relay)

	w := postForm(r, url.Values{"includePoem": {"sometimes"}})

	assert.Contains(t, w.Body.String(), FallbackError)
	assert.Empty(t, relay.prompts)
}

func TestStaticAssetsAreCached(t *testing.T) {
	r := newTestEngine(t, &fakeRelay{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/favicon.svg", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=31536000, immutable", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Body.String(), "<svg")
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "API key is not configured", publicMessage(apperrors.ErrAPIKeyMissing))
	assert.Equal(t, FallbackError, publicMessage(errors.New("x")))
}
