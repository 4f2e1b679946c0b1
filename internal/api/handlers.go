package api

import (
	"context"
	"net/http"

	"card_words_ai/internal/card"
	"card_words_ai/internal/types"
	apperrors "card_words_ai/pkg/errors"
	"card_words_ai/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Relay is the generation service the handlers call.
type Relay interface {
	GenerateMessage(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	relay Relay
}

func NewAPIHandler(relay Relay) *APIHandler {
	return &APIHandler{relay: relay}
}

// POST /api/generate
func (h *APIHandler) GenerateMessage(c *gin.Context) {
	ctx := c.Request.Context()

	// The credential is checked before the body is read.
	if !h.relay.Configured() {
		h.fail(c, apperrors.ErrAPIKeyMissing)
		return
	}

	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn(ctx, "invalid generate request body", "error", err.Error())
		h.fail(c, apperrors.ErrGenerationFailed.WithError(err))
		return
	}

	text, err := h.relay.GenerateMessage(ctx, req.Prompt)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: text})
}

// POST /api/compose
func (h *APIHandler) Compose(c *gin.Context) {
	var req card.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.ErrInvalidParam.WithError(err))
		return
	}

	c.JSON(http.StatusOK, types.ComposeResponse{Prompt: card.BuildPrompt(req)})
}

// GET /api/options
func (h *APIHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, card.Options())
}

// GET /health
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /ready
func (h *APIHandler) Ready(c *gin.Context) {
	if !h.relay.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// fail writes the public message of err; the cause only goes to the log.
func (h *APIHandler) fail(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)
	if appErr.Err != nil {
		logger.Error(c.Request.Context(), "request failed", appErr.Err, "code", string(appErr.Code))
	}
	c.JSON(appErr.HTTPStatus, types.ErrorResponse{Error: appErr.Message})
}
