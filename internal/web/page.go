// Package web serves the card form: it collects the recipient details,
// composes the prompt and shows the relay's answer.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"card_words_ai/internal/card"
	"card_words_ai/internal/middleware"
	"card_words_ai/internal/types"
	apperrors "card_words_ai/pkg/errors"
	"card_words_ai/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/yuin/goldmark"
)

// FallbackError is shown when a failure carries no public message.
const FallbackError = "Failed to generate message. Please try again."

//go:embed templates/*.html content/*.md static/*
var assets embed.FS

// Relay generates a card message for a prompt.
type Relay interface {
	GenerateMessage(ctx context.Context, prompt string) (string, error)
}

type Page struct {
	relay  Relay
	tmpl   *template.Template
	about  template.HTML
	static http.FileSystem
}

type pageData struct {
	Options card.FormOptions
	Form    card.GenerationRequest
	Result  types.GenerationResult
	About   template.HTML
}

func NewPage(relay Relay) (*Page, error) {
	if relay == nil {
		return nil, errors.New("relay required")
	}

	tmpl, err := template.ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	md, err := assets.ReadFile("content/about.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read about content: %w", err)
	}
	var buf bytes.Buffer
	if err := goldmark.Convert(md, &buf); err != nil {
		return nil, fmt.Errorf("failed to render about content: %w", err)
	}

	sub, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}

	return &Page{
		relay: relay,
		tmpl:  tmpl,
		// Authored in this repository, not user input.
		about:  template.HTML(buf.String()),
		static: http.FS(sub),
	}, nil
}

// Register mounts the form and its static assets.
func (p *Page) Register(r gin.IRouter) {
	r.GET("/", p.Show)
	r.POST("/", p.Submit)
	r.Group("/static", middleware.StaticCache()).StaticFS("/", p.static)
}

// GET /
func (p *Page) Show(c *gin.Context) {
	p.render(c, http.StatusOK, card.GenerationRequest{}, types.GenerationResult{})
}

// POST /
func (p *Page) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var form card.GenerationRequest
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn(ctx, "invalid card form", "error", err.Error())
		p.render(c, http.StatusOK, form, types.GenerationResult{Error: FallbackError})
		return
	}

	text, err := p.relay.GenerateMessage(ctx, card.BuildPrompt(form))
	if err != nil {
		p.render(c, http.StatusOK, form, types.GenerationResult{Error: publicMessage(err)})
		return
	}

	p.render(c, http.StatusOK, form, types.GenerationResult{Message: text})
}

func (p *Page) render(c *gin.Context, status int, form card.GenerationRequest, result types.GenerationResult) {
	c.Render(status, render.HTML{
		Template: p.tmpl,
		Name:     "index.html",
		Data: pageData{
			Options: card.Options(),
			Form:    form,
			Result:  result,
			About:   p.about,
		},
	})
}

// publicMessage returns the relay's public text, or the fallback for
// anything that is not a relay error.
func publicMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return FallbackError
}
