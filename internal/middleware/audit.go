package middleware

import (
	"time"

	"card_words_ai/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DefaultAuditSkipPaths are probe and scrape endpoints not worth a log line.
var DefaultAuditSkipPaths = []string{
	"/health",
	"/ready",
	"/metrics",
}

// Audit writes one structured line per request. Request bodies are never
// logged: they carry personal details about the card recipient.
func Audit(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		logger.Info(c.Request.Context(), "api request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"body_size", c.Writer.Size(),
		)
	}
}
