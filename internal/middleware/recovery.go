package middleware

import (
	"fmt"
	"runtime/debug"

	apperrors "card_words_ai/pkg/errors"
	"card_words_ai/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into 500 {"error": "internal server error"}.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					fmt.Errorf("%v", rec),
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)

				c.AbortWithStatusJSON(apperrors.ErrInternal.HTTPStatus, gin.H{
					"error": apperrors.ErrInternal.Message,
				})
			}
		}()

		c.Next()
	}
}
