package middleware

import (
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

const immutableCacheControl = "public, max-age=31536000, immutable"

var cacheableExt = map[string]bool{
	".svg": true,
	".jpg": true,
	".png": true,
	".ico": true,
}

// StaticCache marks image assets as immutable for a year.
func StaticCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cacheableExt[strings.ToLower(path.Ext(c.Request.URL.Path))] {
			c.Header("Cache-Control", immutableCacheControl)
		}
		c.Next()
	}
}
