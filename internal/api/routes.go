package api

import (
	"card_words_ai/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig is the slice of configuration the router needs.
type RouterConfig struct {
	ServiceName    string
	AllowedOrigins []string
	MetricsEnabled bool
	MetricsPath    string
	TracingEnabled bool
}

// PageRoutes is implemented by surfaces mounted next to the JSON API.
type PageRoutes interface {
	Register(r gin.IRouter)
}

// NewRouter builds the engine with the middleware chain and all routes.
func NewRouter(cfg RouterConfig, h *APIHandler, pages ...PageRoutes) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigins: cfg.AllowedOrigins}))
	if cfg.TracingEnabled {
		router.Use(middleware.Trace(cfg.ServiceName))
		router.Use(middleware.TraceContext())
	}
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.Audit(middleware.DefaultAuditSkipPaths...))

	RegisterRoutes(router, h)

	if cfg.MetricsEnabled {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(promhttp.Handler()))
	}

	for _, p := range pages {
		p.Register(router)
	}

	return router
}

// RegisterRoutes sets up the API endpoints.
func RegisterRoutes(router gin.IRouter, h *APIHandler) {
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/generate", h.GenerateMessage)
		apiGroup.POST("/compose", h.Compose)
		apiGroup.GET("/options", h.Options)
	}

	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
