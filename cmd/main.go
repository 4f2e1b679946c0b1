package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"card_words_ai/config"
	"card_words_ai/internal/ai"
	"card_words_ai/internal/api"
	"card_words_ai/internal/web"
	"card_words_ai/pkg/logger"
	"card_words_ai/pkg/tracer"
)

func main() {
	// --- Load .env file ---
	// Must happen before viper reads the environment.
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.AppName,
		Endpoint:    cfg.OTLPEndpoint,
		SampleRate:  cfg.TraceSampleRate,
		Enabled:     cfg.TracingEnabled,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to init tracer", err)
	}

	// --- Dependency Initialization ---
	chatClient, err := ai.NewChatClient(cfg.LLMSDK, cfg.LLMBaseURL)
	if err != nil {
		logger.Fatal(ctx, "failed to create chat client", err, "sdk", cfg.LLMSDK)
	}

	// The key is looked up per request, so rotating GROQ_API_KEY needs no restart.
	generator := ai.NewGenerator(chatClient, cfg.APIKey, cfg.LLMModel)

	apiHandler := api.NewAPIHandler(generator)

	page, err := web.NewPage(generator)
	if err != nil {
		logger.Fatal(ctx, "failed to build form page", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		logger.Info(ctx, "running in gin debug mode")
	}

	router := api.NewRouter(api.RouterConfig{
		ServiceName:    cfg.AppName,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsPath:    cfg.MetricsPath,
		TracingEnabled: cfg.TracingEnabled,
	}, apiHandler, page)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// The upstream completion can take several seconds; WriteTimeout covers it.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(gctx, "starting server",
			"addr", cfg.ServerAddress,
			"sdk", cfg.LLMSDK,
			"model", generator.Model(),
			"credential_configured", generator.Configured(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// --- Graceful Shutdown ---
	g.Go(func() error {
		<-gctx.Done()
		logger.Info(context.Background(), "shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "server forced shutdown", err)
		}
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "tracer shutdown failed", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Fatal(context.Background(), "server exited with error", err)
	}

	logger.Info(context.Background(), "application exiting")
}
