package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"generative-media-agent/config"
	_ "generative-media-agent/docs" // Swagger docs
	"generative-media-agent/internal/generation/repository/jsonfile"
	"generative-media-agent/internal/generation/usecase"
	"generative-media-agent/internal/httpserver"
	"generative-media-agent/pkg/gemini"
	"generative-media-agent/pkg/imagegen"
	"generative-media-agent/pkg/log"
	"generative-media-agent/pkg/videogen"
)

// @title       Generative Media Agent API
// @description Intent classification and execution planning for generative media requests.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Generative Media Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Generative backends
	var llm *gemini.Client
	if cfg.Gemini.APIKey != "" {
		llm = gemini.NewClient(cfg.Gemini.APIKey)
		llm.SetModel(cfg.Gemini.Model)
		logger.Infof(ctx, "Chat engine initialized with model %s", cfg.Gemini.Model)
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing, chat and LLM intent refinement disabled")
	}

	var imageGen *imagegen.Client
	if cfg.ImageGen.APIKey != "" {
		imageGen = imagegen.NewClient(cfg.ImageGen.APIKey)
		imageGen.SetModel(cfg.ImageGen.Model)
		logger.Infof(ctx, "Image backend initialized with model %s", cfg.ImageGen.Model)
	} else {
		logger.Warn(ctx, "Image generation disabled, no API key configured")
	}

	var videoGen *videogen.Client
	if cfg.VideoGen.APIKey != "" {
		videoGen = videogen.NewClient(cfg.VideoGen.APIKey)
		videoGen.SetModel(cfg.VideoGen.Model)
		videoGen.SetPollInterval(time.Duration(cfg.VideoGen.PollIntervalSec) * time.Second)
		videoGen.SetTimeout(time.Duration(cfg.VideoGen.TimeoutSec) * time.Second)
		videoGen.SetRequestsPerMin(cfg.VideoGen.RequestsPerMin)
		logger.Infof(ctx, "Video backend initialized with model %s", cfg.VideoGen.Model)
	} else {
		logger.Warn(ctx, "Video generation disabled, no API key configured")
	}

	// 4. Memory repository
	repo := jsonfile.New(cfg.Memory.Path, logger)

	// 5. Generation UseCase
	generationUC := usecase.New(
		logger,
		llm,
		imageGen,
		videoGen,
		repo,
		cfg.Storage.UploadDir,
		cfg.Storage.OutputDir,
	)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		GenerationUC:    generationUC,
		OutputDir:       cfg.Storage.OutputDir,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
