package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/middleware"
	"generative-media-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Generation domain
	generationUC generation.UseCase

	// Artifact storage exposed over HTTP
	outputDir string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	GenerationUC generation.UseCase

	OutputDir string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		mw:           middleware.New(logger, cfg.RateLimitPerMin),
		generationUC: cfg.GenerationUC,
		outputDir:    cfg.OutputDir,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.generationUC == nil {
		return errors.New("generation use case is required")
	}
	return nil
}
