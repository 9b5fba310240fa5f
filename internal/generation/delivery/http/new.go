package http

import (
	"github.com/gin-gonic/gin"

	"generative-media-agent/internal/generation"
	"generative-media-agent/pkg/log"
)

// Handler is the public interface for the generation HTTP delivery layer.
type Handler interface {
	AnalyzeIntent(c *gin.Context)
	ExecuteTask(c *gin.Context)
	TaskDetail(c *gin.Context)
	GenerateImage(c *gin.Context)
	TransformImage(c *gin.Context)
	GenerateVideo(c *gin.Context)
	Chat(c *gin.Context)
	History(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc generation.UseCase
}

// New creates a new HTTP handler for the generation domain.
func New(l log.Logger, uc generation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
