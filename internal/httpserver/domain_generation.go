package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	generationHTTP "generative-media-agent/internal/generation/delivery/http"
)

// setupGenerationDomain initializes the generation domain and registers
// its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv *HTTPServer) setupGenerationDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := generationHTTP.New(srv.l, srv.generationUC)

	// Registers /api/v1/generation/*
	generationHTTP.RegisterRoutes(api.Group("/generation"), h)

	srv.l.Infof(ctx, "Generation domain registered")
	return nil
}
