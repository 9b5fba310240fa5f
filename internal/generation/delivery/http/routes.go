package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The group
// is expected to be the versioned API root.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/analyze_intent", h.AnalyzeIntent)
	rg.POST("/execute_task", h.ExecuteTask)
	rg.GET("/task/:id", h.TaskDetail)
	rg.POST("/generate_image", h.GenerateImage)
	rg.POST("/transform_image", h.TransformImage)
	rg.POST("/generate_video", h.GenerateVideo)
	rg.POST("/chat", h.Chat)
	rg.GET("/history", h.History)
}
