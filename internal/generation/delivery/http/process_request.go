package http

import (
	"github.com/gin-gonic/gin"
)

// processAnalyzeIntentReq binds the analyze request body and decodes the
// base64 attachments.
func (h *handler) processAnalyzeIntentReq(c *gin.Context) (analyzeIntentReq, [][]byte, error) {
	var req analyzeIntentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, err
	}
	files, err := decodeAttachments(req.Attachments)
	if err != nil {
		return req, nil, err
	}
	return req, files, nil
}

// processExecuteTaskReq binds the execute request body.
func (h *handler) processExecuteTaskReq(c *gin.Context) (executeTaskReq, error) {
	var req executeTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processGenerateImageReq binds the image generation request body.
func (h *handler) processGenerateImageReq(c *gin.Context) (generateImageReq, error) {
	var req generateImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processTransformImageReq binds the transform request body and decodes the
// base64 reference images.
func (h *handler) processTransformImageReq(c *gin.Context) (transformImageReq, [][]byte, error) {
	var req transformImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, err
	}
	files, err := decodeAttachments(req.Attachments)
	if err != nil {
		return req, nil, err
	}
	return req, files, nil
}

// processGenerateVideoReq binds the video generation request body and decodes
// the base64 frame images.
func (h *handler) processGenerateVideoReq(c *gin.Context) (generateVideoReq, [][]byte, error) {
	var req generateVideoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, err
	}
	files, err := decodeAttachments(req.Attachments)
	if err != nil {
		return req, nil, err
	}
	return req, files, nil
}

// processChatReq binds the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processHistoryReq binds the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
