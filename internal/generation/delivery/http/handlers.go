package http

import (
	"github.com/gin-gonic/gin"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/model"
	"generative-media-agent/pkg/response"
)

// AnalyzeIntent godoc
// @Summary     Analyze a user request
// @Description Classifies a free-form message plus attachments into a task type and builds the execution plan.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Param       body body analyzeIntentReq true "Message and base64 attachments"
// @Success     200 {object} analyzeIntentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/generation/analyze_intent [POST]
func (h *handler) AnalyzeIntent(c *gin.Context) {
	ctx := c.Request.Context()

	req, files, err := h.processAnalyzeIntentReq(c)
	if err != nil {
		h.respondBindError(c, err)
		return
	}

	output, err := h.uc.AnalyzeIntent(ctx, req.scope(), req.toInput(files))
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeIntent: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeIntentResp(output))
}

// ExecuteTask godoc
// @Summary     Execute a planned task
// @Description Runs the generation steps for the given task type sequentially and records the outcome.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Param       body body executeTaskReq true "Task type, prompt and saved attachment paths"
// @Success     200 {object} executeTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/generation/execute_task [POST]
func (h *handler) ExecuteTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExecuteTaskReq(c)
	if err != nil {
		h.respondBindError(c, err)
		return
	}

	output, err := h.uc.ExecuteTask(ctx, req.scope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExecuteTask: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExecuteTaskResp(output))
}

// TaskDetail godoc
// @Summary     Get task status
// @Description Returns the stored record of one executed task, including per-step results.
// @Tags        Generation
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/generation/task/{id} [GET]
func (h *handler) TaskDetail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, generation.ErrTaskNotFound, nil)
		return
	}

	output, err := h.uc.TaskDetail(ctx, model.Scope{}, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// GenerateImage godoc
// @Summary     Generate an image from text
// @Description Creates a new image from the prompt and stores it in the output directory.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Param       body body generateImageReq true "Prompt"
// @Success     200 {object} generateImageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/generation/generate_image [POST]
func (h *handler) GenerateImage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateImageReq(c)
	if err != nil {
		h.respondBindError(c, err)
		return
	}

	output, err := h.uc.GenerateImage(ctx, req.scope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateImage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newGenerateImageResp(output))
}

// TransformImage godoc
// @Summary     Transform reference images
// @Description Generates a new image guided by the uploaded reference images.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Param       body body transformImageReq true "Prompt and base64 reference images"
// @Success     200 {object} transformImageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/generation/transform_image [POST]
func (h *handler) TransformImage(c *gin.Context) {
	ctx := c.Request.Context()

	req, files, err := h.processTransformImageReq(c)
	if err != nil {
		h.respondBindError(c, err)
		return
	}

	output, err := h.uc.TransformImage(ctx, req.scope(), req.toInput(files))
	if err != nil {
		h.l.Errorf(ctx, "uc.TransformImage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTransformImageResp(output))
}

// GenerateVideo godoc
// @Summary     Generate a video
// @Description Creates a video from text, a single image, or a first/last frame pair. Mode is inferred from the attachment count when omitted.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Param       body body generateVideoReq true "Mode, prompt, duration and base64 frames"
// @Success     200 {object} generateVideoResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/generation/generate_video [POST]
func (h *handler) GenerateVideo(c *gin.Context) {
	ctx := c.Request.Context()

	req, files, err := h.processGenerateVideoReq(c)
	if err != nil {
		h.respondBindError(c, err)
		return
	}

	output, err := h.uc.GenerateVideo(ctx, req.scope(), req.toInput(files))
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateVideo: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newGenerateVideoResp(output))
}

// Chat godoc
// @Summary     Chat with the engine
// @Description Sends a free-form message and returns the model reply.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/generation/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.respondBindError(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.scope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// History godoc
// @Summary     Get conversation history
// @Description Returns the most recent conversation records for the session.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Param       session_id query string false "Session ID (default: web)"
// @Param       limit      query int    false "Max records (default: 10)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/generation/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		h.respondBindError(c, err)
		return
	}

	output, err := h.uc.History(ctx, req.scope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
