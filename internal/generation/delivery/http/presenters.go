package http

import (
	"encoding/base64"
	"fmt"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/intent"
	"generative-media-agent/internal/model"
)

// decodeAttachments turns base64 payloads into raw file bytes. Data URL
// prefixes are not supported; clients send plain base64.
func decodeAttachments(encoded []string) ([][]byte, error) {
	if len(encoded) == 0 {
		return nil, nil
	}
	files := make([][]byte, 0, len(encoded))
	for i, payload := range encoded {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("attachment %d is not valid base64: %w", i, err)
		}
		files = append(files, data)
	}
	return files, nil
}

// --- Request DTOs ---

type analyzeIntentReq struct {
	Message     string   `json:"message"`
	SessionID   string   `json:"session_id"`
	Attachments []string `json:"attachments"` // base64 encoded files
}

func (r analyzeIntentReq) scope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

func (r analyzeIntentReq) toInput(files [][]byte) generation.AnalyzeIntentInput {
	return generation.AnalyzeIntentInput{
		Message:     r.Message,
		Attachments: files,
	}
}

// ---

type taskParametersReq struct {
	Duration int    `json:"duration" binding:"omitempty,min=1,max=10"`
	Size     string `json:"size"`
	Style    string `json:"style"    binding:"omitempty,oneof=realistic anime artistic cinematic"`
}

type executeTaskReq struct {
	TaskType       string            `json:"task_type" binding:"required"`
	Prompt         string            `json:"prompt"`
	SessionID      string            `json:"session_id"`
	AttachmentRefs []string          `json:"attachment_refs"`
	Parameters     taskParametersReq `json:"parameters"`
}

func (r executeTaskReq) scope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

func (r executeTaskReq) toInput() generation.ExecuteTaskInput {
	return generation.ExecuteTaskInput{
		TaskType:       intent.TaskType(r.TaskType),
		Prompt:         r.Prompt,
		AttachmentRefs: r.AttachmentRefs,
		Parameters: intent.Parameters{
			Duration: r.Parameters.Duration,
			Size:     r.Parameters.Size,
			Style:    intent.Style(r.Parameters.Style),
		},
	}
}

// ---

type generateImageReq struct {
	Prompt    string `json:"prompt" binding:"required"`
	SessionID string `json:"session_id"`
}

func (r generateImageReq) scope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

func (r generateImageReq) toInput() generation.GenerateImageInput {
	return generation.GenerateImageInput{Prompt: r.Prompt}
}

// ---

type transformImageReq struct {
	Prompt      string   `json:"prompt"      binding:"required"`
	SessionID   string   `json:"session_id"`
	Attachments []string `json:"attachments" binding:"required,min=1"`
}

func (r transformImageReq) scope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

func (r transformImageReq) toInput(files [][]byte) generation.TransformImageInput {
	return generation.TransformImageInput{
		Prompt:      r.Prompt,
		Attachments: files,
	}
}

// ---

type generateVideoReq struct {
	Mode        string   `json:"mode"     binding:"omitempty,oneof=text image first_to_last"`
	Prompt      string   `json:"prompt"`
	Duration    int      `json:"duration" binding:"omitempty,min=1,max=10"`
	SessionID   string   `json:"session_id"`
	Attachments []string `json:"attachments"`
}

func (r generateVideoReq) scope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

func (r generateVideoReq) toInput(files [][]byte) generation.GenerateVideoInput {
	return generation.GenerateVideoInput{
		Mode:        generation.VideoMode(r.Mode),
		Prompt:      r.Prompt,
		Duration:    r.Duration,
		Attachments: files,
	}
}

// ---

type chatReq struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

func (r chatReq) scope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

func (r chatReq) toInput() generation.ChatInput {
	return generation.ChatInput{Message: r.Message}
}

// ---

type historyReq struct {
	SessionID string `form:"session_id"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (r historyReq) scope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

func (r historyReq) toInput() generation.HistoryInput {
	return generation.HistoryInput{Limit: r.Limit}
}

// --- Response DTOs ---

type intentResp struct {
	TaskType   string            `json:"taskType"`
	Prompt     string            `json:"prompt"`
	FileCount  int               `json:"fileCount"`
	Reasoning  string            `json:"reasoning"`
	Confidence float64           `json:"confidence"`
	Parameters intent.Parameters `json:"parameters"`
}

type analyzeIntentResp struct {
	Intent          intentResp    `json:"intent"`
	Valid           bool          `json:"valid"`
	Errors          []string      `json:"errors,omitempty"`
	ExecutionPlan   []intent.Step `json:"executionPlan"`
	FilePaths       []string      `json:"filePaths"`
	OriginalMessage string        `json:"originalMessage"`
}

func (h *handler) newAnalyzeIntentResp(out generation.AnalyzeIntentOutput) analyzeIntentResp {
	return analyzeIntentResp{
		Intent: intentResp{
			TaskType:   string(out.Intent.TaskType),
			Prompt:     out.Intent.Prompt,
			FileCount:  out.Intent.FileCount,
			Reasoning:  out.Intent.Reasoning,
			Confidence: out.Intent.Confidence,
			Parameters: out.Intent.Parameters,
		},
		Valid:           out.Validation.Valid,
		Errors:          out.Validation.Errors,
		ExecutionPlan:   out.Plan,
		FilePaths:       out.AttachmentRefs,
		OriginalMessage: out.OriginalMessage,
	}
}

type executeTaskResp struct {
	TaskID   string                  `json:"taskId"`
	TaskType string                  `json:"taskType"`
	Status   string                  `json:"status"`
	Results  []generation.StepResult `json:"results"`
}

func (h *handler) newExecuteTaskResp(out generation.ExecuteTaskOutput) executeTaskResp {
	return executeTaskResp{
		TaskID:   out.TaskID,
		TaskType: string(out.TaskType),
		Status:   string(out.Status),
		Results:  out.Results,
	}
}

type taskDetailResp struct {
	TaskID    string `json:"taskId"`
	TaskType  string `json:"taskType"`
	Prompt    string `json:"prompt"`
	Status    string `json:"status"`
	Result    any    `json:"result,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (h *handler) newTaskDetailResp(out generation.TaskDetailOutput) taskDetailResp {
	return taskDetailResp{
		TaskID:    out.Task.ID,
		TaskType:  out.Task.TaskType,
		Prompt:    out.Task.Prompt,
		Status:    string(out.Task.Status),
		Result:    out.Task.Result,
		CreatedAt: out.Task.CreatedAt,
		UpdatedAt: out.Task.UpdatedAt,
	}
}

type generateImageResp struct {
	File   string `json:"file"`
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

func (h *handler) newGenerateImageResp(out generation.GenerateImageOutput) generateImageResp {
	return generateImageResp{
		File:   out.File,
		Prompt: out.Prompt,
		Model:  out.Model,
	}
}

type transformImageResp struct {
	File           string `json:"file"`
	Prompt         string `json:"prompt"`
	Model          string `json:"model"`
	ReferenceCount int    `json:"referenceCount"`
}

func (h *handler) newTransformImageResp(out generation.TransformImageOutput) transformImageResp {
	return transformImageResp{
		File:           out.File,
		Prompt:         out.Prompt,
		Model:          out.Model,
		ReferenceCount: out.ReferenceCount,
	}
}

type generateVideoResp struct {
	File           string  `json:"file"`
	Prompt         string  `json:"prompt"`
	Duration       int     `json:"duration"`
	Operation      string  `json:"operation"`
	GenerationTime float64 `json:"generationTime"` // seconds
}

func (h *handler) newGenerateVideoResp(out generation.GenerateVideoOutput) generateVideoResp {
	return generateVideoResp{
		File:           out.File,
		Prompt:         out.Prompt,
		Duration:       out.Duration,
		Operation:      out.OperationName,
		GenerationTime: out.GenerationTime.Seconds(),
	}
}

type chatResp struct {
	Response string `json:"response"`
}

func (h *handler) newChatResp(out generation.ChatOutput) chatResp {
	return chatResp{Response: out.Response}
}

type historyResp struct {
	Records []model.ConversationRecord `json:"records"`
	Count   int                        `json:"count"`
}

func (h *handler) newHistoryResp(out generation.HistoryOutput) historyResp {
	return historyResp{
		Records: out.Records,
		Count:   out.Count,
	}
}
