package generation

import (
	"time"

	"generative-media-agent/internal/intent"
	"generative-media-agent/internal/model"
)

// AnalyzeIntentInput is the input for intent analysis.
type AnalyzeIntentInput struct {
	Message     string
	Attachments [][]byte // decoded uploaded files
}

// AnalyzeIntentOutput is the classification with its validation and plan.
type AnalyzeIntentOutput struct {
	Intent          intent.Result
	Validation      intent.ValidationResult
	Plan            []intent.Step
	AttachmentRefs  []string // saved upload paths
	OriginalMessage string
}

// ExecuteTaskInput is the input for task execution. When Plan is empty
// it is rebuilt from the task type and prompt.
type ExecuteTaskInput struct {
	TaskType       intent.TaskType
	Prompt         string
	AttachmentRefs []string
	Parameters     intent.Parameters
	Plan           []intent.Step
}

// StepResult is the outcome of one executed plan step.
type StepResult struct {
	Step       int              `json:"step"`
	Action     intent.TaskType  `json:"action"`
	Prompt     string           `json:"prompt"`
	OutputFile string           `json:"output_file,omitempty"`
	Status     model.TaskStatus `json:"status"`
	Error      string           `json:"error,omitempty"`
}

// ExecuteTaskOutput is the result of executing a whole plan.
type ExecuteTaskOutput struct {
	TaskID   string
	TaskType intent.TaskType
	Status   model.TaskStatus
	Results  []StepResult
}

// TaskDetailOutput is the stored record of one executed task.
type TaskDetailOutput struct {
	Task model.TaskRecord
}

// GenerateImageInput is the input for direct text-to-image generation.
type GenerateImageInput struct {
	Prompt string
}

// GenerateImageOutput points at the generated artifact.
type GenerateImageOutput struct {
	File   string
	Prompt string
	Model  string
}

// TransformImageInput is the input for reference-guided image generation.
type TransformImageInput struct {
	Prompt      string
	Attachments [][]byte
}

// TransformImageOutput points at the generated artifact.
type TransformImageOutput struct {
	File           string
	Prompt         string
	Model          string
	ReferenceCount int
}

// VideoMode selects the video generation flavor.
type VideoMode string

const (
	VideoModeText        VideoMode = "text"
	VideoModeImage       VideoMode = "image"
	VideoModeFirstToLast VideoMode = "first_to_last"
)

// GenerateVideoInput is the input for video generation. An empty Mode
// is inferred from the attachment count.
type GenerateVideoInput struct {
	Mode        VideoMode
	Prompt      string
	Duration    int
	Attachments [][]byte
}

// GenerateVideoOutput points at the generated artifact with job metadata.
type GenerateVideoOutput struct {
	File           string
	Prompt         string
	Duration       int
	OperationName  string
	GenerationTime time.Duration
}

// ChatInput is a free-form chat message.
type ChatInput struct {
	Message string
}

// ChatOutput is the chat engine reply.
type ChatOutput struct {
	Response string
}

// HistoryInput selects how many recent records to return.
type HistoryInput struct {
	Limit int
}

// HistoryOutput is the session's recent conversation records.
type HistoryOutput struct {
	Records []model.ConversationRecord
	Count   int
}
