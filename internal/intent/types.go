package intent

// TaskType identifies one generative-media operation. The same closed set is
// shared by the classifier, the planner, and the step executor.
type TaskType string

const (
	TaskTypeTextToImage          TaskType = "text_to_image"
	TaskTypeImageToImage         TaskType = "image_to_image"
	TaskTypeImageToVideo         TaskType = "image_to_video"
	TaskTypeTextToVideo          TaskType = "text_to_video"
	TaskTypeFirstToLastFrame     TaskType = "first_to_last_frame"
	TaskTypeMultimodal           TaskType = "multimodal"
	TaskTypeBatchImageGeneration TaskType = "batch_image_generation"
)

// Style is one of the fixed visual style groups detected in free text.
type Style string

const (
	StyleRealistic Style = "realistic"
	StyleAnime     Style = "anime"
	StyleArtistic  Style = "artistic"
	StyleCinematic Style = "cinematic"
)

// Parameters holds optional generation parameters extracted from the message.
// Duration is always set (seconds, clamped to 1-10, default 5); Size and Style
// are empty when not detected.
type Parameters struct {
	Duration int    `json:"duration"`
	Size     string `json:"size,omitempty"` // "WxH"
	Style    Style  `json:"style,omitempty"`
}

// Result is the immutable outcome of classifying one request.
type Result struct {
	TaskType   TaskType   `json:"task_type"`
	Prompt     string     `json:"prompt"`
	FileCount  int        `json:"file_count"`
	Reasoning  string     `json:"reasoning"`
	Parameters Parameters `json:"parameters"`
	Confidence float64    `json:"confidence"` // [0.0, 1.0]
}

// StepParameters are the inputs one execution step hands to a generator.
// AttachmentRefs are opaque handles to caller-supplied blobs, never the bytes.
type StepParameters struct {
	Prompt         string   `json:"prompt"`
	AttachmentRefs []string `json:"attachment_refs"`
	Duration       int      `json:"duration,omitempty"`
	Size           string   `json:"size,omitempty"`
	Style          Style    `json:"style,omitempty"`
	IsBatch        bool     `json:"is_batch,omitempty"`
	BatchIndex     int      `json:"batch_index,omitempty"`
	TotalBatches   int      `json:"total_batches,omitempty"`
}

// Step is one executable unit of a plan. Step numbers are 1-based and define
// execution order; batch plans emit one image_to_image step per scene.
type Step struct {
	Step        int            `json:"step"`
	Action      TaskType       `json:"action"`
	Parameters  StepParameters `json:"parameters"`
	Description string         `json:"description"`
}

// ValidationResult reports per-task precondition checks. Valid is true iff
// Errors is empty; all applicable rules are evaluated, not short-circuited.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
