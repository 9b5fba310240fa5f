package generation

import "errors"

// Domain-specific errors for the generation package.
var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrEmptyPrompt     = errors.New("prompt is empty")
	ErrMissingImage    = errors.New("image attachment is required")
	ErrMissingFrames   = errors.New("first and last frame images are required")
	ErrUnknownTaskType = errors.New("unknown task type")
	ErrTaskNotFound    = errors.New("task not found")

	// ErrBackendNotConfigured is returned when an operation needs a
	// generative backend whose API key was not provided at startup.
	ErrBackendNotConfigured = errors.New("generation backend not configured")
)
