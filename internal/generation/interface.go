package generation

import (
	"context"

	"generative-media-agent/internal/model"
)

// UseCase defines the business logic interface for the media generation domain.
type UseCase interface {
	// AnalyzeIntent classifies a user message plus attachments into a task
	// type, validates it, and builds the execution plan.
	AnalyzeIntent(ctx context.Context, sc model.Scope, input AnalyzeIntentInput) (AnalyzeIntentOutput, error)

	// ExecuteTask runs the planned generation steps sequentially.
	ExecuteTask(ctx context.Context, sc model.Scope, input ExecuteTaskInput) (ExecuteTaskOutput, error)

	// TaskDetail returns the stored record of one executed task.
	TaskDetail(ctx context.Context, sc model.Scope, taskID string) (TaskDetailOutput, error)

	// GenerateImage creates an image from a text prompt.
	GenerateImage(ctx context.Context, sc model.Scope, input GenerateImageInput) (GenerateImageOutput, error)

	// TransformImage creates an image guided by uploaded reference images.
	TransformImage(ctx context.Context, sc model.Scope, input TransformImageInput) (TransformImageOutput, error)

	// GenerateVideo creates a video from text, a single image, or a
	// first/last frame pair.
	GenerateVideo(ctx context.Context, sc model.Scope, input GenerateVideoInput) (GenerateVideoOutput, error)

	// Chat sends a free-form message to the chat engine.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// History returns the recent conversation records for the session.
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)
}
