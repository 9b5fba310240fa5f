package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/generation/repository"
	"generative-media-agent/internal/intent"
	"generative-media-agent/internal/model"
	"generative-media-agent/pkg/retry"
)

func (uc *implUseCase) ExecuteTask(ctx context.Context, sc model.Scope, input generation.ExecuteTaskInput) (generation.ExecuteTaskOutput, error) {
	if input.TaskType == "" {
		return generation.ExecuteTaskOutput{}, generation.ErrUnknownTaskType
	}

	plan := input.Plan
	if len(plan) == 0 {
		result := intent.Result{
			TaskType:   input.TaskType,
			Prompt:     input.Prompt,
			FileCount:  len(input.AttachmentRefs),
			Parameters: input.Parameters,
		}

		var err error
		plan, err = intent.Plan(result, input.AttachmentRefs)
		if err != nil {
			if !errors.Is(err, intent.ErrNoScenes) {
				return generation.ExecuteTaskOutput{}, err
			}
			uc.l.Warnf(ctx, "uc.ExecuteTask: batch prompt has no parseable scenes, nothing to execute")
		}
	}

	taskID := uuid.NewString()
	if _, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		ID:       taskID,
		TaskType: string(input.TaskType),
		Prompt:   input.Prompt,
		Status:   model.TaskStatusRunning,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.ExecuteTask: create task record: %v", err)
		return generation.ExecuteTaskOutput{}, err
	}

	status := model.TaskStatusCompleted
	results := make([]generation.StepResult, 0, len(plan))
	for _, step := range plan {
		stepResult := uc.executeStep(ctx, step)
		results = append(results, stepResult)

		// Sequential execution stops at the first failed step.
		if stepResult.Status == model.TaskStatusFailed {
			status = model.TaskStatusFailed
			break
		}
	}

	if err := uc.repo.UpdateTaskStatus(ctx, repository.UpdateTaskStatusOptions{
		ID:     taskID,
		Status: status,
		Result: results,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.ExecuteTask: update task record: %v", err)
	}

	if err := uc.repo.AppendConversation(ctx, repository.AppendConversationOptions{
		SessionID: sessionID(sc),
		UserInput: input.Prompt,
		Response:  fmt.Sprintf("任務 %s 執行%s，完成 %d 個步驟", input.TaskType, statusLabel(status), len(results)),
		Metadata: map[string]any{
			"task_id":   taskID,
			"task_type": string(input.TaskType),
			"status":    string(status),
		},
	}); err != nil {
		uc.l.Errorf(ctx, "uc.ExecuteTask: record conversation: %v", err)
	}

	return generation.ExecuteTaskOutput{
		TaskID:   taskID,
		TaskType: input.TaskType,
		Status:   status,
		Results:  results,
	}, nil
}

func statusLabel(status model.TaskStatus) string {
	if status == model.TaskStatusCompleted {
		return "成功"
	}
	return "失敗"
}

// executeStep runs one plan step with retry, classifying backend
// failures to pick the backoff policy.
func (uc *implUseCase) executeStep(ctx context.Context, step intent.Step) generation.StepResult {
	result := generation.StepResult{
		Step:   step.Step,
		Action: step.Action,
		Prompt: step.Parameters.Prompt,
		Status: model.TaskStatusCompleted,
	}

	// Attachments load once, outside the retry loop. Input and
	// configuration problems are not retryable.
	images, err := uc.loadAttachments(step.Parameters.AttachmentRefs)
	if err == nil {
		err = validateStepInputs(step.Action, len(images))
	}
	if err == nil {
		err = uc.validateStepBackend(step.Action)
	}
	if err != nil {
		result.Status = model.TaskStatusFailed
		result.Error = err.Error()
		return result
	}

	var file string
	err = retry.Do(ctx, func(ctx context.Context) error {
		var stepErr error
		file, stepErr = uc.runAction(ctx, step, images)
		return stepErr
	})
	if err != nil {
		uc.l.Errorf(ctx, "step %d (%s) failed: %v", step.Step, step.Action, err)
		result.Status = model.TaskStatusFailed
		result.Error = err.Error()
		return result
	}

	result.OutputFile = file
	return result
}

func validateStepInputs(action intent.TaskType, imageCount int) error {
	switch action {
	case intent.TaskTypeImageToImage, intent.TaskTypeImageToVideo:
		if imageCount == 0 {
			return generation.ErrMissingImage
		}
	case intent.TaskTypeFirstToLastFrame:
		if imageCount < 2 {
			return generation.ErrMissingFrames
		}
	}
	return nil
}

// validateStepBackend rejects steps whose generative backend was never
// configured, instead of letting the call nil-panic.
func (uc *implUseCase) validateStepBackend(action intent.TaskType) error {
	switch action {
	case intent.TaskTypeTextToImage, intent.TaskTypeImageToImage:
		if uc.imageGen == nil {
			return fmt.Errorf("%w: image backend", generation.ErrBackendNotConfigured)
		}
	case intent.TaskTypeImageToVideo, intent.TaskTypeFirstToLastFrame, intent.TaskTypeTextToVideo:
		if uc.videoGen == nil {
			return fmt.Errorf("%w: video backend", generation.ErrBackendNotConfigured)
		}
	}
	return nil
}

func (uc *implUseCase) runAction(ctx context.Context, step intent.Step, images [][]byte) (string, error) {
	p := step.Parameters

	duration := p.Duration
	if duration <= 0 {
		duration = 5
	}

	switch step.Action {
	case intent.TaskTypeTextToImage:
		res, err := uc.imageGen.TextToImage(ctx, p.Prompt)
		if err != nil {
			return "", err
		}
		return uc.writeOutput("image", "png", res.ImageData)

	case intent.TaskTypeImageToImage:
		res, err := uc.imageGen.ImageWithReference(ctx, p.Prompt, images)
		if err != nil {
			return "", err
		}

		prefix := "transformed"
		if p.IsBatch {
			prefix = fmt.Sprintf("batch_scene_%d", step.Step)
		}
		return uc.writeOutput(prefix, "png", res.ImageData)

	case intent.TaskTypeImageToVideo:
		res, err := uc.videoGen.ImageToVideo(ctx, images[0], p.Prompt, duration)
		if err != nil {
			return "", err
		}
		return uc.writeOutput("generated_video", "mp4", res.VideoData)

	case intent.TaskTypeFirstToLastFrame:
		res, err := uc.videoGen.FirstToLastFrame(ctx, images[0], images[1], p.Prompt, duration)
		if err != nil {
			return "", err
		}
		return uc.writeOutput("generated_video", "mp4", res.VideoData)

	case intent.TaskTypeTextToVideo:
		res, err := uc.videoGen.GenerateVideo(ctx, p.Prompt, duration)
		if err != nil {
			return "", err
		}
		return uc.writeOutput("generated_video", "mp4", res.VideoData)

	default:
		return "", fmt.Errorf("%w: %s", generation.ErrUnknownTaskType, step.Action)
	}
}
