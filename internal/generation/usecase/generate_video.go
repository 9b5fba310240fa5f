package usecase

import (
	"context"
	"fmt"
	"strings"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/generation/repository"
	"generative-media-agent/internal/model"
	"generative-media-agent/pkg/retry"
	"generative-media-agent/pkg/videogen"
)

func (uc *implUseCase) GenerateVideo(ctx context.Context, sc model.Scope, input generation.GenerateVideoInput) (generation.GenerateVideoOutput, error) {
	mode := input.Mode
	if mode == "" {
		mode = inferVideoMode(len(input.Attachments))
	}

	// First/last frame interpolation may run without a prompt.
	if strings.TrimSpace(input.Prompt) == "" && mode != generation.VideoModeFirstToLast {
		return generation.GenerateVideoOutput{}, generation.ErrEmptyPrompt
	}

	if mode == generation.VideoModeFirstToLast && len(input.Attachments) < 2 {
		return generation.GenerateVideoOutput{}, generation.ErrMissingFrames
	}
	if mode == generation.VideoModeImage && len(input.Attachments) == 0 {
		return generation.GenerateVideoOutput{}, generation.ErrMissingImage
	}
	if uc.videoGen == nil {
		return generation.GenerateVideoOutput{}, fmt.Errorf("%w: video backend", generation.ErrBackendNotConfigured)
	}

	duration := input.Duration
	if duration <= 0 {
		duration = 5
	}

	uc.l.Infof(ctx, "video request: mode=%s prompt=%s duration=%d", mode, input.Prompt, duration)

	var result *videogen.Result
	err := retry.Do(ctx, func(ctx context.Context) error {
		var genErr error
		result, genErr = uc.runVideoMode(ctx, mode, input, duration)
		return genErr
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateVideo: %v", err)
		return generation.GenerateVideoOutput{}, err
	}

	file, err := uc.writeOutput("generated_video", "mp4", result.VideoData)
	if err != nil {
		return generation.GenerateVideoOutput{}, err
	}

	if err := uc.repo.AppendConversation(ctx, repository.AppendConversationOptions{
		SessionID: sessionID(sc),
		UserInput: input.Prompt,
		Response:  "已經完成 " + file,
		Metadata: map[string]any{
			"mode":      string(mode),
			"duration":  duration,
			"operation": result.OperationName,
		},
	}); err != nil {
		uc.l.Errorf(ctx, "uc.GenerateVideo: record conversation: %v", err)
	}

	return generation.GenerateVideoOutput{
		File:           file,
		Prompt:         input.Prompt,
		Duration:       duration,
		OperationName:  result.OperationName,
		GenerationTime: result.GenerationTime,
	}, nil
}

func inferVideoMode(attachmentCount int) generation.VideoMode {
	switch {
	case attachmentCount >= 2:
		return generation.VideoModeFirstToLast
	case attachmentCount == 1:
		return generation.VideoModeImage
	default:
		return generation.VideoModeText
	}
}

func (uc *implUseCase) runVideoMode(ctx context.Context, mode generation.VideoMode, input generation.GenerateVideoInput, duration int) (*videogen.Result, error) {
	switch mode {
	case generation.VideoModeFirstToLast:
		return uc.videoGen.FirstToLastFrame(ctx, input.Attachments[0], input.Attachments[1], input.Prompt, duration)

	case generation.VideoModeImage:
		return uc.videoGen.ImageToVideo(ctx, input.Attachments[0], input.Prompt, duration)

	default:
		return uc.videoGen.GenerateVideo(ctx, input.Prompt, duration)
	}
}
