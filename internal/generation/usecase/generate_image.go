package usecase

import (
	"context"
	"fmt"
	"strings"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/generation/repository"
	"generative-media-agent/internal/model"
	"generative-media-agent/pkg/imagegen"
	"generative-media-agent/pkg/retry"
)

func (uc *implUseCase) GenerateImage(ctx context.Context, sc model.Scope, input generation.GenerateImageInput) (generation.GenerateImageOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return generation.GenerateImageOutput{}, generation.ErrEmptyPrompt
	}
	if uc.imageGen == nil {
		return generation.GenerateImageOutput{}, fmt.Errorf("%w: image backend", generation.ErrBackendNotConfigured)
	}

	uc.l.Infof(ctx, "text-to-image request: %s", input.Prompt)

	var result *imagegen.Result
	err := retry.Do(ctx, func(ctx context.Context) error {
		var genErr error
		result, genErr = uc.imageGen.TextToImage(ctx, input.Prompt)
		return genErr
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateImage: %v", err)
		return generation.GenerateImageOutput{}, err
	}

	file, err := uc.writeOutput("image", "png", result.ImageData)
	if err != nil {
		return generation.GenerateImageOutput{}, err
	}

	if err := uc.repo.AppendConversation(ctx, repository.AppendConversationOptions{
		SessionID: sessionID(sc),
		UserInput: input.Prompt,
		Response:  "已經完成 " + file,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.GenerateImage: record conversation: %v", err)
	}

	return generation.GenerateImageOutput{
		File:   file,
		Prompt: input.Prompt,
		Model:  result.Model,
	}, nil
}
