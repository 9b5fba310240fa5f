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

func (uc *implUseCase) TransformImage(ctx context.Context, sc model.Scope, input generation.TransformImageInput) (generation.TransformImageOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return generation.TransformImageOutput{}, generation.ErrEmptyPrompt
	}
	if len(input.Attachments) == 0 {
		return generation.TransformImageOutput{}, generation.ErrMissingImage
	}
	if uc.imageGen == nil {
		return generation.TransformImageOutput{}, fmt.Errorf("%w: image backend", generation.ErrBackendNotConfigured)
	}

	uc.l.Infof(ctx, "image-to-image request: %s, references: %d", input.Prompt, len(input.Attachments))

	var result *imagegen.Result
	err := retry.Do(ctx, func(ctx context.Context) error {
		var genErr error
		result, genErr = uc.imageGen.ImageWithReference(ctx, input.Prompt, input.Attachments)
		return genErr
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.TransformImage: %v", err)
		return generation.TransformImageOutput{}, err
	}

	file, err := uc.writeOutput("transformed", "png", result.ImageData)
	if err != nil {
		return generation.TransformImageOutput{}, err
	}

	if err := uc.repo.AppendConversation(ctx, repository.AppendConversationOptions{
		SessionID: sessionID(sc),
		UserInput: input.Prompt,
		Response:  "已經完成 " + file,
		Metadata:  map[string]any{"reference_count": len(input.Attachments)},
	}); err != nil {
		uc.l.Errorf(ctx, "uc.TransformImage: record conversation: %v", err)
	}

	return generation.TransformImageOutput{
		File:           file,
		Prompt:         input.Prompt,
		Model:          result.Model,
		ReferenceCount: len(input.Attachments),
	}, nil
}
