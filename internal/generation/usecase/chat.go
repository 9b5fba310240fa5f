package usecase

import (
	"context"
	"fmt"
	"strings"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/generation/repository"
	"generative-media-agent/internal/model"
	"generative-media-agent/pkg/retry"
)

func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input generation.ChatInput) (generation.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return generation.ChatOutput{}, generation.ErrEmptyMessage
	}
	if uc.llm == nil {
		return generation.ChatOutput{}, fmt.Errorf("%w: chat engine", generation.ErrBackendNotConfigured)
	}

	var reply string
	err := retry.Do(ctx, func(ctx context.Context) error {
		var chatErr error
		reply, chatErr = uc.llm.GenerateText(ctx, input.Message)
		return chatErr
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat: %v", err)
		return generation.ChatOutput{}, err
	}

	if err := uc.repo.AppendConversation(ctx, repository.AppendConversationOptions{
		SessionID: sessionID(sc),
		UserInput: input.Message,
		Response:  reply,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Chat: record conversation: %v", err)
	}

	return generation.ChatOutput{Response: reply}, nil
}
