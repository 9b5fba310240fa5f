package usecase

import (
	"context"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/generation/repository"
	"generative-media-agent/internal/model"
)

func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input generation.HistoryInput) (generation.HistoryOutput, error) {
	records, err := uc.repo.ConversationHistory(ctx, repository.HistoryOptions{
		SessionID: sessionID(sc),
		Limit:     input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History: %v", err)
		return generation.HistoryOutput{}, err
	}

	return generation.HistoryOutput{
		Records: records,
		Count:   len(records),
	}, nil
}
