package usecase

import (
	"context"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/model"
)

func (uc *implUseCase) TaskDetail(ctx context.Context, sc model.Scope, taskID string) (generation.TaskDetailOutput, error) {
	record, err := uc.repo.GetTask(ctx, taskID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.TaskDetail: %v", err)
		return generation.TaskDetailOutput{}, err
	}

	return generation.TaskDetailOutput{Task: record}, nil
}
