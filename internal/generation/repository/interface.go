package repository

import (
	"context"

	"generative-media-agent/internal/model"
)

// MemoryRepository is the interface for session memory data access.
type MemoryRepository interface {
	AppendConversation(ctx context.Context, opt AppendConversationOptions) error
	ConversationHistory(ctx context.Context, opt HistoryOptions) ([]model.ConversationRecord, error)
	ClearSession(ctx context.Context, sessionID string) error

	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.TaskRecord, error)
	UpdateTaskStatus(ctx context.Context, opt UpdateTaskStatusOptions) error
	GetTask(ctx context.Context, id string) (model.TaskRecord, error)

	Preferences(ctx context.Context, userID string) (model.UserPreferences, error)
	UpdatePreferences(ctx context.Context, userID string, prefs model.UserPreferences) error

	Statistics(ctx context.Context) (Statistics, error)
}

// Statistics summarizes what the memory store currently holds.
type Statistics struct {
	TotalConversations int    `json:"total_conversations"`
	TotalTasks         int    `json:"total_tasks"`
	TotalUsers         int    `json:"total_users"`
	LastUpdated        string `json:"last_updated"`
}
