package repository

import (
	"generative-media-agent/internal/model"
)

// AppendConversationOptions holds the parameters for recording one
// conversation turn.
type AppendConversationOptions struct {
	SessionID string
	UserInput string
	Response  string
	Metadata  map[string]any
}

// HistoryOptions holds the parameters for reading conversation history.
type HistoryOptions struct {
	SessionID string
	Limit     int // default 10
}

// CreateTaskOptions holds the parameters for creating a task record.
type CreateTaskOptions struct {
	ID       string
	TaskType string
	Prompt   string
	Status   model.TaskStatus // default pending
}

// UpdateTaskStatusOptions holds the parameters for a task status change.
type UpdateTaskStatusOptions struct {
	ID     string
	Status model.TaskStatus
	Result any // optional, stored when non-nil
}
