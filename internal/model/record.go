package model

// ConversationRecord is one appended entry in a session's conversation log.
type ConversationRecord struct {
	Timestamp string         `json:"timestamp"` // RFC3339
	UserInput string         `json:"user_input"`
	Response  string         `json:"response"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// TaskStatus is the lifecycle state of a generation task record.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
)

// TaskRecord is a persisted record of one executed generation task.
type TaskRecord struct {
	ID        string     `json:"id"`
	TaskType  string     `json:"task_type"`
	Prompt    string     `json:"prompt"`
	Status    TaskStatus `json:"status"`
	Result    any        `json:"result,omitempty"`
	CreatedAt string     `json:"created_at"` // RFC3339
	UpdatedAt string     `json:"updated_at"` // RFC3339
}

// UserPreferences holds per-user generation defaults.
type UserPreferences struct {
	ImageSize     string `json:"image_size"`
	ImageStyle    string `json:"image_style"`
	VideoDuration int    `json:"video_duration"`
	Provider      string `json:"provider"`
}

// DefaultPreferences returns the defaults applied when a user has no stored preferences.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		ImageSize:     "1024x1024",
		ImageStyle:    "realistic",
		VideoDuration: 5,
		Provider:      "veo",
	}
}
