package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/generation/repository"
	"generative-media-agent/internal/model"
	pkgLog "generative-media-agent/pkg/log"
)

const (
	// maxSessionRecords caps how many conversation turns a session keeps.
	maxSessionRecords = 100

	// defaultHistoryLimit is returned when the caller does not ask for a
	// specific record count.
	defaultHistoryLimit = 10
)

// memoryState is the on-disk shape of the memory file.
type memoryState struct {
	Conversations   map[string][]model.ConversationRecord `json:"conversations"`
	Tasks           map[string]model.TaskRecord           `json:"tasks"`
	UserPreferences map[string]model.UserPreferences      `json:"user_preferences"`
	LastUpdated     string                                `json:"last_updated"`
}

type implRepository struct {
	mu    sync.Mutex
	path  string
	state memoryState
	l     pkgLog.Logger
}

// New creates a JSON-file backed memory repository. An existing file is
// loaded; a missing or unreadable file starts an empty store.
func New(path string, l pkgLog.Logger) repository.MemoryRepository {
	r := &implRepository{
		path: path,
		l:    l,
	}
	r.state = r.load()
	return r
}

func (r *implRepository) load() memoryState {
	empty := memoryState{
		Conversations:   map[string][]model.ConversationRecord{},
		Tasks:           map[string]model.TaskRecord{},
		UserPreferences: map[string]model.UserPreferences{},
		LastUpdated:     time.Now().Format(time.RFC3339),
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return empty
	}

	var state memoryState
	if err := json.Unmarshal(raw, &state); err != nil {
		r.l.Errorf(context.Background(), "jsonfile repository: failed to parse %s, starting empty: %v", r.path, err)
		return empty
	}

	if state.Conversations == nil {
		state.Conversations = map[string][]model.ConversationRecord{}
	}
	if state.Tasks == nil {
		state.Tasks = map[string]model.TaskRecord{}
	}
	if state.UserPreferences == nil {
		state.UserPreferences = map[string]model.UserPreferences{}
	}
	return state
}

// save persists the current state. Callers must hold the mutex.
func (r *implRepository) save(ctx context.Context) {
	r.state.LastUpdated = time.Now().Format(time.RFC3339)

	raw, err := json.MarshalIndent(r.state, "", "  ")
	if err != nil {
		r.l.Errorf(ctx, "jsonfile repository: failed to marshal state: %v", err)
		return
	}

	if dir := filepath.Dir(r.path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		r.l.Errorf(ctx, "jsonfile repository: failed to write %s: %v", r.path, err)
	}
}

func (r *implRepository) AppendConversation(ctx context.Context, opt repository.AppendConversationOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := append(r.state.Conversations[opt.SessionID], model.ConversationRecord{
		Timestamp: time.Now().Format(time.RFC3339),
		UserInput: opt.UserInput,
		Response:  opt.Response,
		Metadata:  opt.Metadata,
	})
	if len(records) > maxSessionRecords {
		records = records[len(records)-maxSessionRecords:]
	}
	r.state.Conversations[opt.SessionID] = records

	r.save(ctx)
	return nil
}

func (r *implRepository) ConversationHistory(ctx context.Context, opt repository.HistoryOptions) ([]model.ConversationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := opt.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records := r.state.Conversations[opt.SessionID]
	if len(records) > limit {
		records = records[len(records)-limit:]
	}

	out := make([]model.ConversationRecord, len(records))
	copy(out, records)
	return out, nil
}

func (r *implRepository) ClearSession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.state.Conversations[sessionID]; !ok {
		return nil
	}
	delete(r.state.Conversations, sessionID)
	r.save(ctx)
	return nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.TaskRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := opt.Status
	if status == "" {
		status = model.TaskStatusPending
	}

	now := time.Now().Format(time.RFC3339)
	record := model.TaskRecord{
		ID:        opt.ID,
		TaskType:  opt.TaskType,
		Prompt:    opt.Prompt,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.state.Tasks[record.ID] = record

	r.save(ctx)
	return record, nil
}

func (r *implRepository) UpdateTaskStatus(ctx context.Context, opt repository.UpdateTaskStatusOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.state.Tasks[opt.ID]
	if !ok {
		return generation.ErrTaskNotFound
	}

	record.Status = opt.Status
	record.UpdatedAt = time.Now().Format(time.RFC3339)
	if opt.Result != nil {
		record.Result = opt.Result
	}
	r.state.Tasks[opt.ID] = record

	r.save(ctx)
	return nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.TaskRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.state.Tasks[id]
	if !ok {
		return model.TaskRecord{}, generation.ErrTaskNotFound
	}
	return record, nil
}

func (r *implRepository) Preferences(ctx context.Context, userID string) (model.UserPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefs, ok := r.state.UserPreferences[userID]
	if !ok {
		return model.DefaultPreferences(), nil
	}
	return prefs, nil
}

func (r *implRepository) UpdatePreferences(ctx context.Context, userID string, prefs model.UserPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.UserPreferences[userID] = prefs
	r.save(ctx)
	return nil
}

func (r *implRepository) Statistics(ctx context.Context) (repository.Statistics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return repository.Statistics{
		TotalConversations: len(r.state.Conversations),
		TotalTasks:         len(r.state.Tasks),
		TotalUsers:         len(r.state.UserPreferences),
		LastUpdated:        r.state.LastUpdated,
	}, nil
}
