package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/generation/repository"
	"generative-media-agent/internal/model"
	"generative-media-agent/pkg/gemini"
	"generative-media-agent/pkg/imagegen"
	"generative-media-agent/pkg/videogen"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}

// Mock memory repository for testing
type mockRepository struct {
	mu            sync.Mutex
	conversations map[string][]model.ConversationRecord
	tasks         map[string]model.TaskRecord
	prefs         map[string]model.UserPreferences
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		conversations: map[string][]model.ConversationRecord{},
		tasks:         map[string]model.TaskRecord{},
		prefs:         map[string]model.UserPreferences{},
	}
}

func (m *mockRepository) AppendConversation(ctx context.Context, opt repository.AppendConversationOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversations[opt.SessionID] = append(m.conversations[opt.SessionID], model.ConversationRecord{
		Timestamp: time.Now().Format(time.RFC3339),
		UserInput: opt.UserInput,
		Response:  opt.Response,
		Metadata:  opt.Metadata,
	})
	return nil
}

func (m *mockRepository) ConversationHistory(ctx context.Context, opt repository.HistoryOptions) ([]model.ConversationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records := m.conversations[opt.SessionID]
	limit := opt.Limit
	if limit <= 0 {
		limit = 10
	}
	if len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}

func (m *mockRepository) ClearSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conversations, sessionID)
	return nil
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.TaskRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record := model.TaskRecord{
		ID:       opt.ID,
		TaskType: opt.TaskType,
		Prompt:   opt.Prompt,
		Status:   opt.Status,
	}
	m.tasks[opt.ID] = record
	return record, nil
}

func (m *mockRepository) UpdateTaskStatus(ctx context.Context, opt repository.UpdateTaskStatusOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.tasks[opt.ID]
	if !ok {
		return generation.ErrTaskNotFound
	}
	record.Status = opt.Status
	record.Result = opt.Result
	m.tasks[opt.ID] = record
	return nil
}

func (m *mockRepository) GetTask(ctx context.Context, id string) (model.TaskRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.tasks[id]
	if !ok {
		return model.TaskRecord{}, generation.ErrTaskNotFound
	}
	return record, nil
}

func (m *mockRepository) Preferences(ctx context.Context, userID string) (model.UserPreferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefs, ok := m.prefs[userID]
	if !ok {
		return model.DefaultPreferences(), nil
	}
	return prefs, nil
}

func (m *mockRepository) UpdatePreferences(ctx context.Context, userID string, prefs model.UserPreferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[userID] = prefs
	return nil
}

func (m *mockRepository) Statistics(ctx context.Context) (repository.Statistics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return repository.Statistics{
		TotalConversations: len(m.conversations),
		TotalTasks:         len(m.tasks),
		TotalUsers:         len(m.prefs),
	}, nil
}

// singleTask returns the only recorded task. Fails the test otherwise.
func (m *mockRepository) singleTask(t *testing.T) model.TaskRecord {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.tasks) != 1 {
		t.Fatalf("expected 1 task record, got %d", len(m.tasks))
	}
	for _, record := range m.tasks {
		return record
	}
	return model.TaskRecord{}
}

var testPNG = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 9, 9}

func repositoryAppendOption(sessionID string, i int) repository.AppendConversationOptions {
	return repository.AppendConversationOptions{
		SessionID: sessionID,
		UserInput: fmt.Sprintf("input-%d", i),
		Response:  fmt.Sprintf("response-%d", i),
	}
}

// newImageBackend serves Gemini-shaped image generation responses. A
// prompt containing "fail_auth" gets a 401.
func newImageBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := make([]byte, r.ContentLength)
		r.Body.Read(body)
		if strings.Contains(string(body), "fail_auth") {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":{"message":"invalid api key"}}`)
			return
		}
		encoded := base64.StdEncoding.EncodeToString(testPNG)
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"inline_data":{"mime_type":"image/png","data":"%s"}}]}}]}`, encoded)
	}))
}

// newVideoBackend serves a predictLongRunning flow that finishes on the
// first poll.
func newVideoBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, ":predictLongRunning") {
			fmt.Fprint(w, `{"name":"operations/test-op","done":false}`)
			return
		}
		encoded := base64.StdEncoding.EncodeToString([]byte("fake-mp4"))
		fmt.Fprintf(w, `{"name":"operations/test-op","done":true,"response":{"generateVideoResponse":{"generatedSamples":[{"video":{"bytesBase64Encoded":"%s"}}]}}}`, encoded)
	}))
}

// newChatBackend answers every prompt with the given text.
func newChatBackend(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	resp := fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, reply)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, resp)
	}))
}

func newChatFailureBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key"}}`)
	}))
}

type testClients struct {
	llm      *gemini.Client
	imageGen *imagegen.Client
	videoGen *videogen.Client
}

func newTestClients(llmURL, imageURL, videoURL string) testClients {
	clients := testClients{}
	if llmURL != "" {
		clients.llm = gemini.NewClient("test-key")
		clients.llm.SetAPIURL(llmURL)
	}
	if imageURL != "" {
		clients.imageGen = imagegen.NewClient("test-key")
		clients.imageGen.SetAPIURL(imageURL)
	}
	if videoURL != "" {
		clients.videoGen = videogen.NewClient("test-key")
		clients.videoGen.SetAPIURL(videoURL)
		clients.videoGen.SetPollInterval(time.Millisecond)
		clients.videoGen.SetTimeout(time.Second)
		clients.videoGen.SetRequestsPerMin(6000)
	}
	return clients
}

func newTestUseCase(t *testing.T, clients testClients, repo repository.MemoryRepository) *implUseCase {
	t.Helper()
	if repo == nil {
		repo = newMockRepository()
	}
	return New(&mockLogger{}, clients.llm, clients.imageGen, clients.videoGen, repo, t.TempDir(), t.TempDir())
}
