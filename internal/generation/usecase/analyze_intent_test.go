package usecase

import (
	"context"
	"errors"
	"os"
	"testing"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/intent"
	"generative-media-agent/internal/model"
)

func TestAnalyzeIntent_RuleBasedWhenReplyIsProse(t *testing.T) {
	chat := newChatBackend(t, "抱歉，我只能用文字回答。")
	defer chat.Close()

	uc := newTestUseCase(t, newTestClients(chat.URL, "", ""), nil)

	out, err := uc.AnalyzeIntent(context.Background(), model.Scope{SessionID: "s1"}, generation.AnalyzeIntentInput{
		Message: "幫我畫一隻貓",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Intent.TaskType != intent.TaskTypeTextToImage {
		t.Errorf("TaskType = %s, want text_to_image", out.Intent.TaskType)
	}
	if out.Intent.Prompt != "一隻貓" {
		t.Errorf("Prompt = %q", out.Intent.Prompt)
	}
	if !out.Validation.Valid {
		t.Errorf("expected valid classification, errors: %q", out.Validation.Errors)
	}
	if len(out.Plan) != 1 {
		t.Errorf("expected 1 plan step, got %d", len(out.Plan))
	}
	if out.OriginalMessage != "幫我畫一隻貓" {
		t.Errorf("OriginalMessage = %q", out.OriginalMessage)
	}
}

func TestAnalyzeIntent_LLMOverride(t *testing.T) {
	chat := newChatBackend(t, `{"taskType":"text_to_video","prompt":"海邊日落","fileCount":0,"reasoning":"用戶想要動態畫面"}`)
	defer chat.Close()

	uc := newTestUseCase(t, newTestClients(chat.URL, "", ""), nil)

	out, err := uc.AnalyzeIntent(context.Background(), model.Scope{}, generation.AnalyzeIntentInput{
		Message: "幫我畫一個海邊日落",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Intent.TaskType != intent.TaskTypeTextToVideo {
		t.Errorf("TaskType = %s, want text_to_video override", out.Intent.TaskType)
	}
	if out.Intent.Prompt != "海邊日落" {
		t.Errorf("Prompt = %q, want override prompt", out.Intent.Prompt)
	}
	if out.Intent.Reasoning != "用戶想要動態畫面" {
		t.Errorf("Reasoning = %q, want override reasoning", out.Intent.Reasoning)
	}
}

func TestAnalyzeIntent_UnknownOverrideTypeIgnored(t *testing.T) {
	chat := newChatBackend(t, `{"taskType":"make_a_song","prompt":"x","reasoning":"y"}`)
	defer chat.Close()

	uc := newTestUseCase(t, newTestClients(chat.URL, "", ""), nil)

	out, err := uc.AnalyzeIntent(context.Background(), model.Scope{}, generation.AnalyzeIntentInput{
		Message: "幫我畫一隻貓",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent.TaskType != intent.TaskTypeTextToImage {
		t.Errorf("unknown reply type must keep rule-based result, got %s", out.Intent.TaskType)
	}
}

func TestAnalyzeIntent_LLMFailureFallsBack(t *testing.T) {
	chat := newChatFailureBackend(t)
	defer chat.Close()

	uc := newTestUseCase(t, newTestClients(chat.URL, "", ""), nil)

	out, err := uc.AnalyzeIntent(context.Background(), model.Scope{}, generation.AnalyzeIntentInput{
		Message: "生成一段海邊的視頻",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent.TaskType != intent.TaskTypeTextToVideo {
		t.Errorf("TaskType = %s, want rule-based text_to_video", out.Intent.TaskType)
	}
}

func TestAnalyzeIntent_BatchStaysRuleBased(t *testing.T) {
	chat := newChatBackend(t, `{"taskType":"image_to_image","prompt":"x","reasoning":"y"}`)
	defer chat.Close()

	uc := newTestUseCase(t, newTestClients(chat.URL, "", ""), nil)

	out, err := uc.AnalyzeIntent(context.Background(), model.Scope{}, generation.AnalyzeIntentInput{
		Message:     "生成四張 場景一：白天 場景二：夜晚",
		Attachments: [][]byte{testPNG},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Intent.TaskType != intent.TaskTypeBatchImageGeneration {
		t.Fatalf("TaskType = %s, want batch_image_generation", out.Intent.TaskType)
	}
	if len(out.Plan) != 2 {
		t.Errorf("expected 2 batch steps, got %d", len(out.Plan))
	}
	if len(out.AttachmentRefs) != 1 {
		t.Fatalf("expected 1 saved attachment, got %d", len(out.AttachmentRefs))
	}

	saved, err := os.ReadFile(out.AttachmentRefs[0])
	if err != nil {
		t.Fatalf("saved attachment unreadable: %v", err)
	}
	if string(saved) != string(testPNG) {
		t.Errorf("saved attachment bytes mismatch")
	}
}

func TestAnalyzeIntent_EmptyInput(t *testing.T) {
	uc := newTestUseCase(t, testClients{}, nil)

	_, err := uc.AnalyzeIntent(context.Background(), model.Scope{}, generation.AnalyzeIntentInput{})
	if !errors.Is(err, generation.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestAnalyzeIntent_NoLLMConfigured(t *testing.T) {
	uc := newTestUseCase(t, testClients{}, nil)

	out, err := uc.AnalyzeIntent(context.Background(), model.Scope{}, generation.AnalyzeIntentInput{
		Message: "幫我畫一隻貓",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent.TaskType != intent.TaskTypeTextToImage {
		t.Errorf("TaskType = %s", out.Intent.TaskType)
	}
}
