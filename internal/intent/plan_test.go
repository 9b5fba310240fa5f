package intent_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"generative-media-agent/internal/intent"
)

func TestPlanSingleStep(t *testing.T) {
	res := intent.Classify("把這張圖轉成 7秒 的動畫", 1)
	refs := []string{"uploads/a.png"}

	steps, err := intent.Plan(res, refs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}

	step := steps[0]
	if step.Step != 1 {
		t.Errorf("Step = %d, want 1", step.Step)
	}
	if step.Action != intent.TaskTypeImageToVideo {
		t.Errorf("Action = %s, want %s", step.Action, intent.TaskTypeImageToVideo)
	}
	if !reflect.DeepEqual(step.Parameters.AttachmentRefs, refs) {
		t.Errorf("AttachmentRefs = %v, want %v", step.Parameters.AttachmentRefs, refs)
	}
	if step.Parameters.Duration != 7 {
		t.Errorf("Duration = %d, want 7", step.Parameters.Duration)
	}
	if step.Parameters.IsBatch {
		t.Errorf("single step must not be marked batch")
	}
	if step.Description == "" {
		t.Errorf("missing description")
	}
}

func TestPlanBatch(t *testing.T) {
	prompt := "場景一：貓在跳舞 場景二：狗在跑步 場景三：鳥在唱歌 場景四：魚在游泳"
	res := intent.Classify(prompt, 1)
	if res.TaskType != intent.TaskTypeBatchImageGeneration {
		t.Fatalf("setup: expected batch classification, got %s", res.TaskType)
	}

	refs := []string{"uploads/ref.png"}
	steps, err := intent.Plan(res, refs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(steps))
	}

	for i, step := range steps {
		if step.Step != i+1 {
			t.Errorf("step %d: Step = %d, want %d", i, step.Step, i+1)
		}
		if step.Action != intent.TaskTypeImageToImage {
			t.Errorf("step %d: Action = %s, want image_to_image", i, step.Action)
		}
		if !step.Parameters.IsBatch {
			t.Errorf("step %d: IsBatch = false", i)
		}
		if step.Parameters.BatchIndex != i+1 {
			t.Errorf("step %d: BatchIndex = %d, want %d", i, step.Parameters.BatchIndex, i+1)
		}
		if step.Parameters.TotalBatches != 4 {
			t.Errorf("step %d: TotalBatches = %d, want 4", i, step.Parameters.TotalBatches)
		}
		if !reflect.DeepEqual(step.Parameters.AttachmentRefs, refs) {
			t.Errorf("step %d: AttachmentRefs = %v, want %v", i, step.Parameters.AttachmentRefs, refs)
		}
	}

	if steps[0].Parameters.Prompt != "貓在跳舞" {
		t.Errorf("first scene prompt = %q", steps[0].Parameters.Prompt)
	}
	if !strings.Contains(steps[0].Description, "生成第1張場景圖") {
		t.Errorf("unexpected description: %q", steps[0].Description)
	}
}

func TestPlanBatchDescriptionTruncated(t *testing.T) {
	long := strings.Repeat("長", 80)
	res := intent.Result{
		TaskType: intent.TaskTypeBatchImageGeneration,
		Prompt:   "場景一：" + long,
	}

	steps, err := intent.Plan(res, []string{"r"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}

	desc := []rune(steps[0].Description)
	// prefix 生成第1張場景圖： (9 runes) + 50 scene runes + trailing "..."
	if len(desc) != 9+50+3 {
		t.Errorf("description rune length = %d, want %d (%q)", len(desc), 9+50+3, steps[0].Description)
	}
}

func TestPlanBatchNoScenes(t *testing.T) {
	res := intent.Result{
		TaskType: intent.TaskTypeBatchImageGeneration,
		Prompt:   "一段沒有任何場景標記的描述",
	}

	steps, err := intent.Plan(res, []string{"r"})
	if !errors.Is(err, intent.ErrNoScenes) {
		t.Errorf("expected ErrNoScenes, got %v", err)
	}
	if len(steps) != 0 {
		t.Errorf("expected empty plan, got %d steps", len(steps))
	}
}
