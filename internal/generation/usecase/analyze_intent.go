package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"generative-media-agent/internal/generation"
	"generative-media-agent/internal/intent"
	"generative-media-agent/internal/model"
	"generative-media-agent/pkg/gemini"
)

// overridableTaskTypes are the task types the chat engine may answer
// with. Anything else in its reply keeps the rule-based result.
var overridableTaskTypes = map[string]intent.TaskType{
	"text_to_image":       intent.TaskTypeTextToImage,
	"image_to_image":      intent.TaskTypeImageToImage,
	"image_to_video":      intent.TaskTypeImageToVideo,
	"text_to_video":       intent.TaskTypeTextToVideo,
	"first_to_last_frame": intent.TaskTypeFirstToLastFrame,
}

func (uc *implUseCase) AnalyzeIntent(ctx context.Context, sc model.Scope, input generation.AnalyzeIntentInput) (generation.AnalyzeIntentOutput, error) {
	if strings.TrimSpace(input.Message) == "" && len(input.Attachments) == 0 {
		return generation.AnalyzeIntentOutput{}, generation.ErrEmptyMessage
	}

	fileCount := len(input.Attachments)
	result := intent.Classify(input.Message, fileCount)

	// The chat engine refines non-batch classifications when it answers
	// with parseable JSON. Batch stays rule-based: the engine's answer
	// schema cannot express it.
	if uc.llm != nil && result.TaskType != intent.TaskTypeBatchImageGeneration {
		uc.refineWithLLM(ctx, input.Message, fileCount, &result)
	}

	validation := intent.Validate(result.TaskType, input.Message, fileCount)

	refs, err := uc.saveAttachments(input.Attachments)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AnalyzeIntent: save attachments: %v", err)
		return generation.AnalyzeIntentOutput{}, err
	}

	plan, err := intent.Plan(result, refs)
	if err != nil {
		if !errors.Is(err, intent.ErrNoScenes) {
			return generation.AnalyzeIntentOutput{}, err
		}
		uc.l.Warnf(ctx, "uc.AnalyzeIntent: batch prompt has no parseable scenes")
	}

	uc.l.Infof(ctx, "intent analysis: session=%s type=%s files=%d confidence=%.2f",
		sessionID(sc), result.TaskType, fileCount, result.Confidence)

	return generation.AnalyzeIntentOutput{
		Intent:          result,
		Validation:      validation,
		Plan:            plan,
		AttachmentRefs:  refs,
		OriginalMessage: input.Message,
	}, nil
}

// refineWithLLM asks the chat engine to classify the message and folds
// a parseable answer into the rule-based result. Failures fall through
// silently: the rule-based result already stands.
func (uc *implUseCase) refineWithLLM(ctx context.Context, message string, fileCount int, result *intent.Result) {
	prompt := gemini.BuildIntentPrompt(message, fileCount)

	text, err := uc.llm.GenerateText(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "intent analysis LLM call failed, keeping rule-based result: %v", err)
		return
	}

	raw, ok := gemini.FirstJSONObject(text)
	if !ok {
		uc.l.Warnf(ctx, "intent analysis reply carried no JSON, keeping rule-based result")
		return
	}

	var parsed gemini.ParsedIntent
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		uc.l.Warnf(ctx, "intent analysis reply did not parse, keeping rule-based result: %v", err)
		return
	}

	taskType, known := overridableTaskTypes[parsed.TaskType]
	if !known {
		return
	}

	result.TaskType = taskType
	if parsed.Prompt != "" {
		result.Prompt = parsed.Prompt
	}
	if parsed.Reasoning != "" {
		result.Reasoning = parsed.Reasoning
	}
}
