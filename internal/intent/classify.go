package intent

import (
	"fmt"
	"strings"
)

// Classify maps a free-form message plus attachment count to a task type with
// extracted prompt, parameters, a reasoning trace, and a confidence score.
// It is a pure function: no I/O, no state, never fails — ambiguous input
// resolves to a default branch depending on the attachment count.
func Classify(message string, fileCount int) Result {
	lower := strings.ToLower(message)
	taskType := determineTaskType(lower, fileCount)

	return Result{
		TaskType:   taskType,
		Prompt:     ExtractPrompt(message),
		FileCount:  fileCount,
		Reasoning:  buildReasoning(taskType, message, fileCount),
		Parameters: ExtractParameters(message),
		Confidence: Score(message, fileCount, taskType),
	}
}

// determineTaskType walks the decision table in priority order; first match
// wins. The message must already be case-folded.
func determineTaskType(message string, fileCount int) TaskType {
	// Batch generation takes priority: one reference image plus either a
	// batch-count marker or explicit scene labels.
	if fileCount == 1 && (hasBatchKeyword(message) || hasSceneLabel(message)) {
		return TaskTypeBatchImageGeneration
	}

	hasVideo := containsAny(message, videoGenKeywords)

	switch {
	case fileCount == 0:
		if hasVideo {
			return TaskTypeTextToVideo
		}
		return TaskTypeTextToImage

	case fileCount == 1:
		if hasVideo {
			return TaskTypeImageToVideo
		}
		if containsAny(message, imageTransformKeywords) || containsAny(message, imageGenKeywords) {
			return TaskTypeImageToImage
		}
		// Fallback branch re-checks the video keyword before defaulting.
		if hasVideo {
			return TaskTypeImageToVideo
		}
		return TaskTypeImageToImage

	case fileCount == 2:
		if containsAny(message, interpolationKeywords) ||
			strings.Contains(message, "首") || strings.Contains(message, "尾") {
			return TaskTypeFirstToLastFrame
		}
		return TaskTypeImageToImage

	default:
		return TaskTypeImageToImage
	}
}

// buildReasoning produces the human-readable trace of which rules fired.
func buildReasoning(taskType TaskType, message string, fileCount int) string {
	var reasons []string

	if fileCount == 0 {
		reasons = append(reasons, "未上傳文件")
	} else {
		reasons = append(reasons, fmt.Sprintf("上傳了 %d 個文件", fileCount))
	}

	if taskType == TaskTypeBatchImageGeneration {
		reasons = append(reasons, "包含批量生成關鍵詞（四張/四個/場景等）")
		reasons = append(reasons, "需要參考圖片生成多個不同場景")
	}

	lower := strings.ToLower(message)
	if strings.Contains(message, "視頻") || strings.Contains(lower, "video") {
		reasons = append(reasons, "消息中包含視頻相關詞彙")
	}
	if strings.Contains(message, "圖片") || strings.Contains(lower, "image") {
		reasons = append(reasons, "消息中包含圖片相關詞彙")
	}
	if strings.Contains(message, "首尾") || strings.Contains(message, "插值") {
		reasons = append(reasons, "消息中包含插值相關詞彙")
	}

	return fmt.Sprintf("判斷為 %s，因為: %s", taskType, strings.Join(reasons, "、"))
}
