package intent

import "strings"

// baseConfidence is the score before any lexical evidence is counted.
const baseConfidence = 0.5

// Score combines keyword matches and attachment-count fit into a heuristic
// confidence in [0.0, 1.0]. It is not a calibrated probability; bonuses are
// additive and the result is capped at 1.0. image_to_image and text_to_video
// receive no bonuses in the current rule set.
func Score(message string, fileCount int, taskType TaskType) float64 {
	confidence := baseConfidence

	switch taskType {
	case TaskTypeBatchImageGeneration:
		if containsAny(strings.ToLower(message), batchCountKeywords) {
			confidence += 0.4
		}
		if hasSceneLabel(message) {
			confidence += 0.3
		}
		if fileCount == 1 {
			confidence += 0.2
		}

	case TaskTypeTextToImage:
		if containsAny(message, imageGenKeywords) {
			confidence += 0.3
		}

	case TaskTypeImageToVideo:
		if containsAny(message, videoGenKeywords) {
			confidence += 0.3
		}

	case TaskTypeFirstToLastFrame:
		if containsAny(message, interpolationKeywords) {
			confidence += 0.4
		}
	}

	if taskType == TaskTypeFirstToLastFrame && fileCount == 2 {
		confidence += 0.2
	}

	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}
