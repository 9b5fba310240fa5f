package intent

import "strings"

// Validate checks whether the message and attachment count satisfy the
// preconditions of the given task type. Every applicable rule is evaluated;
// each failing rule appends its message, so callers can surface all problems
// at once.
func Validate(taskType TaskType, message string, fileCount int) ValidationResult {
	var errs []string
	trimmed := strings.TrimSpace(message)

	switch taskType {
	case TaskTypeBatchImageGeneration:
		if fileCount == 0 {
			errs = append(errs, "批量圖生圖需要上傳1張參考圖片")
		}
		if len([]rune(trimmed)) < 10 {
			errs = append(errs, "請提供詳細的場景描述（至少10個字符）")
		}
		if !hasSceneLabel(message) {
			errs = append(errs, "請用\"場景一\"、\"場景二\"等格式描述各個場景")
		}

	case TaskTypeTextToImage:
		if len([]rune(trimmed)) < 3 {
			errs = append(errs, "請提供有效的圖片描述（至少3個字符）")
		}

	case TaskTypeImageToImage:
		if fileCount == 0 {
			errs = append(errs, "圖生圖需要上傳至少1張圖片")
		}
		if message == "" {
			errs = append(errs, "請說明要如何處理圖片")
		}

	case TaskTypeImageToVideo:
		if fileCount == 0 {
			errs = append(errs, "圖生視頻需要上傳1張圖片")
		}

	case TaskTypeFirstToLastFrame:
		if fileCount < 2 {
			errs = append(errs, "首尾幀插值需要上傳2張圖片")
		}

	case TaskTypeTextToVideo:
		if len([]rune(trimmed)) < 5 {
			errs = append(errs, "請提供有效的視頻描述（至少5個字符）")
		}
	}

	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
