package intent

import "strings"

// Keyword tables for rule-based classification. Matching is case-folded
// substring containment over fixed lists covering both Chinese and English
// terms; a short keyword may match inside a longer word, which is accepted
// behavior for this rule set.
var (
	imageGenKeywords = []string{
		"生成圖片", "畫", "繪製", "創建圖像", "圖片", "插畫",
		"image", "picture", "photo",
	}

	imageTransformKeywords = []string{
		"修改", "轉換", "改變", "調整", "編輯",
		"transform", "modify", "edit", "change",
	}

	videoGenKeywords = []string{
		"視頻", "影片", "動畫", "動態",
		"video", "animation", "motion",
	}

	interpolationKeywords = []string{
		"首尾", "插值", "過渡", "中間幀",
		"interpolate", "transition", "morph",
	}

	// batchKeywords flag a request for multiple images from one reference.
	batchKeywords = []string{
		"四張", "四個", "4張", "4個", "four", "4",
		"多張", "多個", "batch", "生成四", "create four",
	}

	// batchCountKeywords is the subset counted toward batch confidence.
	batchCountKeywords = []string{
		"四張", "四個", "4張", "4個", "four", "4",
		"多張", "多個", "batch",
	}

	// sceneLabelKeywords mark explicitly numbered scene descriptions.
	sceneLabelKeywords = []string{
		"場景一", "場景二", "場景三", "場景四",
		"第一張", "第二張", "第三張", "第四張",
	}
)

// containsAny reports whether any keyword appears as a substring of s.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func hasBatchKeyword(message string) bool {
	return containsAny(strings.ToLower(message), batchKeywords)
}

func hasSceneLabel(message string) bool {
	return containsAny(message, sceneLabelKeywords)
}
