package gemini

import (
	"fmt"
	"regexp"
)

// IntentAnalysisTemplate is the prompt sent to Gemini for intent analysis.
// The model is asked to return a bare JSON object.
const IntentAnalysisTemplate = `
分析以下用戶請求，判斷任務類型並提取關鍵參數。

用戶消息: %s
上傳文件數量: %d

請分析並以JSON格式返回以下信息：
{
    "taskType": "任務類型（text_to_image/image_to_image/image_to_video/text_to_video/first_to_last_frame）",
    "prompt": "提取的提示詞",
    "fileCount": %d,
    "reasoning": "判斷理由"
}

判斷規則：
1. 如果沒有上傳文件且用戶描述要生成圖片 -> text_to_image
2. 如果上傳了1張圖片且用戶要求修改/轉換 -> image_to_image
3. 如果上傳了1張圖片且用戶要求生成視頻/動畫 -> image_to_video
4. 如果上傳了2張圖片且用戶提到首尾/插值/過渡 -> first_to_last_frame
5. 如果沒有上傳文件且用戶描述要生成視頻 -> text_to_video
6. 如果上傳了多張圖片（>2）-> image_to_image

只返回JSON，不要有其他文字。
`

// BuildIntentPrompt builds the full intent analysis prompt for a user
// message and its attachment count.
func BuildIntentPrompt(message string, fileCount int) string {
	return fmt.Sprintf(IntentAnalysisTemplate, message, fileCount, fileCount)
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// FirstJSONObject extracts the first brace-delimited JSON object from a
// model reply, tolerating surrounding prose or markdown fences.
func FirstJSONObject(text string) (string, bool) {
	match := jsonObjectPattern.FindString(text)
	return match, match != ""
}
