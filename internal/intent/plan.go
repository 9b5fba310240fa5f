package intent

import "fmt"

// descriptionRuneLimit truncates scene text in step descriptions.
const descriptionRuneLimit = 50

// Plan turns a classification result into an ordered sequence of executable
// steps. Non-batch tasks yield exactly one step carrying the extracted
// parameters; batch generation expands into one image_to_image step per
// parsed scene, every step sharing the same attachment refs.
func Plan(res Result, attachmentRefs []string) ([]Step, error) {
	if res.TaskType == TaskTypeBatchImageGeneration {
		return planBatch(res, attachmentRefs)
	}

	return []Step{{
		Step:   1,
		Action: res.TaskType,
		Parameters: StepParameters{
			Prompt:         res.Prompt,
			AttachmentRefs: attachmentRefs,
			Duration:       res.Parameters.Duration,
			Size:           res.Parameters.Size,
			Style:          res.Parameters.Style,
		},
		Description: actionDescription(res.TaskType),
	}}, nil
}

func planBatch(res Result, attachmentRefs []string) ([]Step, error) {
	scenes := SplitScenes(res.Prompt)
	if len(scenes) == 0 {
		return []Step{}, ErrNoScenes
	}

	steps := make([]Step, 0, len(scenes))
	for i, scene := range scenes {
		steps = append(steps, Step{
			Step:   i + 1,
			Action: TaskTypeImageToImage,
			Parameters: StepParameters{
				Prompt:         scene,
				AttachmentRefs: attachmentRefs,
				IsBatch:        true,
				BatchIndex:     i + 1,
				TotalBatches:   len(scenes),
			},
			Description: fmt.Sprintf("生成第%d張場景圖：%s...", i+1, truncateRunes(scene, descriptionRuneLimit)),
		})
	}
	return steps, nil
}

func actionDescription(taskType TaskType) string {
	switch taskType {
	case TaskTypeTextToImage:
		return "根據文字描述生成圖片"
	case TaskTypeImageToImage:
		return "轉換/編輯上傳的圖片"
	case TaskTypeImageToVideo:
		return "將圖片轉換為動態視頻"
	case TaskTypeTextToVideo:
		return "根據文字描述生成視頻"
	case TaskTypeFirstToLastFrame:
		return "使用首尾兩幀生成完整視頻（插值）"
	case TaskTypeBatchImageGeneration:
		return "參考圖片批量生成多張場景圖片"
	default:
		return "執行未知任務"
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
