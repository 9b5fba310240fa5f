package intent_test

import (
	"testing"

	"generative-media-agent/internal/intent"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		taskType  intent.TaskType
		message   string
		fileCount int
		wantValid bool
		wantErrs  int
	}{
		{
			name:      "batch with everything missing",
			taskType:  intent.TaskTypeBatchImageGeneration,
			message:   "",
			fileCount: 0,
			wantValid: false,
			wantErrs:  3,
		},
		{
			name:      "batch valid",
			taskType:  intent.TaskTypeBatchImageGeneration,
			message:   "場景一：貓在跳舞，場景二：狗在跑步",
			fileCount: 1,
			wantValid: true,
		},
		{
			name:      "batch missing scene labels only",
			taskType:  intent.TaskTypeBatchImageGeneration,
			message:   "生成四張不同場景的插畫圖片",
			fileCount: 1,
			wantValid: false,
			wantErrs:  1,
		},
		{
			name:      "text_to_image too short",
			taskType:  intent.TaskTypeTextToImage,
			message:   "貓 ",
			fileCount: 0,
			wantValid: false,
			wantErrs:  1,
		},
		{
			name:      "text_to_image valid",
			taskType:  intent.TaskTypeTextToImage,
			message:   "一隻橘貓",
			fileCount: 0,
			wantValid: true,
		},
		{
			name:      "image_to_image no file no message",
			taskType:  intent.TaskTypeImageToImage,
			message:   "",
			fileCount: 0,
			wantValid: false,
			wantErrs:  2,
		},
		{
			name:      "image_to_image valid",
			taskType:  intent.TaskTypeImageToImage,
			message:   "換個背景",
			fileCount: 1,
			wantValid: true,
		},
		{
			name:      "image_to_video needs a file",
			taskType:  intent.TaskTypeImageToVideo,
			message:   "動起來",
			fileCount: 0,
			wantValid: false,
			wantErrs:  1,
		},
		{
			name:      "first_to_last needs two files",
			taskType:  intent.TaskTypeFirstToLastFrame,
			message:   "插值",
			fileCount: 1,
			wantValid: false,
			wantErrs:  1,
		},
		{
			name:      "first_to_last valid",
			taskType:  intent.TaskTypeFirstToLastFrame,
			message:   "插值",
			fileCount: 2,
			wantValid: true,
		},
		{
			name:      "text_to_video too short",
			taskType:  intent.TaskTypeTextToVideo,
			message:   "海邊",
			fileCount: 0,
			wantValid: false,
			wantErrs:  1,
		},
		{
			name:      "text_to_video valid",
			taskType:  intent.TaskTypeTextToVideo,
			message:   "海邊日落的慢鏡頭",
			fileCount: 0,
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intent.Validate(tt.taskType, tt.message, tt.fileCount)
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (errors: %q)", got.Valid, tt.wantValid, got.Errors)
			}
			if !tt.wantValid && len(got.Errors) != tt.wantErrs {
				t.Errorf("got %d errors %q, want %d", len(got.Errors), got.Errors, tt.wantErrs)
			}
			if tt.wantValid && len(got.Errors) != 0 {
				t.Errorf("valid result carries errors: %q", got.Errors)
			}
		})
	}
}
