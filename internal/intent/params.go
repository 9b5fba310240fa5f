package intent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	defaultDurationSec = 5
	minDurationSec     = 1
	maxDurationSec     = 10
)

var (
	durationPattern = regexp.MustCompile(`(?i)(\d+)\s*秒|(\d+)\s*seconds?`)

	// Tried in order; first match wins. Ratio separators are formatted back
	// out as dimensions, so "16:9" becomes the literal size "16x9".
	sizePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*[x×]\s*(\d+)`),
		regexp.MustCompile(`(\d+)\s*:\s*(\d+)`),
		regexp.MustCompile(`(\d+)\s*by\s*(\d+)`),
	}

	styleGroups = []struct {
		style    Style
		keywords []string
	}{
		{StyleRealistic, []string{"真實", "寫實", "realistic", "photorealistic"}},
		{StyleAnime, []string{"動漫", "卡通", "anime", "cartoon"}},
		{StyleArtistic, []string{"藝術", "繪畫", "artistic", "painting"}},
		{StyleCinematic, []string{"電影", "影視", "cinematic", "film"}},
	}
)

// ExtractParameters pulls duration, size, and style hints out of free text.
// The three extractions are independent of each other.
func ExtractParameters(message string) Parameters {
	params := Parameters{Duration: extractDuration(message)}

	for _, pattern := range sizePatterns {
		if m := pattern.FindStringSubmatch(message); m != nil {
			width, _ := strconv.Atoi(m[1])
			height, _ := strconv.Atoi(m[2])
			params.Size = fmt.Sprintf("%dx%d", width, height)
			break
		}
	}

	lower := strings.ToLower(message)
	for _, group := range styleGroups {
		if containsAny(lower, group.keywords) {
			params.Style = group.style
			break
		}
	}

	return params
}

func extractDuration(message string) int {
	m := durationPattern.FindStringSubmatch(message)
	if m == nil {
		return defaultDurationSec
	}

	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	duration, err := strconv.Atoi(raw)
	if err != nil {
		return defaultDurationSec
	}

	if duration < minDurationSec {
		return minDurationSec
	}
	if duration > maxDurationSec {
		return maxDurationSec
	}
	return duration
}
