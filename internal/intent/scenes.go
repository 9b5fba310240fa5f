package intent

import (
	"regexp"
	"strings"
)

// maxScenes caps a batch plan regardless of how many scenes are described.
const maxScenes = 4

// sceneMarkerPatterns match explicit scene labels in both numeral styles.
// Tried in order; the first pattern that matches anywhere in the prompt is
// used to segment it.
var sceneMarkerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`場景[一二三四]：`),
	regexp.MustCompile(`場景\d+：`),
	regexp.MustCompile(`第[一二三四]張：`),
	regexp.MustCompile(`第\d+張：`),
}

// SplitScenes segments a batch prompt into an ordered list of up to four
// scene descriptions. Explicit scene markers are tried first; failing that,
// the prompt is split into paragraphs with the first treated as a shared
// reference line. An empty slice means no usable scene was found.
func SplitScenes(prompt string) []string {
	scenes := splitByMarkers(prompt)

	if len(scenes) == 0 {
		scenes = splitByParagraphs(prompt)
	}

	if len(scenes) > maxScenes {
		scenes = scenes[:maxScenes]
	}
	return scenes
}

// splitByMarkers captures the text between consecutive scene markers.
// Captures run to the next marker of the same pattern or end of string.
func splitByMarkers(prompt string) []string {
	for _, pattern := range sceneMarkerPatterns {
		markers := pattern.FindAllStringIndex(prompt, -1)
		if len(markers) == 0 {
			continue
		}

		var scenes []string
		for i, marker := range markers {
			end := len(prompt)
			if i+1 < len(markers) {
				end = markers[i+1][0]
			}
			if text := strings.TrimSpace(prompt[marker[1]:end]); text != "" {
				scenes = append(scenes, text)
			}
		}
		return scenes
	}
	return nil
}

// splitByParagraphs treats the first non-empty line as a reference/context
// description and the remaining lines as individual scenes. A single
// paragraph yields nothing — there is no scene content to separate.
func splitByParagraphs(prompt string) []string {
	var paragraphs []string
	for _, line := range strings.Split(prompt, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}

	if len(paragraphs) < 2 {
		return nil
	}
	return paragraphs[1:]
}
