package intent

import "strings"

// instructionWords are imperative lead-ins stripped from the message before it
// is used as a generation prompt. Removal is a single pass in list order,
// applied anywhere in the string.
var instructionWords = []string{
	"幫我", "請", "生成", "創建", "製作", "畫", "繪製",
	"help", "create", "generate", "make", "draw",
}

// ExtractPrompt strips instruction words from the message and collapses the
// remaining whitespace.
func ExtractPrompt(message string) string {
	prompt := message
	for _, word := range instructionWords {
		prompt = strings.ReplaceAll(prompt, word, "")
	}
	return strings.Join(strings.Fields(prompt), " ")
}
