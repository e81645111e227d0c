package profile

import (
	"fmt"
	"strings"

	workflowprompt "silvernest-api/internal/workflow/prompt"
)

// ComposeImagePrompt 生成预览图指令。参考照片通过独立附件传递，这里只在文字上提及。
func ComposeImagePrompt(platform, bio string, promptAnswers, firstMessages []string, originalNotes string) string {
	header := mustFormat(workflowprompt.PromptProfilePreviewV1, map[string]any{
		workflowprompt.VarPlatform: platform,
	})[0].Content

	lines := []string{header, "Bio: " + bio}

	sections := make([]string, 0, 3)
	if strings.TrimSpace(originalNotes) != "" {
		sections = append(sections, "Original notes: "+originalNotes)
	}
	if len(promptAnswers) > 0 {
		sections = append(sections, "Prompt answers:\n"+bulletList("Prompt", promptAnswers))
	}
	if len(firstMessages) > 0 {
		sections = append(sections, "Opening messages:\n"+bulletList("Message", firstMessages))
	}
	if len(sections) > 0 {
		lines = append(lines, strings.Join(sections, "\n\n"))
	}

	lines = append(lines, fmt.Sprintf("Show interface elements and typography consistent with %s.", platform))
	return strings.Join(lines, "\n")
}

func bulletList(label string, items []string) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = fmt.Sprintf("• %s %d: %s", label, i+1, item)
	}
	return strings.Join(out, "\n")
}
