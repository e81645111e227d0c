package profile

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	workflowprompt "silvernest-api/internal/workflow/prompt"
)

var defaultPromptRegistry = workflowprompt.NewRegistry()

// mustFormat 渲染内置模板。模板随二进制嵌入，只有模板本身写错才会失败。
func mustFormat(id workflowprompt.PromptID, vars map[string]any) []*schema.Message {
	tpl, err := defaultPromptRegistry.ChatTemplate(id)
	if err != nil {
		panic(fmt.Sprintf("load prompt %s: %v", id, err))
	}
	msgs, err := tpl.Format(context.Background(), vars)
	if err != nil {
		panic(fmt.Sprintf("format prompt %s: %v", id, err))
	}
	return msgs
}
