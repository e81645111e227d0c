// Package profile 实现资料文案生成：提示词组装、模型输出校验、预览图提示词与调用编排
package profile

import (
	"strings"

	"silvernest-api/internal/domain/entity"
	workflowprompt "silvernest-api/internal/workflow/prompt"
)

// Compose 把表单转换为 system/user 两段指令。
// 纯函数：不校验枚举值，未知值原样写入；必填字段即使为空也会输出标签。
func Compose(in entity.ProfileInput) (system, user string) {
	msgs := mustFormat(workflowprompt.PromptProfileCopyV1, map[string]any{
		workflowprompt.VarUserDetails: summarize(in),
	})
	return msgs[0].Content, msgs[1].Content
}

// summarize 按固定顺序拼接字段，段落之间空一行
func summarize(in entity.ProfileInput) string {
	segments := make([]string, 0, 11)
	optional := func(label, value, sep string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		segments = append(segments, label+sep+value)
	}
	required := func(label, value string) {
		segments = append(segments, label+": "+value)
	}

	optional("Name", in.Name, ": ")
	optional("City", in.City, ": ")
	optional("Age", in.Age, ": ")
	required("Age bracket", in.AgeBracket)
	optional("Current profile draft", in.ProfileText, ":\n")
	optional("Additional context", in.Notes, ":\n")
	required("Gender identity", in.Gender)
	required("Primary platform", in.Platform)
	optional("Priorities", strings.Join(nonBlank(in.Priorities), ", "), ": ")
	required("Preferred tone/style", in.StylePreference)
	required("Preferred length", in.LengthPreference)

	return strings.Join(segments, "\n\n")
}

func nonBlank(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) != "" {
			out = append(out, tag)
		}
	}
	return out
}
