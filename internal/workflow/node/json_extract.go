package node

import (
	"strings"
)

// StripCodeFence 去掉模型输出外层的 markdown 代码围栏（```json ... ```）。
// 只处理整段被单个围栏包裹的情况；其余输入原样返回（仅去除首尾空白）。
func StripCodeFence(s string) string {
	raw := strings.TrimSpace(s)
	if !strings.HasPrefix(raw, "```") || !strings.HasSuffix(raw, "```") || len(raw) < 6 {
		return raw
	}

	body := strings.TrimSuffix(strings.TrimPrefix(raw, "```"), "```")

	// 首行可能是语言标记（json / JSON），只有在换行前没有 JSON 起始符时才丢弃
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		head := strings.TrimSpace(body[:nl])
		if head == "" || isFenceLanguageTag(head) {
			body = body[nl+1:]
		}
	} else if lang := strings.TrimSpace(body); isFenceLanguageTag(lang) {
		return ""
	}

	return strings.TrimSpace(body)
}

func isFenceLanguageTag(s string) bool {
	if s == "" || strings.ContainsAny(s, "{[\"") {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return false
		}
	}
	return true
}
