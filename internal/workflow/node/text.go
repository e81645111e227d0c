package node

import (
	"strings"
	"unicode/utf8"
)

// Snippet 把模型原始输出压缩成单行并按字符截断，用于日志
func Snippet(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i] + "…"
		}
		n++
	}
	return s
}
