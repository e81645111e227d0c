package node

import (
	"context"
	"errors"
	"strings"
)

// LLMErrorKind 上游调用失败的分类，用于日志与指标标签
type LLMErrorKind string

const (
	LLMErrorNone                      LLMErrorKind = ""
	LLMErrorCanceled                  LLMErrorKind = "canceled"
	LLMErrorTimeout                   LLMErrorKind = "timeout"
	LLMErrorRateLimited               LLMErrorKind = "rate_limited"
	LLMErrorResponseFormatUnsupported LLMErrorKind = "response_format_unsupported"
	LLMErrorOther                     LLMErrorKind = "other"
)

// ClassifyLLMError 对 ChatModel 返回的错误做粗分类。
// Provider SDK 的错误类型各不相同，这里只能基于 context 错误与错误文本判断。
func ClassifyLLMError(err error) LLMErrorKind {
	if err == nil {
		return LLMErrorNone
	}
	if errors.Is(err, context.Canceled) {
		return LLMErrorCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return LLMErrorTimeout
	}
	if IsResponseFormatUnsupportedError(err) {
		return LLMErrorResponseFormatUnsupported
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"), strings.Contains(msg, "rate limit"):
		return LLMErrorRateLimited
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return LLMErrorTimeout
	default:
		return LLMErrorOther
	}
}

// IsResponseFormatUnsupportedError 判断 provider 是否拒绝了 response_format 参数
func IsResponseFormatUnsupportedError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "response_format"):
		return true
	case strings.Contains(msg, "json_object") && strings.Contains(msg, "not supported"):
		return true
	case strings.Contains(msg, "unknown parameter") && strings.Contains(msg, "response"):
		return true
	default:
		return false
	}
}
