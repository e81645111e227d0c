// Package errors 提供统一的错误定义
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误 (1xxx)
	CodeSuccess            ErrorCode = "0"
	CodeUnknown            ErrorCode = "1000"
	CodeInvalidParam       ErrorCode = "1001"
	CodeNotFound           ErrorCode = "1004"
	CodeTooManyRequests    ErrorCode = "1006"
	CodeInternalError      ErrorCode = "1007"
	CodeServiceUnavailable ErrorCode = "1008"
	CodeConfiguration      ErrorCode = "1009"

	// 资源错误 (3xxx)
	CodeResultNotFound ErrorCode = "3001"

	// 业务错误 (4xxx)
	CodeGenerationFailed      ErrorCode = "4001"
	CodeValidationFailed      ErrorCode = "4002"
	CodeLLMCallFailed         ErrorCode = "4005"
	CodeUpstreamSchema        ErrorCode = "4007"
	CodeImageGenerationFailed ErrorCode = "4008"
	CodeNoImage               ErrorCode = "4009"

	// 外部服务错误 (5xxx)
	CodeCacheError       ErrorCode = "5002"
	CodeLLMProviderError ErrorCode = "5005"
)

// AppError 应用错误
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail 添加详细信息
func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

// WithStatus 覆盖 HTTP 状态码（用于透传上游状态）
func (e *AppError) WithStatus(status int) *AppError {
	if status > 0 {
		e.HTTPStatus = status
	}
	return e
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

// codeToHTTPStatus 错误码转 HTTP 状态码
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam, CodeValidationFailed:
		return http.StatusBadRequest
	case CodeNotFound, CodeResultNotFound:
		return http.StatusNotFound
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case CodeLLMCallFailed, CodeUpstreamSchema, CodeNoImage, CodeImageGenerationFailed, CodeLLMProviderError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// 预定义错误消息（面向终端用户，不包含任何上游细节）
const (
	MsgConfiguration  = "The service is not configured. Please try again later."
	MsgUpstream       = "We could not complete the request. Please try again."
	MsgImageFailed    = "Image generation failed."
	MsgNoImage        = "No image returned from Google."
	MsgPreviewFailure = "Unable to generate profile preview."
)

// IsAppError 检查是否为 AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}

// NewConfiguration 创建配置缺失错误
func NewConfiguration(err error) *AppError {
	return Wrap(err, CodeConfiguration, MsgConfiguration)
}

// NewValidation 创建校验错误，message 会直接返回给用户
func NewValidation(message string) *AppError {
	return New(CodeValidationFailed, message)
}

// NewUpstream 创建上游调用失败错误
func NewUpstream(err error) *AppError {
	return Wrap(err, CodeLLMCallFailed, MsgUpstream)
}
