// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "silvernest-api/pkg/errors"
)

// ErrorResponse 错误响应结构；error 字段始终存在
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// JSON 返回成功响应，body 原样输出
func JSON[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, data)
}

// NoContent 返回无内容响应 (204)
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 返回错误响应
func Error(c *gin.Context, httpCode int, code apperrors.ErrorCode, message string) {
	c.JSON(httpCode, ErrorResponse{
		Error:   message,
		Code:    string(code),
		TraceID: c.GetString("trace_id"),
	})
}

// AbortWithError 中间件中终止请求并返回错误
func AbortWithError(c *gin.Context, httpCode int, code apperrors.ErrorCode, message string) {
	c.AbortWithStatusJSON(httpCode, ErrorResponse{
		Error:   message,
		Code:    string(code),
		TraceID: c.GetString("trace_id"),
	})
}

// AppError 按 AppError 的状态码与面向用户的消息返回
func AppError(c *gin.Context, err *apperrors.AppError) {
	Error(c, err.HTTPStatus, err.Code, err.Message)
}

// BadRequest 返回 400 错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, apperrors.CodeInvalidParam, message)
}

// NotFound 返回 404 错误
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, apperrors.CodeNotFound, message)
}

// InternalError 返回 500 错误
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, apperrors.CodeInternalError, message)
}
