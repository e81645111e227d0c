package handler

import (
	"github.com/gin-gonic/gin"

	"silvernest-api/internal/interfaces/http/dto"
	apperrors "silvernest-api/pkg/errors"
	"silvernest-api/pkg/logger"
)

// writeError 把错误转换为 HTTP 响应。
// AppError 使用其面向用户的消息；其余错误一律返回通用提示，原因只写日志。
func writeError(c *gin.Context, err error, logMsg string) {
	ctx := c.Request.Context()
	if apperrors.IsAppError(err) {
		appErr := apperrors.AsAppError(err)
		if appErr.HTTPStatus >= 500 {
			logger.Error(ctx, logMsg, err, "code", string(appErr.Code))
		}
		dto.AppError(c, appErr)
		return
	}
	logger.Error(ctx, logMsg, err)
	dto.InternalError(c, apperrors.MsgUpstream)
}
