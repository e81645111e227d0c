// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// BindResultID 从 URI 绑定结果 ID
func BindResultID(c *gin.Context) string {
	return strings.TrimSpace(c.Param("id"))
}
