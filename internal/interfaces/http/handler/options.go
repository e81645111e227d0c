package handler

import (
	"github.com/gin-gonic/gin"

	"silvernest-api/internal/domain/entity"
	"silvernest-api/internal/interfaces/http/dto"
)

// Options 返回表单可选项
// @Summary 表单可选项
// @Tags Profiles
// @Produce json
// @Success 200 {object} entity.FormOptions
// @Router /v1/options [get]
func Options(c *gin.Context) {
	dto.JSON(c, entity.Options())
}
