package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"silvernest-api/internal/domain/entity"
	"silvernest-api/internal/interfaces/http/dto"
)

// ResultReader 会话结果查询
type ResultReader interface {
	Get(ctx context.Context, id string) (*entity.ResultRecord, error)
	Delete(ctx context.Context, id string) error
}

// ResultHandler 会话结果接口
type ResultHandler struct {
	results ResultReader
}

func NewResultHandler(results ResultReader) *ResultHandler {
	return &ResultHandler{results: results}
}

// GetResult 获取生成结果
// @Summary 获取生成结果
// @Tags Results
// @Produce json
// @Param id path string true "结果 ID"
// @Success 200 {object} entity.ResultRecord
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/results/{id} [get]
func (h *ResultHandler) GetResult(c *gin.Context) {
	rec, err := h.results.Get(c.Request.Context(), dto.BindResultID(c))
	if err != nil {
		writeError(c, err, "failed to get result")
		return
	}
	dto.JSON(c, rec)
}

// DeleteResult 删除生成结果
// @Summary 删除生成结果
// @Tags Results
// @Param id path string true "结果 ID"
// @Success 204
// @Router /v1/results/{id} [delete]
func (h *ResultHandler) DeleteResult(c *gin.Context) {
	if err := h.results.Delete(c.Request.Context(), dto.BindResultID(c)); err != nil {
		writeError(c, err, "failed to delete result")
		return
	}
	dto.NoContent(c)
}
