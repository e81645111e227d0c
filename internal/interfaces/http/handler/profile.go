package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"silvernest-api/internal/application/profile"
	"silvernest-api/internal/domain/entity"
	"silvernest-api/internal/interfaces/http/dto"
	"silvernest-api/pkg/logger"
)

const (
	// ResultIDHeader 生成结果写入缓存后返回的 ID
	ResultIDHeader = "X-Result-ID"

	// statusClientClosedRequest 客户端在响应前断开（沿用 nginx 的 499）
	statusClientClosedRequest = 499

	msgInvalidBody = "Invalid request body."
)

// ProfileGenerator 文案生成
type ProfileGenerator interface {
	Generate(ctx context.Context, in entity.ProfileInput) (*profile.GenerateOutput, error)
}

// ProfilePreviewer 预览图生成
type ProfilePreviewer interface {
	Generate(ctx context.Context, in entity.PreviewInput) (string, error)
}

// ProfileHandler 资料文案与预览图接口
type ProfileHandler struct {
	generator ProfileGenerator
	previewer ProfilePreviewer
}

// NewProfileHandler previewer 为 nil 时预览接口返回 404
func NewProfileHandler(generator ProfileGenerator, previewer ProfilePreviewer) *ProfileHandler {
	return &ProfileHandler{generator: generator, previewer: previewer}
}

// Generate 生成资料文案
// @Summary 生成资料文案
// @Tags Profiles
// @Accept json
// @Produce json
// @Param body body dto.GenerateProfileRequest true "资料表单"
// @Success 200 {object} entity.GeneratedProfile
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/profiles/generate [post]
func (h *ProfileHandler) Generate(c *gin.Context) {
	var req dto.GenerateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, msgInvalidBody)
		return
	}

	in := profile.NormalizeInput(req.ToEntity())
	if err := profile.ValidateInput(in); err != nil {
		writeError(c, err, "invalid profile input")
		return
	}

	out, err := h.generator.Generate(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "profile generation failed")
		return
	}

	if out.Stored {
		c.Header(ResultIDHeader, out.Record.ID)
	}
	dto.JSON(c, out.Record.Output)
}

// Preview 生成资料预览图
// @Summary 生成资料预览图
// @Tags Profiles
// @Accept json
// @Produce json
// @Param body body dto.PreviewProfileRequest true "预览请求"
// @Success 200 {object} dto.PreviewProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/profiles/preview [post]
func (h *ProfileHandler) Preview(c *gin.Context) {
	if h.previewer == nil {
		dto.NotFound(c, "preview is disabled")
		return
	}

	var req dto.PreviewProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, msgInvalidBody)
		return
	}

	in := req.ToEntity()
	if err := profile.ValidatePreview(in); err != nil {
		writeError(c, err, "invalid preview input")
		return
	}

	image, err := h.previewer.Generate(c.Request.Context(), in)
	if errors.Is(err, profile.ErrPreviewCanceled) {
		logger.Debug(c.Request.Context(), "client left before preview completed")
		c.AbortWithStatus(statusClientClosedRequest)
		return
	}
	if err != nil {
		writeError(c, err, "profile preview failed")
		return
	}

	dto.JSON(c, dto.PreviewProfileResponse{ImageBase64: image})
}
