package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"silvernest-api/internal/domain/entity"
	"silvernest-api/internal/infrastructure/imagegen"
	apperrors "silvernest-api/pkg/errors"
	"silvernest-api/pkg/logger"
	"silvernest-api/pkg/metrics"
)

// ErrPreviewCanceled 调用方放弃了请求；表示"没有结果"，不是生成失败
var ErrPreviewCanceled = errors.New("preview canceled")

// ImageGenerator 图片生成端口
type ImageGenerator interface {
	Configured() bool
	Generate(ctx context.Context, prompt string, image *entity.InlineImage) (string, error)
}

// PreviewService 生成资料预览图
type PreviewService struct {
	images ImageGenerator
}

func NewPreviewService(images ImageGenerator) *PreviewService {
	return &PreviewService{images: images}
}

// Generate 返回 base64 图片。调用方需先通过 ValidatePreview。
func (s *PreviewService) Generate(ctx context.Context, in entity.PreviewInput) (string, error) {
	start := time.Now()
	platform := platformLabel(in.Platform)

	image, err := s.generate(ctx, in)
	metrics.PreviewTotal.WithLabelValues(platform, previewOutcome(err)).Inc()
	if err == nil {
		metrics.PreviewDuration.WithLabelValues(platform).Observe(time.Since(start).Seconds())
	}
	return image, err
}

func (s *PreviewService) generate(ctx context.Context, in entity.PreviewInput) (string, error) {
	if s == nil || s.images == nil || !s.images.Configured() {
		return "", apperrors.NewConfiguration(fmt.Errorf("image api key is not configured"))
	}

	prompt := ComposeImagePrompt(in.Platform, in.Bio, in.PromptAnswers, in.FirstMessages, in.OriginalProfile)
	photo := ParseDataURL(in.PhotoDataURL)
	if in.PhotoDataURL != "" && photo == nil {
		logger.Debug(ctx, "ignoring malformed photo data url")
	}

	image, err := s.images.Generate(ctx, prompt, photo)
	if err == nil {
		return image, nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		logger.Debug(ctx, "profile preview canceled by caller")
		return "", ErrPreviewCanceled
	}

	var statusErr *imagegen.StatusError
	switch {
	case errors.As(err, &statusErr):
		logger.Error(ctx, "image generation failed", err, "upstream_body", statusErr.Body)
		return "", apperrors.Wrap(err, apperrors.CodeImageGenerationFailed, apperrors.MsgImageFailed).
			WithStatus(statusErr.StatusCode)
	case errors.Is(err, imagegen.ErrNoImage):
		logger.Warn(ctx, "image response contained no image")
		return "", apperrors.Wrap(err, apperrors.CodeNoImage, apperrors.MsgNoImage)
	default:
		logger.Error(ctx, "image generation request failed", err)
		return "", apperrors.Wrap(err, apperrors.CodeInternalError, apperrors.MsgPreviewFailure)
	}
}

func previewOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrPreviewCanceled):
		return "canceled"
	case errors.Is(err, imagegen.ErrNoImage):
		return "no_image"
	}
	if apperrors.AsAppError(err).Code == apperrors.CodeConfiguration {
		return "config_error"
	}
	return "error"
}
