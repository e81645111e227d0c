// Package imagegen 调用图片生成服务渲染资料预览图
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"silvernest-api/internal/config"
	"silvernest-api/internal/domain/entity"
	"silvernest-api/pkg/logger"
)

const maxErrorBodyBytes = 4 << 10

// ErrNoImage 响应成功但不包含任何已知结构的图片
var ErrNoImage = errors.New("no image returned")

// StatusError 上游返回非 2xx
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("image generation failed with status %d", e.StatusCode)
}

// Client 图片生成客户端
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type generateRequest struct {
	Prompt promptPart `json:"prompt"`
	Image  *imagePart `json:"image,omitempty"`
}

type promptPart struct {
	Text string `json:"text"`
}

type imagePart struct {
	InlineData inlineData `json:"inline_data"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// NewClient 创建客户端；传输层带 otel 追踪
func NewClient(cfg config.ImageConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Configured 是否配置了 API Key
func (c *Client) Configured() bool {
	return c != nil && strings.TrimSpace(c.apiKey) != ""
}

// Generate 发送提示词与可选参考照片，返回 base64 图片
func (c *Client) Generate(ctx context.Context, prompt string, image *entity.InlineImage) (string, error) {
	reqBody := generateRequest{Prompt: promptPart{Text: prompt}}
	if image != nil {
		reqBody.Image = &imagePart{InlineData: inlineData{MimeType: image.MimeType, Data: image.Data}}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal image request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generate?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read image response: %w", err)
	}

	data, shape, ok := extractImage(body)
	if !ok {
		return "", ErrNoImage
	}
	logger.Debug(ctx, "image extracted", "shape", shape, "model", c.model)
	return data, nil
}
