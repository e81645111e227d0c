package profile

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"silvernest-api/internal/config"
	"silvernest-api/internal/domain/entity"
	"silvernest-api/internal/domain/repository"
	workflowchain "silvernest-api/internal/workflow/chain"
	wfmodel "silvernest-api/internal/workflow/model"
	wfnode "silvernest-api/internal/workflow/node"
	workflowport "silvernest-api/internal/workflow/port"
	apperrors "silvernest-api/pkg/errors"
	"silvernest-api/pkg/logger"
	"silvernest-api/pkg/metrics"
)

const rawSnippetRunes = 200

// ChatModelProvider 提供 ChatModel 实例以及对应的提供商配置
type ChatModelProvider interface {
	workflowport.ChatModelFactory
	Provider(name string) (string, config.ProviderConfig, bool)
}

// GeneratorOptions 文案生成选项
type GeneratorOptions struct {
	// Provider 为空时使用 llm.default_provider
	Provider       string
	StripCodeFence bool
}

// GenerateOutput 一次生成的结果
type GenerateOutput struct {
	Record *entity.ResultRecord
	// Stored 结果是否已写入缓存（决定是否返回 X-Result-ID）
	Stored bool
	Meta   wfmodel.LLMUsageMeta
}

// Generator 编排：凭据检查 -> 组装提示词 -> 调用模型 -> 校验输出 -> 记录结果
type Generator struct {
	models ChatModelProvider
	chain  *workflowchain.ProfileCopyChain
	store  repository.ResultRepository
	opts   GeneratorOptions
}

// NewGenerator 创建文案生成器；store 可为 nil
func NewGenerator(models ChatModelProvider, store repository.ResultRepository, opts GeneratorOptions) *Generator {
	return &Generator{
		models: models,
		chain:  workflowchain.NewProfileCopyChain(models),
		store:  store,
		opts:   opts,
	}
}

// Generate 为一次表单提交生成资料文案。调用方需先通过 ValidateInput。
func (g *Generator) Generate(ctx context.Context, in entity.ProfileInput) (*GenerateOutput, error) {
	start := time.Now()
	platform := platformLabel(in.Platform)
	ctx = logger.WithContext(ctx, logger.PlatformKey, in.Platform)

	out, err := g.generate(ctx, in)
	status := "success"
	if err != nil {
		status = statusLabel(err)
	}
	metrics.ProfileGenerationTotal.WithLabelValues(platform, status).Inc()
	metrics.ProfileGenerationDuration.WithLabelValues(platform).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	metrics.ProfileBioWordCount.WithLabelValues(platform).Observe(float64(out.Record.Stats.BioWords))
	return out, nil
}

func (g *Generator) generate(ctx context.Context, in entity.ProfileInput) (*GenerateOutput, error) {
	if g == nil || g.models == nil {
		return nil, apperrors.NewConfiguration(fmt.Errorf("llm factory not configured"))
	}

	providerName, pc, ok := g.models.Provider(g.opts.Provider)
	if !ok {
		return nil, apperrors.NewConfiguration(fmt.Errorf("llm provider %q not configured", providerName))
	}
	if strings.TrimSpace(pc.APIKey) == "" {
		return nil, apperrors.NewConfiguration(fmt.Errorf("llm provider %q has no api key", providerName))
	}

	system, user := Compose(in)

	temperature := float32(pc.Temperature)
	maxTokens := pc.MaxTokens
	copyOut, err := g.chain.Invoke(ctx, &wfmodel.ProfileCopyInput{
		System:      system,
		User:        user,
		Provider:    providerName,
		Model:       pc.Model,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		logger.Error(ctx, "profile copy llm call failed", err,
			"provider", providerName,
			"kind", string(wfnode.ClassifyLLMError(err)),
		)
		return nil, apperrors.NewUpstream(err)
	}

	raw := copyOut.Raw
	if g.opts.StripCodeFence {
		raw = wfnode.StripCodeFence(raw)
	}

	generated, err := Parse(raw)
	if err != nil {
		kind := string(MalformedPayload)
		var pe *ParseError
		if errors.As(err, &pe) {
			kind = string(pe.Kind)
		}
		metrics.ParseFailureTotal.WithLabelValues(kind).Inc()
		logger.Warn(ctx, "profile copy output rejected",
			"kind", kind,
			"error", err.Error(),
			"raw", wfnode.Snippet(copyOut.Raw, rawSnippetRunes),
		)
		return nil, apperrors.Wrap(err, apperrors.CodeUpstreamSchema, apperrors.MsgUpstream)
	}

	rec := &entity.ResultRecord{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Input:       in,
		Output:      *generated,
		Stats:       BuildStats(*generated),
	}
	ctx = logger.WithContext(ctx, logger.ResultIDKey, rec.ID)

	stored := false
	if g.store != nil {
		if err := g.store.Save(ctx, rec); err != nil {
			logger.Warn(ctx, "failed to store generated profile", "error", err.Error())
		} else {
			stored = true
		}
	}

	logger.Info(ctx, "profile copy generated",
		"provider", providerName,
		"model", pc.Model,
		"prompt_tokens", copyOut.Meta.PromptTokens,
		"completion_tokens", copyOut.Meta.CompletionTokens,
		"bio_words", rec.Stats.BioWords,
	)

	return &GenerateOutput{Record: rec, Stored: stored, Meta: copyOut.Meta}, nil
}

// platformLabel 未知平台归入 other，避免指标标签失控
func platformLabel(platform string) string {
	if slices.Contains(entity.Platforms, platform) {
		return platform
	}
	return "other"
}

func statusLabel(err error) string {
	appErr := apperrors.AsAppError(err)
	switch appErr.Code {
	case apperrors.CodeConfiguration:
		return "config_error"
	case apperrors.CodeUpstreamSchema:
		return "schema_error"
	default:
		return "upstream_error"
	}
}
