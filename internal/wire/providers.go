package wire

import (
	"context"

	"silvernest-api/internal/application/profile"
	"silvernest-api/internal/config"
	"silvernest-api/internal/domain/repository"
	"silvernest-api/internal/infrastructure/imagegen"
	"silvernest-api/internal/infrastructure/persistence/redis"
	"silvernest-api/internal/interfaces/http/handler"
	"silvernest-api/internal/interfaces/http/middleware"
	"silvernest-api/pkg/logger"
)

// ProvideRedisClientOptional 提供 Redis 客户端；未启用或不可达时返回 nil，会话缓存与限流随之关闭
func ProvideRedisClientOptional(ctx context.Context, cfg *config.Config) (*redis.Client, func(), error) {
	if !cfg.Cache.Redis.Enabled {
		return nil, func() {}, nil
	}
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		logger.Warn(ctx, "redis not available, result cache and rate limiting disabled", "error", err.Error())
		return nil, func() {}, nil
	}
	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

// ProvideResultRepository 结果缓存；返回 nil 接口表示不持久化
func ProvideResultRepository(cfg *config.Config, client *redis.Client) repository.ResultRepository {
	if client == nil || !cfg.Features.Results.Enabled {
		return nil
	}
	return redis.NewResultRepository(client, cfg.Features.Results.TTL)
}

// ProvideRateLimiter 限流器；Redis 不可用时返回 nil 接口
func ProvideRateLimiter(client *redis.Client) middleware.RateLimiter {
	if client == nil {
		return nil
	}
	return redis.NewRateLimiter(client)
}

// ProvideHealthHandler 健康检查处理器
func ProvideHealthHandler(cfg *config.Config, client *redis.Client) *handler.HealthHandler {
	if client == nil {
		return handler.NewHealthHandler(cfg.App.Version, nil)
	}
	return handler.NewHealthHandler(cfg.App.Version, client)
}

// ProvideGenerator 文案生成器
func ProvideGenerator(cfg *config.Config, models profile.ChatModelProvider, results repository.ResultRepository) *profile.Generator {
	return profile.NewGenerator(models, results, profile.GeneratorOptions{
		Provider:       cfg.LLM.DefaultProvider,
		StripCodeFence: cfg.Features.Generation.StripCodeFence,
	})
}

// ProvidePreviewer 预览图服务；功能关闭时返回 nil 接口
func ProvidePreviewer(cfg *config.Config) handler.ProfilePreviewer {
	if !cfg.Features.Preview.Enabled {
		return nil
	}
	return profile.NewPreviewService(imagegen.NewClient(cfg.Image))
}
