//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"silvernest-api/internal/application/profile"
	"silvernest-api/internal/config"
	"silvernest-api/internal/infrastructure/llm"
	"silvernest-api/internal/interfaces/http/handler"
	"silvernest-api/internal/interfaces/http/router"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		RedisSet,
		ProfileSet,
		RouterSet,
	)
	return nil, nil, nil
}

// RedisSet Redis 提供者集合（可选依赖）
var RedisSet = wire.NewSet(
	ProvideRedisClientOptional,
	ProvideResultRepository,
	ProvideRateLimiter,
)

// ProfileSet 文案生成与预览
var ProfileSet = wire.NewSet(
	llm.NewEinoFactory,
	wire.Bind(new(profile.ChatModelProvider), new(*llm.EinoFactory)),
	ProvideGenerator,
	ProvidePreviewer,
	profile.NewResultService,
	wire.Bind(new(handler.ProfileGenerator), new(*profile.Generator)),
	wire.Bind(new(handler.ResultReader), new(*profile.ResultService)),
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	ProvideHealthHandler,
	handler.NewProfileHandler,
	handler.NewResultHandler,
	wire.Struct(new(router.RouterHandlers), "*"),
	router.NewWithDeps,
)
