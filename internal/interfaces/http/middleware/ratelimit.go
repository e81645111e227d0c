// Package middleware 提供 HTTP 中间件
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	redisstore "silvernest-api/internal/infrastructure/persistence/redis"
	"silvernest-api/internal/interfaces/http/dto"
	"silvernest-api/pkg/errors"
	"silvernest-api/pkg/logger"
	"silvernest-api/pkg/metrics"
)

const msgRateLimited = "Too many requests. Please wait a moment and try again."

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// Enabled 是否启用限流
	Enabled bool
	// Limit 窗口内允许的请求数
	Limit int
	// Window 滑动窗口长度
	Window time.Duration
	// KeyFunc 由请求生成限流键，默认按客户端 IP + 路由
	KeyFunc func(c *gin.Context) string
}

// RateLimiter 限流器接口；remaining 为本次请求之后窗口内的剩余配额
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, remaining int, err error)
}

// RateLimit 限流中间件；限流器故障时放行
func RateLimit(cfg RateLimitConfig, limiter RateLimiter) gin.HandlerFunc {
	if !cfg.Enabled || limiter == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	if cfg.Limit <= 0 {
		cfg.Limit = 10
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string {
			return redisstore.BuildRateLimitKey(c.ClientIP(), c.FullPath())
		}
	}

	return func(c *gin.Context) {
		allowed, remaining, err := limiter.Allow(c.Request.Context(), cfg.KeyFunc(c), cfg.Limit, cfg.Window)
		if err != nil {
			logger.Warn(c.Request.Context(), "rate limiter unavailable, allowing request", "error", err.Error())
			c.Next()
			return
		}

		c.Header(HeaderRateLimitLimit, strconv.Itoa(cfg.Limit))
		c.Header(HeaderRateLimitRemaining, strconv.Itoa(remaining))

		if !allowed {
			metrics.RateLimitedTotal.WithLabelValues(c.FullPath()).Inc()
			dto.AbortWithError(c, http.StatusTooManyRequests, errors.CodeTooManyRequests, msgRateLimited)
			return
		}

		c.Next()
	}
}
