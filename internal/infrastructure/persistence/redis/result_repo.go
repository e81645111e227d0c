package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"silvernest-api/internal/domain/entity"
	"silvernest-api/internal/domain/repository"
	"silvernest-api/pkg/metrics"
)

const resultKeyPrefix = "silvernest:result:"

// ResultRepository 基于 Redis 的会话结果存储，记录按 TTL 过期
type ResultRepository struct {
	client *Client
	ttl    time.Duration
	group  singleflight.Group
}

var _ repository.ResultRepository = (*ResultRepository)(nil)

// NewResultRepository 创建结果存储
func NewResultRepository(client *Client, ttl time.Duration) *ResultRepository {
	return &ResultRepository{client: client, ttl: ttl}
}

func resultKey(id string) string {
	return resultKeyPrefix + id
}

// Save 写入结果记录
func (r *ResultRepository) Save(ctx context.Context, rec *entity.ResultRecord) error {
	if rec == nil || rec.ID == "" {
		return fmt.Errorf("result record has no id")
	}
	ctx, span := tracer.Start(ctx, "result.Save",
		trace.WithAttributes(
			attribute.String("result.id", rec.ID),
			attribute.Int64("cache.ttl_ms", r.ttl.Milliseconds()),
		))
	defer span.End()

	payload, err := json.Marshal(rec)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := r.client.rdb.Set(ctx, resultKey(rec.ID), payload, r.ttl).Err(); err != nil {
		span.RecordError(err)
		metrics.ResultCacheTotal.WithLabelValues("save", "error").Inc()
		return err
	}
	metrics.ResultCacheTotal.WithLabelValues("save", "success").Inc()
	return nil
}

// Get 读取结果；并发读取同一 ID 时合并为一次 Redis 请求
func (r *ResultRepository) Get(ctx context.Context, id string) (*entity.ResultRecord, error) {
	ctx, span := tracer.Start(ctx, "result.Get",
		trace.WithAttributes(attribute.String("result.id", id)))
	defer span.End()

	v, err, shared := r.group.Do(id, func() (interface{}, error) {
		return r.client.rdb.Get(ctx, resultKey(id)).Bytes()
	})
	span.SetAttributes(attribute.Bool("cache.shared", shared))

	if err != nil {
		if IsNil(err) {
			span.SetAttributes(attribute.Bool("cache.hit", false))
			metrics.ResultCacheTotal.WithLabelValues("get", "miss").Inc()
			return nil, repository.ErrResultNotFound
		}
		span.RecordError(err)
		metrics.ResultCacheTotal.WithLabelValues("get", "error").Inc()
		return nil, err
	}

	var rec entity.ResultRecord
	if err := json.Unmarshal(v.([]byte), &rec); err != nil {
		span.RecordError(err)
		metrics.ResultCacheTotal.WithLabelValues("get", "error").Inc()
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	span.SetAttributes(attribute.Bool("cache.hit", true))
	metrics.ResultCacheTotal.WithLabelValues("get", "hit").Inc()
	return &rec, nil
}

// Delete 删除结果，键不存在时也视为成功
func (r *ResultRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "result.Delete",
		trace.WithAttributes(attribute.String("result.id", id)))
	defer span.End()

	if err := r.client.rdb.Del(ctx, resultKey(id)).Err(); err != nil {
		span.RecordError(err)
		metrics.ResultCacheTotal.WithLabelValues("delete", "error").Inc()
		return err
	}
	metrics.ResultCacheTotal.WithLabelValues("delete", "success").Inc()
	return nil
}
