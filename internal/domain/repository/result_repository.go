// Package repository 定义数据访问层接口
package repository

import (
	"context"
	"errors"

	"silvernest-api/internal/domain/entity"
)

// ErrResultNotFound 结果不存在或已过期
var ErrResultNotFound = errors.New("result not found")

// ResultRepository 会话级生成结果存储
type ResultRepository interface {
	// Save 写入结果；记录创建后不再修改
	Save(ctx context.Context, rec *entity.ResultRecord) error
	// Get 读取结果，不存在时返回 ErrResultNotFound
	Get(ctx context.Context, id string) (*entity.ResultRecord, error)
	// Delete 幂等删除
	Delete(ctx context.Context, id string) error
}
