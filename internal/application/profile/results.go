package profile

import (
	"context"
	"errors"
	"strings"

	"silvernest-api/internal/domain/entity"
	"silvernest-api/internal/domain/repository"
	apperrors "silvernest-api/pkg/errors"
)

// ResultService 按 ID 读取/删除会话结果
type ResultService struct {
	store repository.ResultRepository
}

// NewResultService store 为 nil 时所有查询返回不存在
func NewResultService(store repository.ResultRepository) *ResultService {
	return &ResultService{store: store}
}

func (s *ResultService) Get(ctx context.Context, id string) (*entity.ResultRecord, error) {
	id = strings.TrimSpace(id)
	if s == nil || s.store == nil || id == "" {
		return nil, apperrors.New(apperrors.CodeResultNotFound, "result not found")
	}
	rec, err := s.store.Get(ctx, id)
	if errors.Is(err, repository.ErrResultNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeResultNotFound, "result not found")
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to load result")
	}
	return rec, nil
}

// Delete 幂等删除
func (s *ResultService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if s == nil || s.store == nil || id == "" {
		return nil
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return apperrors.Wrap(err, apperrors.CodeCacheError, "failed to delete result")
	}
	return nil
}
