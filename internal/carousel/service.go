// Package carousel はトップページのショーケース項目のサービス層を提供する。
package carousel

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hitoshi/wheelshare/internal/model"
	"github.com/hitoshi/wheelshare/internal/repository"
)

// Service はショーケース項目の一覧と全置換を扱う。
// 項目は不透明なJSONペイロードとして保存し、順序のみを管理する。
type Service struct {
	repo repository.CarouselRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.CarouselRepository) *Service {
	return &Service{repo: repo}
}

// List は全項目を表示順で返す。
func (s *Service) List(ctx context.Context) ([]*model.CarouselItem, error) {
	return s.repo.List(ctx)
}

// Replace は全項目を渡された順序で置き換え、置換後の一覧を返す。
// 空のリストを渡すと全項目が削除される。
func (s *Service) Replace(ctx context.Context, items []json.RawMessage) ([]*model.CarouselItem, error) {
	if err := s.repo.Replace(ctx, items); err != nil {
		return nil, err
	}

	slog.Info("carousel items replaced", slog.Int("item_count", len(items)))
	return s.repo.List(ctx)
}
