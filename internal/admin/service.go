// Package admin はレビュアー台帳のサービス層を提供する。
package admin

import (
	"context"
	"log/slog"

	"github.com/hitoshi/wheelshare/internal/model"
	"github.com/hitoshi/wheelshare/internal/repository"
)

// Service はレビュアーの登録・一覧・削除を扱う。
// レビューカウンターの操作はreviewパッケージが担う。
type Service struct {
	repo repository.AdminRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.AdminRepository) *Service {
	return &Service{repo: repo}
}

// List は全レビュアーを名前順で返す。
func (s *Service) List(ctx context.Context) ([]*model.Admin, error) {
	return s.repo.List(ctx)
}

// Upsert はレビュアーを登録する。既存のUIDの場合は名前のみ更新し、
// カウンターは保持する。登録後の一覧を返す。
func (s *Service) Upsert(ctx context.Context, uid, name string) ([]*model.Admin, error) {
	if uid == "" {
		return nil, model.NewInvalidRequestError("uidが空です")
	}
	if name == "" {
		return nil, model.NewInvalidRequestError("nameが空です")
	}

	if err := s.repo.Upsert(ctx, &model.Admin{UID: uid, Name: name}); err != nil {
		return nil, err
	}

	slog.Info("admin upserted", slog.String("uid", uid))
	return s.repo.List(ctx)
}

// Delete は指定UIDのレビュアーを削除し、残りの一覧を返す。
// 該当UIDが存在しなくても成功として扱う。
func (s *Service) Delete(ctx context.Context, uid string) ([]*model.Admin, error) {
	if uid == "" {
		return nil, model.NewInvalidRequestError("uidが空です")
	}
	if err := s.repo.DeleteByUID(ctx, uid); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}
