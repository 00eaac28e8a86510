// Package wheel は保存済みホイールのサービス層を提供する。
package wheel

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/wheelshare/internal/model"
	"github.com/hitoshi/wheelshare/internal/repository"
)

// Service は保存済みホイールのCRUDを扱う。
// ホイールは(オーナー, タイトル)単位で一意であり、保存は常にタイトルで上書きする。
type Service struct {
	repo  repository.WheelRepository
	now   func() time.Time
	newID func() string
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.WheelRepository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// List はデフォルトアイデンティティのホイール一覧をタイトル順で返す。
func (s *Service) List(ctx context.Context) ([]*model.Wheel, error) {
	return s.repo.ListByOwner(ctx, model.DefaultOwnerUID)
}

// Save はホイールをタイトル単位で作成または上書き保存し、保存後の一覧を返す。
// タイトルはconfigのtitleフィールドから取り出す。欠落・空の場合はTITLE_REQUIREDエラー。
func (s *Service) Save(ctx context.Context, rawConfig json.RawMessage) ([]*model.Wheel, error) {
	title, err := titleOf(rawConfig)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.repo.Upsert(ctx, &model.Wheel{
		ID:        s.newID(),
		OwnerUID:  model.DefaultOwnerUID,
		Title:     title,
		Config:    rawConfig,
		Created:   now,
		LastWrite: now,
	}); err != nil {
		return nil, err
	}

	slog.Info("wheel saved", slog.String("title", title))
	return s.repo.ListByOwner(ctx, model.DefaultOwnerUID)
}

// Delete は指定タイトルのホイールを削除し、残りの一覧を返す。
func (s *Service) Delete(ctx context.Context, title string) ([]*model.Wheel, error) {
	if title == "" {
		return nil, model.NewTitleRequiredError()
	}
	if err := s.repo.DeleteByOwnerAndTitle(ctx, model.DefaultOwnerUID, title); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, model.DefaultOwnerUID)
}

// titleOf はconfigからtitleフィールドを取り出す。
func titleOf(rawConfig json.RawMessage) (string, error) {
	var cfg struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(rawConfig, &cfg); err != nil {
		return "", model.NewInvalidRequestError("configの解析に失敗しました")
	}
	if cfg.Title == "" {
		return "", model.NewTitleRequiredError()
	}
	return cfg.Title, nil
}
