package sharing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hitoshi/wheelshare/internal/model"
	"github.com/hitoshi/wheelshare/internal/repository"
	"github.com/hitoshi/wheelshare/internal/security"
)

// SettingsReader は禁止ワードリストの読み取りインターフェース。
// settings.Serviceの部分集合として定義する。
type SettingsReader interface {
	DirtyWords(ctx context.Context) ([]string, error)
}

// MetricsRecorder は公開・閲覧のメトリクス記録インターフェース。
type MetricsRecorder interface {
	RecordPublishAccepted()
	RecordPublishBlocked()
	RecordSharedWheelRead()
}

// Service は共有ホイールの公開・閲覧のサービス層。
// 公開フロー: 禁止ワード検査 → 表示文字列のサニタイズ → パス払い出し＋INSERT。
type Service struct {
	repo      repository.SharedWheelRepository
	settings  SettingsReader
	screen    security.DirtyWordScreen
	sanitizer security.ConfigSanitizerService
	allocator *PathAllocator
	metrics   MetricsRecorder
	now       func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	repo repository.SharedWheelRepository,
	settings SettingsReader,
	screen security.DirtyWordScreen,
	sanitizer security.ConfigSanitizerService,
	allocator *PathAllocator,
	metrics MetricsRecorder,
) *Service {
	return &Service{
		repo:      repo,
		settings:  settings,
		screen:    screen,
		sanitizer: sanitizer,
		allocator: allocator,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Publish はホイールを公開し、払い出された共有パスを返す。
// 禁止ワードが検出された場合はCONTENT_BLOCKEDエラーを返し、何も保存しない。
// configは不透明なペイロードとして扱い、読み書きするのは
// entries[].text（検査）、title/description（サニタイズ）、path（埋め込み）のみ。
func (s *Service) Publish(ctx context.Context, rawConfig json.RawMessage, copyable bool) (string, error) {
	var cfg map[string]any
	if err := json.Unmarshal(rawConfig, &cfg); err != nil {
		return "", model.NewInvalidRequestError("wheelConfigの解析に失敗しました")
	}

	words, err := s.settings.DirtyWords(ctx)
	if err != nil {
		return "", fmt.Errorf("禁止ワードリストの取得に失敗しました: %w", err)
	}

	texts := entryTexts(cfg)
	if s.screen.IsBlocked(texts, words) {
		if s.metrics != nil {
			s.metrics.RecordPublishBlocked()
		}
		slog.Info("publish blocked by dirty word screen",
			slog.Int("entry_count", len(texts)),
		)
		return "", model.NewContentBlockedError()
	}

	s.sanitizeDisplayFields(cfg)

	now := s.now()
	path, err := s.allocator.AllocateAndInsert(ctx, func(ctx context.Context, candidate string) error {
		// 払い出されたパスをconfig自身にも埋め込む（共有ページが参照する）
		cfg["path"] = candidate
		config, err := json.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("configの再構築に失敗しました: %w", err)
		}
		return s.repo.Insert(ctx, &model.SharedWheel{
			Path:         candidate,
			OwnerUID:     model.DefaultOwnerUID,
			Config:       config,
			Copyable:     copyable,
			ReviewStatus: model.ReviewStatusPending,
			Created:      now,
			ReadCount:    0,
		})
	})
	if err != nil {
		return "", err
	}

	if s.metrics != nil {
		s.metrics.RecordPublishAccepted()
	}
	slog.Info("shared wheel published",
		slog.String("path", path),
		slog.Bool("copyable", copyable),
	)
	return path, nil
}

// GetPublished は共有パスでホイールを取得する。見つからない場合はnilを返す。
func (s *Service) GetPublished(ctx context.Context, path string) (*model.SharedWheel, error) {
	if path == "" {
		return nil, model.NewInvalidPathError("パスが空です")
	}
	return s.repo.FindByPath(ctx, path)
}

// LogRead は共有ホイールの閲覧を記録する。
// ベストエフォートであり、存在しないパスは黙って無視される。
func (s *Service) LogRead(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if err := s.repo.IncrementRead(ctx, path, s.now()); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.RecordSharedWheelRead()
	}
	return nil
}

// ListOwn はデフォルトアイデンティティの共有ホイール一覧を返す。
func (s *Service) ListOwn(ctx context.Context) ([]*model.SharedWheel, error) {
	return s.repo.ListByOwner(ctx, model.DefaultOwnerUID)
}

// DeleteOwn はデフォルトアイデンティティの共有ホイールを削除し、残りの一覧を返す。
func (s *Service) DeleteOwn(ctx context.Context, path string) ([]*model.SharedWheel, error) {
	if path == "" {
		return nil, model.NewInvalidPathError("パスが空です")
	}
	if err := s.repo.DeleteByPathAndOwner(ctx, path, model.DefaultOwnerUID); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, model.DefaultOwnerUID)
}

// entryTexts はconfigからentries[].textを抽出する。
// 構造が期待と異なる要素は単に無視する（検査対象のテキストが無いだけ）。
func entryTexts(cfg map[string]any) []string {
	entries, ok := cfg["entries"].([]any)
	if !ok {
		return nil
	}
	texts := make([]string, 0, len(entries))
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if text, ok := entry["text"].(string); ok && text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

// sanitizeDisplayFields はconfigの表示用文字列からマークアップを除去する。
func (s *Service) sanitizeDisplayFields(cfg map[string]any) {
	for _, key := range []string{"title", "description"} {
		if v, ok := cfg[key].(string); ok && v != "" {
			cfg[key] = s.sanitizer.Sanitize(v)
		}
	}
}
