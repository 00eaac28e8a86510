// Package settings は設定KV（禁止ワードリスト等）のサービス層を提供する。
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/hitoshi/wheelshare/internal/repository"
)

// 設定キー。値はすべてtext型で保存され、サービス層で型変換する。
const (
	keyDirtyWords        = "DIRTY_WORDS"
	keyEarningsPerReview = "EARNINGS_PER_REVIEW"
)

// Service は設定の読み書きを扱う。
type Service struct {
	repo repository.SettingsRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.SettingsRepository) *Service {
	return &Service{repo: repo}
}

// DirtyWords は禁止ワードリストをソート済みで返す。
// キーが存在しない場合は空リストを返す。
func (s *Service) DirtyWords(ctx context.Context) ([]string, error) {
	value, ok, err := s.repo.Get(ctx, keyDirtyWords)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}

	var words []string
	if err := json.Unmarshal([]byte(value), &words); err != nil {
		return nil, fmt.Errorf("禁止ワードリストの解析に失敗しました: %w", err)
	}
	return words, nil
}

// ReplaceDirtyWords は禁止ワードリストを全置換で保存し、保存後のリストを返す。
// 各ワードは小文字化し、重複を除去してソートする。空文字列は無視する。
func (s *Service) ReplaceDirtyWords(ctx context.Context, words []string) ([]string, error) {
	normalized := normalizeWords(words)

	value, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("禁止ワードリストのシリアライズに失敗しました: %w", err)
	}
	if err := s.repo.Put(ctx, keyDirtyWords, string(value)); err != nil {
		return nil, err
	}

	slog.Info("dirty word list replaced", slog.Int("word_count", len(normalized)))
	return normalized, nil
}

// EarningsPerReview はレビュー1件あたりの報酬額を返す。
// キーが存在しない場合は0を返す。
func (s *Service) EarningsPerReview(ctx context.Context) (float64, error) {
	value, ok, err := s.repo.Get(ctx, keyEarningsPerReview)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	earnings, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("報酬額の解析に失敗しました: %w", err)
	}
	return earnings, nil
}

// normalizeWords は小文字化・空文字列除去・重複除去・ソートを行う。
func normalizeWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	normalized := make([]string, 0, len(words))
	for _, word := range words {
		w := strings.ToLower(strings.TrimSpace(word))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		normalized = append(normalized, w)
	}
	sort.Strings(normalized)
	return normalized
}
