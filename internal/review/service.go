// Package review はモデレーションキューとレビュアー台帳のサービス層を提供する。
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/hitoshi/wheelshare/internal/model"
	"github.com/hitoshi/wheelshare/internal/repository"
)

// Outcome はモデレーション決定の種別を表す。
type Outcome string

const (
	OutcomeApprove Outcome = "approve"
	OutcomeReject  Outcome = "reject"
)

// MetricsRecorder はモデレーション決定のメトリクス記録インターフェース。
type MetricsRecorder interface {
	RecordReviewDecision(outcome string)
}

// Service はレビューキューの参照とモデレーション決定を扱う。
type Service struct {
	sharedWheels repository.SharedWheelRepository
	reviews      repository.ReviewRepository
	admins       repository.AdminRepository
	metrics      MetricsRecorder
	now          func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	sharedWheels repository.SharedWheelRepository,
	reviews repository.ReviewRepository,
	admins repository.AdminRepository,
	metrics MetricsRecorder,
) *Service {
	return &Service{
		sharedWheels: sharedWheels,
		reviews:      reviews,
		admins:       admins,
		metrics:      metrics,
		now:          time.Now,
	}
}

// NextForReview はレビュー待ちの共有ホイールのうち閲覧数が最大のものを返す。
// 待ちが存在しない場合はnilを返す。
func (s *Service) NextForReview(ctx context.Context) (*model.SharedWheel, error) {
	return s.sharedWheels.NextPending(ctx)
}

// PendingCount はレビュー待ちの共有ホイール数を返す。
func (s *Service) PendingCount(ctx context.Context) (int, error) {
	return s.sharedWheels.CountPending(ctx)
}

// Decide はモデレーション決定を適用する。
// 承認はキューの行をApprovedにし、却下は行を削除する。
// どちらの場合もレビュアー台帳のカウンターを加算する。
// 既に処理済みのパスに対する決定も成功として扱う（台帳は加算される）。
func (s *Service) Decide(ctx context.Context, path, reviewerUID string, outcome Outcome) error {
	if path == "" {
		return model.NewInvalidPathError("パスが空です")
	}

	now := s.now()
	var err error
	switch outcome {
	case OutcomeApprove:
		err = s.reviews.ApproveAndRecord(ctx, path, reviewerUID, now)
	case OutcomeReject:
		err = s.reviews.RejectAndRecord(ctx, path, reviewerUID, now)
	default:
		return model.NewInvalidRequestError("不明なモデレーション決定です")
	}
	if err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.RecordReviewDecision(string(outcome))
	}
	slog.Info("review decision applied",
		slog.String("path", path),
		slog.String("reviewer_uid", reviewerUID),
		slog.String("outcome", string(outcome)),
	)
	return nil
}

// ResetTotals はレビュアーの累計・セッション両方のカウンターをゼロにする。
func (s *Service) ResetTotals(ctx context.Context, uid string) error {
	if uid == "" {
		return model.NewInvalidRequestError("uidが空です")
	}
	return s.admins.ResetTotals(ctx, uid)
}

// ResetSession はレビュアーのセッションカウンターのみをゼロにする。
func (s *Service) ResetSession(ctx context.Context, uid string) error {
	if uid == "" {
		return model.NewInvalidRequestError("uidが空です")
	}
	return s.admins.ResetSession(ctx, uid)
}
