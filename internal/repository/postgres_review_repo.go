package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hitoshi/wheelshare/internal/model"
)

// PostgresReviewRepo はPostgreSQLを使用したモデレーション決定リポジトリ。
// キューの状態変更と台帳の加算を同一トランザクションで適用する。
type PostgresReviewRepo struct {
	db *sql.DB
}

// NewPostgresReviewRepo はPostgresReviewRepoを生成する。
func NewPostgresReviewRepo(db *sql.DB) *PostgresReviewRepo {
	return &PostgresReviewRepo{db: db}
}

// ApproveAndRecord はPendingの共有ホイールをApprovedにし、レビュアーのカウンターを+1する。
// WHERE句でPendingに限定することで、古いキュー表示からの二重決定は
// 行を変更しない冪等な成功となる。台帳の加算は決定ごとに常に行う。
func (r *PostgresReviewRepo) ApproveAndRecord(ctx context.Context, path, reviewerUID string, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE shared_wheels SET review_status = $1 WHERE path = $2 AND review_status = $3`,
		string(model.ReviewStatusApproved), path, string(model.ReviewStatusPending),
	)
	if err != nil {
		return fmt.Errorf("failed to approve shared wheel: %w", err)
	}

	if err := recordDecision(ctx, tx, reviewerUID, at); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RejectAndRecord はPendingの共有ホイールの行を削除し、レビュアーのカウンターを+1する。
// Approved済みの行は削除しない（Pending以外からの遷移は存在しないため）。
func (r *PostgresReviewRepo) RejectAndRecord(ctx context.Context, path, reviewerUID string, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM shared_wheels WHERE path = $1 AND review_status = $2`,
		path, string(model.ReviewStatusPending),
	)
	if err != nil {
		return fmt.Errorf("failed to reject shared wheel: %w", err)
	}

	if err := recordDecision(ctx, tx, reviewerUID, at); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// recordDecision はレビュアーのカウンターを単一UPDATEで加算する。
// 未登録のレビュアーは0行更新となり、黙って無視される（決定自体は有効）。
func recordDecision(ctx context.Context, tx *sql.Tx, reviewerUID string, at time.Time) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE admins
		 SET total_reviews = total_reviews + 1,
		     session_reviews = session_reviews + 1,
		     last_review = $1
		 WHERE uid = $2`,
		at, reviewerUID,
	)
	if err != nil {
		return fmt.Errorf("failed to record review decision: %w", err)
	}
	return nil
}

// compile-time interface check
var _ ReviewRepository = (*PostgresReviewRepo)(nil)
