package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/wheelshare/internal/model"
)

// PostgresAdminRepo はPostgreSQLを使用したレビュアー台帳リポジトリ。
type PostgresAdminRepo struct {
	db *sql.DB
}

// NewPostgresAdminRepo はPostgresAdminRepoを生成する。
func NewPostgresAdminRepo(db *sql.DB) *PostgresAdminRepo {
	return &PostgresAdminRepo{db: db}
}

// Upsert はレビュアーを作成または名前を更新する。カウンターは保持する。
func (r *PostgresAdminRepo) Upsert(ctx context.Context, admin *model.Admin) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (uid, name) VALUES ($1, $2)
		 ON CONFLICT (uid) DO UPDATE SET name = EXCLUDED.name`,
		admin.UID, admin.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert admin: %w", err)
	}
	return nil
}

// List は全レビュアーを名前順で返す。
func (r *PostgresAdminRepo) List(ctx context.Context) ([]*model.Admin, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT uid, name, total_reviews, session_reviews, last_review
		 FROM admins ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []*model.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate admins: %w", err)
	}
	return admins, nil
}

// FindByUID は指定UIDのレビュアーを取得する。見つからない場合はnilを返す。
func (r *PostgresAdminRepo) FindByUID(ctx context.Context, uid string) (*model.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT uid, name, total_reviews, session_reviews, last_review
		 FROM admins WHERE uid = $1`,
		uid,
	)
	admin, err := scanAdmin(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin by uid: %w", err)
	}
	return admin, nil
}

// DeleteByUID は指定UIDのレビュアーを削除する。
func (r *PostgresAdminRepo) DeleteByUID(ctx context.Context, uid string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM admins WHERE uid = $1`,
		uid,
	)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	return nil
}

// ResetTotals はtotal_reviewsとsession_reviewsの両方をゼロにする。
func (r *PostgresAdminRepo) ResetTotals(ctx context.Context, uid string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admins SET total_reviews = 0, session_reviews = 0 WHERE uid = $1`,
		uid,
	)
	if err != nil {
		return fmt.Errorf("failed to reset review totals: %w", err)
	}
	return nil
}

// ResetSession はsession_reviewsのみをゼロにする。
func (r *PostgresAdminRepo) ResetSession(ctx context.Context, uid string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admins SET session_reviews = 0 WHERE uid = $1`,
		uid,
	)
	if err != nil {
		return fmt.Errorf("failed to reset session reviews: %w", err)
	}
	return nil
}

// scanAdmin は1行分のレビュアーをスキャンする。
func scanAdmin(row rowScanner) (*model.Admin, error) {
	admin := &model.Admin{}
	var lastReview sql.NullTime

	err := row.Scan(&admin.UID, &admin.Name, &admin.TotalReviews, &admin.SessionReviews, &lastReview)
	if err != nil {
		return nil, err
	}

	if lastReview.Valid {
		t := lastReview.Time
		admin.LastReview = &t
	}
	return admin, nil
}

// compile-time interface check
var _ AdminRepository = (*PostgresAdminRepo)(nil)
