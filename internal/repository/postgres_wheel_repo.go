package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/wheelshare/internal/model"
)

// PostgresWheelRepo はPostgreSQLを使用した保存済みホイールリポジトリ。
type PostgresWheelRepo struct {
	db *sql.DB
}

// NewPostgresWheelRepo はPostgresWheelRepoを生成する。
func NewPostgresWheelRepo(db *sql.DB) *PostgresWheelRepo {
	return &PostgresWheelRepo{db: db}
}

// ListByOwner はオーナーのホイール一覧をタイトル順（大文字小文字無視）で返す。
func (r *PostgresWheelRepo) ListByOwner(ctx context.Context, ownerUID string) ([]*model.Wheel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, uid, title, config, created, last_write
		 FROM wheels WHERE uid = $1 ORDER BY lower(title)`,
		ownerUID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list wheels by owner: %w", err)
	}
	defer rows.Close()

	var wheels []*model.Wheel
	for rows.Next() {
		wheel := &model.Wheel{}
		var config []byte
		if err := rows.Scan(&wheel.ID, &wheel.OwnerUID, &wheel.Title, &config, &wheel.Created, &wheel.LastWrite); err != nil {
			return nil, fmt.Errorf("failed to scan wheel: %w", err)
		}
		wheel.Config = config
		wheels = append(wheels, wheel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wheels: %w", err)
	}
	return wheels, nil
}

// Upsert は(uid, title)単位でホイールを作成または上書きする。
// 既存行の場合はconfigとlast_writeのみ更新し、idとcreatedは保持する。
func (r *PostgresWheelRepo) Upsert(ctx context.Context, wheel *model.Wheel) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO wheels (id, uid, title, config, created, last_write)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (uid, title) DO UPDATE
		 SET config = EXCLUDED.config, last_write = EXCLUDED.last_write`,
		wheel.ID, wheel.OwnerUID, wheel.Title, []byte(wheel.Config), wheel.Created, wheel.LastWrite,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert wheel: %w", err)
	}
	return nil
}

// DeleteByOwnerAndTitle は指定オーナーのホイールをタイトルで削除する。
func (r *PostgresWheelRepo) DeleteByOwnerAndTitle(ctx context.Context, ownerUID, title string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM wheels WHERE uid = $1 AND title = $2`,
		ownerUID, title,
	)
	if err != nil {
		return fmt.Errorf("failed to delete wheel: %w", err)
	}
	return nil
}

// compile-time interface check
var _ WheelRepository = (*PostgresWheelRepo)(nil)
