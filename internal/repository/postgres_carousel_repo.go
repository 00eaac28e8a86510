package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hitoshi/wheelshare/internal/model"
)

// PostgresCarouselRepo はPostgreSQLを使用したショーケースリポジトリ。
type PostgresCarouselRepo struct {
	db *sql.DB
}

// NewPostgresCarouselRepo はPostgresCarouselRepoを生成する。
func NewPostgresCarouselRepo(db *sql.DB) *PostgresCarouselRepo {
	return &PostgresCarouselRepo{db: db}
}

// List は全項目をposition順で返す。
func (r *PostgresCarouselRepo) List(ctx context.Context) ([]*model.CarouselItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, position, data FROM carousels ORDER BY position, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list carousel items: %w", err)
	}
	defer rows.Close()

	var items []*model.CarouselItem
	for rows.Next() {
		item := &model.CarouselItem{}
		var data []byte
		if err := rows.Scan(&item.ID, &item.Position, &data); err != nil {
			return nil, fmt.Errorf("failed to scan carousel item: %w", err)
		}
		item.Data = data
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate carousel items: %w", err)
	}
	return items, nil
}

// Replace は全項目を同一トランザクションで置き換える。
func (r *PostgresCarouselRepo) Replace(ctx context.Context, items []json.RawMessage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM carousels`); err != nil {
		return fmt.Errorf("failed to clear carousel items: %w", err)
	}

	for i, item := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO carousels (position, data) VALUES ($1, $2)`,
			i, []byte(item),
		)
		if err != nil {
			return fmt.Errorf("failed to insert carousel item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// compile-time interface check
var _ CarouselRepository = (*PostgresCarouselRepo)(nil)
