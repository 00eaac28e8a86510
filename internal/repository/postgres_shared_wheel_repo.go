package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/hitoshi/wheelshare/internal/model"
)

// uniqueViolation はPostgreSQLの一意制約違反のSQLSTATEコード。
const uniqueViolation = "23505"

// PostgresSharedWheelRepo はPostgreSQLを使用した共有ホイールリポジトリ。
type PostgresSharedWheelRepo struct {
	db *sql.DB
}

// NewPostgresSharedWheelRepo はPostgresSharedWheelRepoを生成する。
func NewPostgresSharedWheelRepo(db *sql.DB) *PostgresSharedWheelRepo {
	return &PostgresSharedWheelRepo{db: db}
}

// Insert は共有ホイールを作成する。
// pathの一意制約違反はErrDuplicatePathに変換して返す。
func (r *PostgresSharedWheelRepo) Insert(ctx context.Context, wheel *model.SharedWheel) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shared_wheels (path, uid, config, copyable, review_status, created, read_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		wheel.Path, wheel.OwnerUID, []byte(wheel.Config), wheel.Copyable,
		string(wheel.ReviewStatus), wheel.Created, wheel.ReadCount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePath
		}
		return fmt.Errorf("failed to insert shared wheel: %w", err)
	}
	return nil
}

// FindByPath は指定パスの共有ホイールを取得する。見つからない場合はnilを返す。
func (r *PostgresSharedWheelRepo) FindByPath(ctx context.Context, path string) (*model.SharedWheel, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT path, uid, config, copyable, review_status, created, last_read, read_count
		 FROM shared_wheels WHERE path = $1`,
		path,
	)
	wheel, err := scanSharedWheel(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find shared wheel by path: %w", err)
	}
	return wheel, nil
}

// ListByOwner はオーナーの共有ホイール一覧を作成日時降順で返す。
func (r *PostgresSharedWheelRepo) ListByOwner(ctx context.Context, ownerUID string) ([]*model.SharedWheel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT path, uid, config, copyable, review_status, created, last_read, read_count
		 FROM shared_wheels WHERE uid = $1 ORDER BY created DESC`,
		ownerUID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared wheels by owner: %w", err)
	}
	defer rows.Close()

	var wheels []*model.SharedWheel
	for rows.Next() {
		wheel, err := scanSharedWheel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shared wheel: %w", err)
		}
		wheels = append(wheels, wheel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shared wheels: %w", err)
	}
	return wheels, nil
}

// DeleteByPathAndOwner は指定オーナーの共有ホイールを削除する。
func (r *PostgresSharedWheelRepo) DeleteByPathAndOwner(ctx context.Context, path, ownerUID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM shared_wheels WHERE path = $1 AND uid = $2`,
		path, ownerUID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete shared wheel: %w", err)
	}
	return nil
}

// IncrementRead はread_countを+1し、last_readを更新する。
// 加算はデータベース内の単一UPDATEで行い、同時閲覧でも増分が失われない。
func (r *PostgresSharedWheelRepo) IncrementRead(ctx context.Context, path string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE shared_wheels SET read_count = read_count + 1, last_read = $1 WHERE path = $2`,
		at, path,
	)
	if err != nil {
		return fmt.Errorf("failed to increment read count: %w", err)
	}
	return nil
}

// NextPending はPendingの共有ホイールのうちread_countが最大のものを返す。
func (r *PostgresSharedWheelRepo) NextPending(ctx context.Context) (*model.SharedWheel, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT path, uid, config, copyable, review_status, created, last_read, read_count
		 FROM shared_wheels WHERE review_status = $1
		 ORDER BY read_count DESC, created ASC, path ASC
		 LIMIT 1`,
		string(model.ReviewStatusPending),
	)
	wheel, err := scanSharedWheel(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find next pending shared wheel: %w", err)
	}
	return wheel, nil
}

// CountPending はPendingの共有ホイール数を返す。
func (r *PostgresSharedWheelRepo) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM shared_wheels WHERE review_status = $1`,
		string(model.ReviewStatusPending),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending shared wheels: %w", err)
	}
	return count, nil
}

// rowScanner はsql.Rowとsql.Rowsの共通Scanインターフェース。
type rowScanner interface {
	Scan(dest ...any) error
}

// scanSharedWheel は1行分の共有ホイールをスキャンする。
func scanSharedWheel(row rowScanner) (*model.SharedWheel, error) {
	wheel := &model.SharedWheel{}
	var config []byte
	var status string
	var lastRead sql.NullTime

	err := row.Scan(
		&wheel.Path, &wheel.OwnerUID, &config, &wheel.Copyable,
		&status, &wheel.Created, &lastRead, &wheel.ReadCount,
	)
	if err != nil {
		return nil, err
	}

	wheel.Config = config
	wheel.ReviewStatus = model.ReviewStatus(status)
	if lastRead.Valid {
		t := lastRead.Time
		wheel.LastRead = &t
	}
	return wheel, nil
}

// isUniqueViolation はPostgreSQLの一意制約違反かどうかを判定する。
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// compile-time interface check
var _ SharedWheelRepository = (*PostgresSharedWheelRepo)(nil)
