// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hitoshi/wheelshare/internal/model"
)

// ErrDuplicatePath は共有パスの一意制約違反を表す。
// ストア側の一意制約（PRIMARY KEY）が唯一の正であり、
// アロケーターはこのエラーを受けて新しい候補で再試行する。
var ErrDuplicatePath = errors.New("shared wheel path already exists")

// SharedWheelRepository は共有ホイールの永続化インターフェース。
type SharedWheelRepository interface {
	// Insert は共有ホイールを作成する。
	// pathが既に存在する場合はErrDuplicatePathを返す。
	Insert(ctx context.Context, wheel *model.SharedWheel) error

	// FindByPath は指定パスの共有ホイールを取得する。見つからない場合はnilを返す。
	FindByPath(ctx context.Context, path string) (*model.SharedWheel, error)

	// ListByOwner はオーナーの共有ホイール一覧を作成日時降順で返す。
	ListByOwner(ctx context.Context, ownerUID string) ([]*model.SharedWheel, error)

	// DeleteByPathAndOwner は指定オーナーの共有ホイールを削除する。
	// 該当行がなくてもエラーにしない。
	DeleteByPathAndOwner(ctx context.Context, path, ownerUID string) error

	// IncrementRead はread_countを+1し、last_readを更新する。
	// 該当パスが存在しない場合は何もしない（ベストエフォート）。
	IncrementRead(ctx context.Context, path string, at time.Time) error

	// NextPending はPendingの共有ホイールのうちread_countが最大のものを返す。
	// 同数の場合はcreatedが古いもの、さらに同時刻の場合はpath昇順で決定的に選ぶ。
	// Pendingが存在しない場合はnilを返す。
	NextPending(ctx context.Context) (*model.SharedWheel, error)

	// CountPending はPendingの共有ホイール数を返す。
	CountPending(ctx context.Context) (int, error)
}

// ReviewRepository はモデレーション決定の永続化インターフェース。
// キューの状態変更とレビュアー台帳の加算は同一トランザクションで適用される。
type ReviewRepository interface {
	// ApproveAndRecord はPendingの共有ホイールをApprovedにし、
	// レビュアーのカウンターを+1する。非Pendingの行は変更しない（冪等な成功）。
	// レビュアーが未登録の場合、台帳の加算は黙って無視される。
	ApproveAndRecord(ctx context.Context, path, reviewerUID string, at time.Time) error

	// RejectAndRecord はPendingの共有ホイールの行を削除し、
	// レビュアーのカウンターを+1する。非Pendingの行は削除しない（冪等な成功）。
	RejectAndRecord(ctx context.Context, path, reviewerUID string, at time.Time) error
}

// AdminRepository はレビュアー台帳の永続化インターフェース。
type AdminRepository interface {
	// Upsert はレビュアーを作成または名前を更新する。カウンターは保持する。
	Upsert(ctx context.Context, admin *model.Admin) error

	// List は全レビュアーを名前順で返す。
	List(ctx context.Context) ([]*model.Admin, error)

	// FindByUID は指定UIDのレビュアーを取得する。見つからない場合はnilを返す。
	FindByUID(ctx context.Context, uid string) (*model.Admin, error)

	// DeleteByUID は指定UIDのレビュアーを削除する。該当行がなくてもエラーにしない。
	DeleteByUID(ctx context.Context, uid string) error

	// ResetTotals はtotal_reviewsとsession_reviewsの両方をゼロにする。
	ResetTotals(ctx context.Context, uid string) error

	// ResetSession はsession_reviewsのみをゼロにする。
	ResetSession(ctx context.Context, uid string) error
}

// SettingsRepository は設定KVの永続化インターフェース。
type SettingsRepository interface {
	// Get は指定キーの値を返す。キーが存在しない場合はok=falseを返す。
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Put は指定キーの値を全置換で保存する。
	Put(ctx context.Context, key, value string) error
}

// WheelRepository は保存済みホイールの永続化インターフェース。
type WheelRepository interface {
	// ListByOwner はオーナーのホイール一覧をタイトル順（大文字小文字無視）で返す。
	ListByOwner(ctx context.Context, ownerUID string) ([]*model.Wheel, error)

	// Upsert は(uid, title)単位でホイールを作成または上書きする。
	Upsert(ctx context.Context, wheel *model.Wheel) error

	// DeleteByOwnerAndTitle は指定オーナーのホイールをタイトルで削除する。
	// 該当行がなくてもエラーにしない。
	DeleteByOwnerAndTitle(ctx context.Context, ownerUID, title string) error
}

// CarouselRepository はショーケース項目の永続化インターフェース。
type CarouselRepository interface {
	// List は全項目をposition順で返す。
	List(ctx context.Context) ([]*model.CarouselItem, error)

	// Replace は全項目を同一トランザクションで置き換える。
	Replace(ctx context.Context, items []json.RawMessage) error
}
