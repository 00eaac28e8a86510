// Package model はドメインモデルを定義する。
package model

import (
	"encoding/json"
	"time"
)

// DefaultOwnerUID は固定のデフォルトアイデンティティを表す。
// 実認証は非対応のため、全リクエストはこのアイデンティティとして処理される。
const DefaultOwnerUID = "default"

// SharedWheel は短い公開パスで共有されたホイールを表す。
type SharedWheel struct {
	Path         string
	OwnerUID     string
	Config       json.RawMessage
	Copyable     bool
	ReviewStatus ReviewStatus
	Created      time.Time
	LastRead     *time.Time
	ReadCount    int
}

// ReviewStatus は共有ホイールのモデレーション状態を表す。
// 遷移は Pending → Approved（保持）または Pending → 行削除 のみ。
type ReviewStatus string

const (
	// ReviewStatusPending はレビュー待ち状態。
	ReviewStatusPending ReviewStatus = "Pending"
	// ReviewStatusApproved は承認済み状態（終端）。
	ReviewStatusApproved ReviewStatus = "Approved"
)
