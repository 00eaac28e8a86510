// Package model はドメインモデルを定義する。
package model

import (
	"encoding/json"
	"time"
)

// Wheel はユーザーが保存したホイールを表す。
// 同一オーナー内でタイトルは一意で、保存はタイトル単位のUPSERTとなる。
type Wheel struct {
	ID        string
	OwnerUID  string
	Title     string
	Config    json.RawMessage
	Created   time.Time
	LastWrite time.Time
}

// CarouselItem は管理画面で設定するショーケース項目を表す。
// 一覧は全件置換でのみ更新される。
type CarouselItem struct {
	ID       int
	Position int
	Data     json.RawMessage
}
