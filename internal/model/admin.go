// Package model はドメインモデルを定義する。
package model

import "time"

// Admin は共有ホイールをレビューするモデレーターを表す。
// TotalReviews は明示的なリセットを除き単調非減少。
// SessionReviews は TotalReviews と独立してリセット可能。
type Admin struct {
	UID            string
	Name           string
	TotalReviews   int
	SessionReviews int
	LastReview     *time.Time
}
