// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: validation, moderation, wheel, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeContentBlocked      = "CONTENT_BLOCKED"
	ErrCodeSharedWheelNotFound = "SHARED_WHEEL_NOT_FOUND"
	ErrCodeWheelNotFound       = "WHEEL_NOT_FOUND"
	ErrCodeAdminNotFound       = "ADMIN_NOT_FOUND"
	ErrCodeInvalidPath         = "INVALID_PATH"
	ErrCodeInvalidRequest      = "INVALID_REQUEST"
	ErrCodeTitleRequired       = "TITLE_REQUIRED"
)

// NewContentBlockedError は禁止ワード検出による公開拒否エラーを生成する。
// システム障害ではなく、ユーザーが修正可能な拒否として扱う。
func NewContentBlockedError() *APIError {
	return &APIError{
		Code:     ErrCodeContentBlocked,
		Message:  "もう少しファミリー向けの内容でお試しください。",
		Category: "moderation",
		Action:   "項目のテキストから不適切な単語を取り除いて、再度共有してください。",
	}
}

// NewSharedWheelNotFoundError は共有ホイール未検出エラーを生成する。
func NewSharedWheelNotFoundError(path string) *APIError {
	return &APIError{
		Code:     ErrCodeSharedWheelNotFound,
		Message:  fmt.Sprintf("指定された共有ホイールが見つかりません: %s", path),
		Category: "wheel",
		Action:   "共有パスを確認してください。",
	}
}

// NewWheelNotFoundError は保存済みホイール未検出エラーを生成する。
func NewWheelNotFoundError(title string) *APIError {
	return &APIError{
		Code:     ErrCodeWheelNotFound,
		Message:  fmt.Sprintf("指定されたホイールが見つかりません: %s", title),
		Category: "wheel",
		Action:   "ホイールのタイトルを確認してください。",
	}
}

// NewAdminNotFoundError はレビュアー未検出エラーを生成する。
func NewAdminNotFoundError(uid string) *APIError {
	return &APIError{
		Code:     ErrCodeAdminNotFound,
		Message:  fmt.Sprintf("指定されたレビュアーが見つかりません: %s", uid),
		Category: "validation",
		Action:   "レビュアーのUIDを確認してください。",
	}
}

// NewInvalidPathError は不正な共有パス入力エラーを生成する。
func NewInvalidPathError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidPath,
		Message:  fmt.Sprintf("不正な共有パスです: %s", reason),
		Category: "validation",
		Action:   "xxx-xxx 形式の共有パスを指定してください。",
	}
}

// NewInvalidRequestError はリクエスト内容の不備エラーを生成する。
func NewInvalidRequestError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  fmt.Sprintf("リクエスト内容が不正です: %s", reason),
		Category: "validation",
		Action:   "リクエスト内容を確認して再度お試しください。",
	}
}

// NewTitleRequiredError はホイール保存時のタイトル欠落エラーを生成する。
func NewTitleRequiredError() *APIError {
	return &APIError{
		Code:     ErrCodeTitleRequired,
		Message:  "ホイールのconfigにtitleが含まれていません。",
		Category: "validation",
		Action:   "ホイールにタイトルを設定してから保存してください。",
	}
}
