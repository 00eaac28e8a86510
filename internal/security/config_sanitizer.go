// Package security はアプリケーションのセキュリティ機能を提供する。
//
// ConfigSanitizerService は共有ホイールのconfigに含まれる表示用文字列
// （タイトル・説明）からマークアップを除去し、共有ページでの
// XSSからユーザーを保護する。bluemondayのStrictPolicyを使用し、
// すべてのタグを除去してプレーンテキストのみを残す。
package security

import "github.com/microcosm-cc/bluemonday"

// ConfigSanitizerService は表示用文字列のサニタイズ機能のインターフェース。
// 共有ホイールの公開時、ストアへの保存前に適用される。
type ConfigSanitizerService interface {
	// Sanitize は文字列からすべてのHTMLタグを除去して返す。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(raw string) string
}

// configSanitizer はConfigSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type configSanitizer struct {
	policy *bluemonday.Policy
}

// NewConfigSanitizer はConfigSanitizerServiceの新しいインスタンスを生成する。
// タイトルや説明は装飾なしのプレーンテキストとして扱うため、
// 許可タグを一切持たないStrictPolicyを使用する。
func NewConfigSanitizer() *configSanitizer {
	return &configSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は文字列からすべてのHTMLタグを除去して返す。
func (s *configSanitizer) Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	return s.policy.Sanitize(raw)
}

// compile-time interface check
var _ ConfigSanitizerService = (*configSanitizer)(nil)
