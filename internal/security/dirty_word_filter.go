// Package security はアプリケーションのセキュリティ機能を提供する。
//
// DirtyWordScreen は共有ホイールの公開前スクリーニングを行う。
// 項目テキストをトークン化し、禁止ワードリストとの完全一致を検査する。
package security

import "strings"

// wordBreakChars はトークン区切りとして空白に置換される文字の集合。
const wordBreakChars = `,.:;!/?-+"[]()_#=`

// nbspMarker はエスケープ済み空白の文字列表現。トークン化前に実空白へ置換する。
const nbspMarker = "&nbsp;"

// DirtyWordScreen は公開前の禁止ワード検査のインターフェース。
type DirtyWordScreen interface {
	// IsBlocked は項目テキスト群のいずれかが禁止ワードを含むかを返す。
	// 判定は大文字小文字を無視したトークン完全一致で、部分一致ではブロックしない。
	// エラーは返さない。
	IsBlocked(entryTexts []string, dirtyWords []string) bool
}

// dirtyWordFilter はDirtyWordScreenの実装。
// 完全一致方式は意図的な設計で、禁止ワードを部分文字列として含む
// 無害な単語を誤ブロックしない。代わりに難読化された変形は検出できない
// （ステミングやleet変換の正規化は行わない）。これは許容されたギャップである。
type dirtyWordFilter struct{}

// NewDirtyWordFilter はDirtyWordScreenの新しいインスタンスを生成する。
// 禁止ワードリストは呼び出しごとに注入され、フィルタ自体は状態を持たない。
func NewDirtyWordFilter() *dirtyWordFilter {
	return &dirtyWordFilter{}
}

// IsBlocked は項目テキスト群のいずれかが禁止ワードを含むかを返す。
func (f *dirtyWordFilter) IsBlocked(entryTexts []string, dirtyWords []string) bool {
	if len(entryTexts) == 0 || len(dirtyWords) == 0 {
		return false
	}

	// 禁止ワードは小文字で保存される想定だが、照合の安全のためここでも正規化する
	banned := make(map[string]struct{}, len(dirtyWords))
	for _, w := range dirtyWords {
		banned[strings.ToLower(w)] = struct{}{}
	}

	for _, text := range entryTexts {
		if text == "" {
			continue
		}
		for _, token := range tokenize(text) {
			if _, ok := banned[token]; ok {
				return true
			}
		}
	}
	return false
}

// tokenize は項目テキストを照合用トークンに分解する。
// 小文字化 → &nbsp;を実空白に置換 → 区切り文字クラスを空白に置換 → 空白で分割。
func tokenize(text string) []string {
	lowered := strings.ToLower(text)
	lowered = strings.ReplaceAll(lowered, nbspMarker, " ")

	replaced := strings.Map(func(r rune) rune {
		if strings.ContainsRune(wordBreakChars, r) {
			return ' '
		}
		return r
	}, lowered)

	return strings.Fields(replaced)
}

// compile-time interface check
var _ DirtyWordScreen = (*dirtyWordFilter)(nil)
