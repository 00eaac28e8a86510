// Package sharing は共有ホイールの公開と閲覧のドメインロジックを提供する。
package sharing

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/hitoshi/wheelshare/internal/repository"
)

// pathAlphabet は共有パスに使用する31文字のアルファベット。
// 視認性の低い文字（0/1/i/l/o）を除外している。
// 31^6 ≈ 8.9億通りの組み合わせがあり、想定されるテーブルサイズでは
// 衝突確率は無視できる。
const pathAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"

// pathGroupLen は共有パスの1グループの文字数（xxx-xxx の各グループ）。
const pathGroupLen = 3

// PathAllocator は共有ホイールの短い公開パスを払い出す。
// 一意性の正はストアの一意制約であり、アロケーターは
// 重複エラーを受けて新しい候補で再試行するだけに留める。
type PathAllocator struct {
	// randInt はテストで決定的な乱数に差し替えるためのフック。
	randInt func(n int) int
}

// NewPathAllocator はPathAllocatorを生成する。
func NewPathAllocator() *PathAllocator {
	return &PathAllocator{randInt: rand.IntN}
}

// Candidate はパス候補を1つ生成する。
// 各文字はアルファベットから独立かつ一様に選ばれる。
func (a *PathAllocator) Candidate() string {
	var b strings.Builder
	b.Grow(pathGroupLen*2 + 1)
	for i := 0; i < pathGroupLen*2; i++ {
		if i == pathGroupLen {
			b.WriteByte('-')
		}
		b.WriteByte(pathAlphabet[a.randInt(len(pathAlphabet))])
	}
	return b.String()
}

// AllocateAndInsert は候補の生成とinsertを、insertが成功するまで繰り返す。
// insertがrepository.ErrDuplicatePathを返した場合のみ新しい候補で再試行し、
// それ以外のエラーはそのまま呼び出し元に返す。
// 再試行は無制限だが、衝突確率が無視できるため実用上は問題にならない。
// チェック→INSERTではなくINSERT→制約違反検出の順にすることで、
// 同時公開の競合ウィンドウを塞いでいる。
func (a *PathAllocator) AllocateAndInsert(ctx context.Context, insert func(ctx context.Context, path string) error) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		path := a.Candidate()
		err := insert(ctx, path)
		if err == nil {
			return path, nil
		}
		if errors.Is(err, repository.ErrDuplicatePath) {
			continue
		}
		return "", fmt.Errorf("failed to insert shared wheel: %w", err)
	}
}
