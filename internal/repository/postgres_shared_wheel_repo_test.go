package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

// PostgresSharedWheelRepoはSharedWheelRepositoryインターフェースを満たすことを検証
func TestPostgresSharedWheelRepo_ImplementsInterface(t *testing.T) {
	var _ SharedWheelRepository = (*PostgresSharedWheelRepo)(nil)
}

// NewPostgresSharedWheelRepoが正しく初期化されることを検証
func TestNewPostgresSharedWheelRepo_Initializes(t *testing.T) {
	repo := NewPostgresSharedWheelRepo(nil)
	if repo == nil {
		t.Fatal("expected non-nil repo")
	}
}

// 一意制約違反(23505)がErrDuplicatePathの判定対象になることを検証
func TestIsUniqueViolation_PqError23505(t *testing.T) {
	err := &pq.Error{Code: "23505", Constraint: "shared_wheels_pkey"}
	if !isUniqueViolation(err) {
		t.Error("expected 23505 to be detected as unique violation")
	}
}

// ラップされた一意制約違反も検出されることを検証
func TestIsUniqueViolation_WrappedError(t *testing.T) {
	err := fmt.Errorf("insert failed: %w", &pq.Error{Code: "23505"})
	if !isUniqueViolation(err) {
		t.Error("expected wrapped 23505 to be detected as unique violation")
	}
}

// 一意制約違反以外のエラーは対象外であることを検証
func TestIsUniqueViolation_OtherErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"別のSQLSTATE", &pq.Error{Code: "23503"}},
		{"pq以外のエラー", errors.New("connection refused")},
		{"nil", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if isUniqueViolation(tc.err) {
				t.Errorf("isUniqueViolation(%v) = true, want false", tc.err)
			}
		})
	}
}
