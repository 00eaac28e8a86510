package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newTestStaticDir はテスト用の静的ファイルディレクトリを作成するヘルパー。
func newTestStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":        "<html>index</html>",
		"shared-wheel.html": "<html>shared</html>",
		"app.js":            "console.log('app');",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestSPAHandler_ServesExistingFile(t *testing.T) {
	h := NewSPAHandler(newTestStaticDir(t))

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "console.log") {
		t.Errorf("body = %q, want app.js content", w.Body.String())
	}
}

func TestSPAHandler_SharedWheelPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"共有パス", "/abc-234", "shared"},
		{"ロケール付き共有パス", "/ja/abc-234", "shared"},
		{"地域付きロケールの共有パス", "/pt-BR/abc-234", "shared"},
		{"viewプレフィックス付き共有パス", "/view/abc-234", "shared"},
		{"ルート", "/", "index"},
		{"通常ページ", "/faq", "index"},
		{"共有パス形式でないハイフン付きパス", "/privacy-policy", "index"},
		{"桁数が合わないパス", "/abcd-234", "index"},
		{"大文字を含むパス", "/ABC-234", "index"},
	}

	h := NewSPAHandler(newTestStaticDir(t))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("body = %q, want to contain %q", w.Body.String(), tt.want)
			}
		})
	}
}

func TestSPAHandler_PathTraversalFallsBackToIndex(t *testing.T) {
	h := NewSPAHandler(newTestStaticDir(t))

	req := httptest.NewRequest(http.MethodGet, "/static/../../etc/passwd", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "index") {
		t.Errorf("body = %q, want index.html content", w.Body.String())
	}
}
