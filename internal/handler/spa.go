package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// 共有ホイールページに振り分けるパスのパターン。
// 例: /abc-234、/ja/abc-234、/pt-BR/abc-234、/view/abc-234
var (
	sharedWheelPathPattern = regexp.MustCompile(`^/([a-z]{2}(-[A-Z]{2})?/)?[a-z0-9]{3}-[a-z0-9]{3}$`)
	viewPathPattern        = regexp.MustCompile(`^/view/([a-z]{2}(-[A-Z]{2})?/)?[a-z0-9]{3}-[a-z0-9]{3}$`)
)

// SPAHandler はフロントエンドの静的ファイル配信とSPAフォールバックを提供する。
// 実ファイルが存在するパスはそのまま配信し、それ以外は
// 共有ホイールパターンならshared-wheel.html、そうでなければindex.htmlを返す。
type SPAHandler struct {
	staticDir  string
	fileServer http.Handler
}

// NewSPAHandler はSPAHandlerを生成する。
func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{
		staticDir:  staticDir,
		fileServer: http.FileServer(http.Dir(staticDir)),
	}
}

// ServeHTTP はhttp.Handlerを実装する。
func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqPath := r.URL.Path

	// パストラバーサルを弾いた上で実ファイルの存在を確認する
	if reqPath != "/" && !strings.Contains(reqPath, "..") {
		fullPath := filepath.Join(h.staticDir, filepath.FromSlash(reqPath))
		if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
			h.fileServer.ServeHTTP(w, r)
			return
		}
	}

	htmlFile := "index.html"
	if sharedWheelPathPattern.MatchString(reqPath) || viewPathPattern.MatchString(reqPath) {
		htmlFile = "shared-wheel.html"
	}

	http.ServeFile(w, r, filepath.Join(h.staticDir, htmlFile))
}
