package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler は /health エンドポイントのハンドラー。
//
// データベースへの疎通を確認し、成功時は200、失敗時は503を返す。
// コンテナオーケストレーターのliveness/readinessプローブからの利用を想定する。
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler はHealthHandlerを生成する。
func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// ServeHTTP はヘルスチェックを実行する。
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if h.checker != nil {
		if err := h.checker.PingContext(ctx); err != nil {
			slog.Error("health check failed",
				slog.String("error", err.Error()),
			)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
