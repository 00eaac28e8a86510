package handler

import (
	"context"
	"encoding/json"
	"net/http"
)

// SettingsServiceInterface は設定ハンドラーが必要とするサービスインターフェース。
type SettingsServiceInterface interface {
	// DirtyWords は禁止ワードリストをソート済みで返す。
	DirtyWords(ctx context.Context) ([]string, error)
	// ReplaceDirtyWords は禁止ワードリストを全置換で保存する。
	ReplaceDirtyWords(ctx context.Context, words []string) ([]string, error)
	// EarningsPerReview はレビュー1件あたりの報酬額を返す。
	EarningsPerReview(ctx context.Context) (float64, error)
}

// SettingsHandler は設定のHTTPハンドラー。
type SettingsHandler struct {
	service SettingsServiceInterface
}

// NewSettingsHandler はSettingsHandlerを生成する。
func NewSettingsHandler(service SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{
		service: service,
	}
}

// replaceDirtyWordsRequest は禁止ワード置換リクエストのボディ。
type replaceDirtyWordsRequest struct {
	Words []string `json:"words"`
}

// GetDirtyWords は禁止ワードリストを返す。
// GET /api/settings/dirty-words
func (h *SettingsHandler) GetDirtyWords(w http.ResponseWriter, r *http.Request) {
	words, err := h.service.DirtyWords(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, words)
}

// ReplaceDirtyWords は禁止ワードリストの全置換を処理する。
// POST /api/settings/dirty-words
func (h *SettingsHandler) ReplaceDirtyWords(w http.ResponseWriter, r *http.Request) {
	var req replaceDirtyWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	if _, err := h.service.ReplaceDirtyWords(r.Context(), req.Words); err != nil {
		handleServiceError(w, err)
		return
	}

	writeStatusOK(w)
}

// GetEarningsPerReview はレビュー1件あたりの報酬額を返す。
// GET /api/settings/earnings-per-review
func (h *SettingsHandler) GetEarningsPerReview(w http.ResponseWriter, r *http.Request) {
	earnings, err := h.service.EarningsPerReview(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, earnings)
}
