package handler

import "net/http"

// UserHandler はユーザー関連のHTTPハンドラー。
// 実認証は非対応のため、管理画面向けの応答は固定値を返す。
type UserHandler struct{}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// isAdminResponse は管理者判定のレスポンス。
type isAdminResponse struct {
	UserIsAdmin bool `json:"userIsAdmin"`
}

// spinStatsResponse はスピン統計のレスポンス。
type spinStatsResponse struct {
	SpinsToday     int `json:"spinsToday"`
	SpinsThisWeek  int `json:"spinsThisWeek"`
	SpinsThisMonth int `json:"spinsThisMonth"`
}

// IsAdmin は管理者判定を返す。認証が無いため常にtrueを返すスタブ。
// GET /api/user/is-admin
func (h *UserHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, isAdminResponse{UserIsAdmin: true})
}

// SpinStats はスピン統計を返す。収集は未対応のためゼロ値を返すスタブ。
// GET /api/spin-stats
func (h *UserHandler) SpinStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, spinStatsResponse{})
}
