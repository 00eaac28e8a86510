package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/wheelshare/internal/model"
)

// AdminServiceInterface はレビュアーハンドラーが必要とするサービスインターフェース。
type AdminServiceInterface interface {
	// List は全レビュアーを名前順で返す。
	List(ctx context.Context) ([]*model.Admin, error)
	// Upsert はレビュアーを登録し、登録後の一覧を返す。
	Upsert(ctx context.Context, uid, name string) ([]*model.Admin, error)
	// Delete は指定UIDのレビュアーを削除し、残りの一覧を返す。
	Delete(ctx context.Context, uid string) ([]*model.Admin, error)
}

// CounterResetter はレビューカウンターのリセットインターフェース。
// review.Serviceの部分集合として定義する。
type CounterResetter interface {
	// ResetTotals は累計・セッション両方のカウンターをゼロにする。
	ResetTotals(ctx context.Context, uid string) error
	// ResetSession はセッションカウンターのみをゼロにする。
	ResetSession(ctx context.Context, uid string) error
}

// AdminHandler はレビュアー台帳のHTTPハンドラー。
type AdminHandler struct {
	service  AdminServiceInterface
	resetter CounterResetter
}

// NewAdminHandler はAdminHandlerを生成する。
func NewAdminHandler(service AdminServiceInterface, resetter CounterResetter) *AdminHandler {
	return &AdminHandler{
		service:  service,
		resetter: resetter,
	}
}

// upsertAdminRequest はレビュアー登録リクエストのボディ。
type upsertAdminRequest struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

// adminResponse はレビュアー情報のAPIレスポンス。
type adminResponse struct {
	UID            string     `json:"uid"`
	Name           string     `json:"name"`
	TotalReviews   int        `json:"totalReviews"`
	SessionReviews int        `json:"sessionReviews"`
	LastReview     *time.Time `json:"lastReview"`
}

// List は全レビュアーを名前順で返す。
// GET /api/admins
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAdminResponses(admins))
}

// Upsert はレビュアーの登録を処理する。
// POST /api/admins
func (h *AdminHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	if _, err := h.service.Upsert(r.Context(), req.UID, req.Name); err != nil {
		handleServiceError(w, err)
		return
	}

	writeStatusOK(w)
}

// Delete は指定UIDのレビュアーを削除する。
// DELETE /api/admins/{uid}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	if _, err := h.service.Delete(r.Context(), uid); err != nil {
		handleServiceError(w, err)
		return
	}

	writeStatusOK(w)
}

// ResetReviews はレビュアーの累計・セッション両方のカウンターをゼロにする。
// POST /api/admins/{uid}/reset-reviews
func (h *AdminHandler) ResetReviews(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	if err := h.resetter.ResetTotals(r.Context(), uid); err != nil {
		handleServiceError(w, err)
		return
	}

	writeStatusOK(w)
}

// ResetSession はレビュアーのセッションカウンターのみをゼロにする。
// POST /api/admins/{uid}/reset-session
func (h *AdminHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	if err := h.resetter.ResetSession(r.Context(), uid); err != nil {
		handleServiceError(w, err)
		return
	}

	writeStatusOK(w)
}

// toAdminResponses はmodel.AdminのリストからAPIレスポンスに変換する。
func toAdminResponses(admins []*model.Admin) []adminResponse {
	responses := make([]adminResponse, 0, len(admins))
	for _, admin := range admins {
		responses = append(responses, adminResponse{
			UID:            admin.UID,
			Name:           admin.Name,
			TotalReviews:   admin.TotalReviews,
			SessionReviews: admin.SessionReviews,
			LastReview:     admin.LastReview,
		})
	}
	return responses
}
