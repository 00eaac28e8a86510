package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/wheelshare/internal/model"
)

// SharingServiceInterface は共有ホイールハンドラーが必要とするサービスインターフェース。
type SharingServiceInterface interface {
	// Publish はホイールを公開し、払い出された共有パスを返す。
	Publish(ctx context.Context, rawConfig json.RawMessage, copyable bool) (string, error)
	// GetPublished は共有パスでホイールを取得する。見つからない場合はnilを返す。
	GetPublished(ctx context.Context, path string) (*model.SharedWheel, error)
	// LogRead は共有ホイールの閲覧を記録する。
	LogRead(ctx context.Context, path string) error
	// ListOwn はデフォルトアイデンティティの共有ホイール一覧を返す。
	ListOwn(ctx context.Context) ([]*model.SharedWheel, error)
	// DeleteOwn は共有ホイールを削除し、残りの一覧を返す。
	DeleteOwn(ctx context.Context, path string) ([]*model.SharedWheel, error)
}

// SharedWheelHandler は共有ホイールのHTTPハンドラー。
type SharedWheelHandler struct {
	service SharingServiceInterface
}

// NewSharedWheelHandler はSharedWheelHandlerを生成する。
func NewSharedWheelHandler(service SharingServiceInterface) *SharedWheelHandler {
	return &SharedWheelHandler{
		service: service,
	}
}

// publishRequest は共有ホイール公開リクエストのボディ。
// editableは旧クライアントが使うフィールドで、copyableが優先される。
type publishRequest struct {
	WheelConfig json.RawMessage `json:"wheelConfig"`
	Copyable    *bool           `json:"copyable"`
	Editable    *bool           `json:"editable"`
}

// publishResponse は公開成功時のレスポンス。
type publishResponse struct {
	Path string `json:"path"`
}

// sharedWheelEntry はオーナー向け共有ホイール一覧の1エントリ。
type sharedWheelEntry struct {
	Path      string          `json:"path"`
	Config    json.RawMessage `json:"config"`
	Copyable  bool            `json:"copyable"`
	Created   time.Time       `json:"created"`
	ReadCount int             `json:"readCount"`
}

// sharedWheelListResponse はオーナー向け共有ホイール一覧のレスポンス。
type sharedWheelListResponse struct {
	Wheels []sharedWheelEntry `json:"wheels"`
}

// publishedWheelBody は共有ページ向けレスポンスの内側のボディ。
type publishedWheelBody struct {
	WheelConfig  json.RawMessage    `json:"wheelConfig"`
	Copyable     bool               `json:"copyable"`
	Editable     bool               `json:"editable"`
	ReviewStatus model.ReviewStatus `json:"reviewStatus"`
}

// wheelNotFoundBody は未検出時の共有ページ向けレスポンスの内側のボディ。
type wheelNotFoundBody struct {
	WheelNotFound bool `json:"wheelNotFound"`
}

// publishedWheelResponse は共有ページ向けレスポンス。
type publishedWheelResponse struct {
	WheelConfig any `json:"wheelConfig"`
}

// Publish はホイールの公開を処理する。
// POST /api/shared-wheels
func (h *SharedWheelHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	if len(req.WheelConfig) == 0 {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("wheelConfigがありません"))
		return
	}

	// editableとcopyableの両方が指定された場合はcopyableが勝つ
	copyable := false
	if req.Editable != nil {
		copyable = *req.Editable
	}
	if req.Copyable != nil {
		copyable = *req.Copyable
	}

	path, err := h.service.Publish(r.Context(), req.WheelConfig, copyable)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, publishResponse{Path: path})
}

// ListOwn はオーナーの共有ホイール一覧を返す。
// GET /api/shared-wheels
func (h *SharedWheelHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	wheels, err := h.service.ListOwn(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSharedWheelListResponse(wheels))
}

// GetPublished は共有パスでホイールを返す。
// GET /api/shared-wheels/{path}
func (h *SharedWheelHandler) GetPublished(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "path")

	wheel, err := h.service.GetPublished(r.Context(), path)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if wheel == nil {
		writeJSON(w, http.StatusNotFound, publishedWheelResponse{
			WheelConfig: wheelNotFoundBody{WheelNotFound: true},
		})
		return
	}

	writeJSON(w, http.StatusOK, publishedWheelResponse{
		WheelConfig: publishedWheelBody{
			WheelConfig:  wheel.Config,
			Copyable:     wheel.Copyable,
			Editable:     wheel.Copyable,
			ReviewStatus: wheel.ReviewStatus,
		},
	})
}

// DeleteOwn はオーナーの共有ホイールを削除し、残りの一覧を返す。
// DELETE /api/shared-wheels/{path}
func (h *SharedWheelHandler) DeleteOwn(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "path")

	wheels, err := h.service.DeleteOwn(r.Context(), path)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSharedWheelListResponse(wheels))
}

// logReadRequest は閲覧記録リクエストのボディ。
type logReadRequest struct {
	Path string `json:"path"`
}

// LogRead は共有ホイールの閲覧記録を処理する。
// POST /api/shared-wheel-reads
func (h *SharedWheelHandler) LogRead(w http.ResponseWriter, r *http.Request) {
	var req logReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	if err := h.service.LogRead(r.Context(), req.Path); err != nil {
		handleServiceError(w, err)
		return
	}

	writeStatusOK(w)
}

// toSharedWheelListResponse はmodel.SharedWheelのリストからAPIレスポンスに変換する。
func toSharedWheelListResponse(wheels []*model.SharedWheel) sharedWheelListResponse {
	entries := make([]sharedWheelEntry, 0, len(wheels))
	for _, wheel := range wheels {
		entries = append(entries, sharedWheelEntry{
			Path:      wheel.Path,
			Config:    wheel.Config,
			Copyable:  wheel.Copyable,
			Created:   wheel.Created,
			ReadCount: wheel.ReadCount,
		})
	}
	return sharedWheelListResponse{Wheels: entries}
}
