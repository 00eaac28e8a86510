package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/wheelshare/internal/model"
)

// WheelServiceInterface は保存済みホイールハンドラーが必要とするサービスインターフェース。
type WheelServiceInterface interface {
	// List はデフォルトアイデンティティのホイール一覧をタイトル順で返す。
	List(ctx context.Context) ([]*model.Wheel, error)
	// Save はホイールをタイトル単位で作成または上書き保存する。
	Save(ctx context.Context, rawConfig json.RawMessage) ([]*model.Wheel, error)
	// Delete は指定タイトルのホイールを削除する。
	Delete(ctx context.Context, title string) ([]*model.Wheel, error)
}

// WheelHandler は保存済みホイールのHTTPハンドラー。
type WheelHandler struct {
	service WheelServiceInterface
}

// NewWheelHandler はWheelHandlerを生成する。
func NewWheelHandler(service WheelServiceInterface) *WheelHandler {
	return &WheelHandler{
		service: service,
	}
}

// saveWheelRequest はホイール保存リクエストのボディ。
type saveWheelRequest struct {
	Config json.RawMessage `json:"config"`
}

// wheelListResponse はホイール一覧のレスポンス。configのみを返す。
type wheelListResponse struct {
	Wheels []json.RawMessage `json:"wheels"`
}

// List は保存済みホイール一覧を返す。
// GET /api/wheels
func (h *WheelHandler) List(w http.ResponseWriter, r *http.Request) {
	wheels, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toWheelListResponse(wheels))
}

// Save はホイールの保存を処理する。
// POST /api/wheels
func (h *WheelHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveWheelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	if len(req.Config) == 0 {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("configがありません"))
		return
	}

	if _, err := h.service.Save(r.Context(), req.Config); err != nil {
		handleServiceError(w, err)
		return
	}

	writeStatusOK(w)
}

// Delete は指定タイトルのホイールを削除する。
// DELETE /api/wheels/{title}
func (h *WheelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	if _, err := h.service.Delete(r.Context(), title); err != nil {
		handleServiceError(w, err)
		return
	}

	writeStatusOK(w)
}

// toWheelListResponse はmodel.WheelのリストからAPIレスポンスに変換する。
func toWheelListResponse(wheels []*model.Wheel) wheelListResponse {
	configs := make([]json.RawMessage, 0, len(wheels))
	for _, wheel := range wheels {
		configs = append(configs, wheel.Config)
	}
	return wheelListResponse{Wheels: configs}
}
