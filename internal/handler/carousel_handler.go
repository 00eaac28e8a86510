package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/wheelshare/internal/model"
)

// CarouselServiceInterface はショーケースハンドラーが必要とするサービスインターフェース。
type CarouselServiceInterface interface {
	// List は全項目を表示順で返す。
	List(ctx context.Context) ([]*model.CarouselItem, error)
	// Replace は全項目を渡された順序で置き換える。
	Replace(ctx context.Context, items []json.RawMessage) ([]*model.CarouselItem, error)
}

// CarouselHandler はショーケース項目のHTTPハンドラー。
type CarouselHandler struct {
	service CarouselServiceInterface
}

// NewCarouselHandler はCarouselHandlerを生成する。
func NewCarouselHandler(service CarouselServiceInterface) *CarouselHandler {
	return &CarouselHandler{
		service: service,
	}
}

// replaceCarouselRequest はショーケース全置換リクエストのボディ。
type replaceCarouselRequest struct {
	Carousel []json.RawMessage `json:"carousel"`
}

// List は全項目をペイロードの配列として返す。
// GET /api/carousels
func (h *CarouselHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	payloads := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, item.Data)
	}

	writeJSON(w, http.StatusOK, payloads)
}

// Replace は全項目の置き換えを処理する。
// POST /api/carousels
func (h *CarouselHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req replaceCarouselRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	if _, err := h.service.Replace(r.Context(), req.Carousel); err != nil {
		handleServiceError(w, err)
		return
	}

	writeStatusOK(w)
}
