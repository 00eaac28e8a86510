package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/wheelshare/internal/middleware"
	"github.com/hitoshi/wheelshare/internal/model"
	"github.com/hitoshi/wheelshare/internal/review"
)

// ReviewServiceInterface はレビューハンドラーが必要とするサービスインターフェース。
type ReviewServiceInterface interface {
	// NextForReview はレビュー待ちのうち閲覧数が最大の共有ホイールを返す。
	NextForReview(ctx context.Context) (*model.SharedWheel, error)
	// PendingCount はレビュー待ちの件数を返す。
	PendingCount(ctx context.Context) (int, error)
	// Decide はモデレーション決定を適用する。
	Decide(ctx context.Context, path, reviewerUID string, outcome review.Outcome) error
}

// ReviewHandler はモデレーションキューのHTTPハンドラー。
type ReviewHandler struct {
	service ReviewServiceInterface
}

// NewReviewHandler はReviewHandlerを生成する。
func NewReviewHandler(service ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		service: service,
	}
}

// reviewQueueEntry はレビュー待ちホイールのレスポンス。
type reviewQueueEntry struct {
	Path         string             `json:"path"`
	Config       json.RawMessage    `json:"config"`
	Copyable     bool               `json:"copyable"`
	ReviewStatus model.ReviewStatus `json:"reviewStatus"`
	Created      time.Time          `json:"created"`
	LastRead     *time.Time         `json:"lastRead"`
	ReadCount    int                `json:"readCount"`
}

// queueCountResponse はレビュー待ち件数のレスポンス。
type queueCountResponse struct {
	WheelsInReviewQueue int `json:"wheelsInReviewQueue"`
}

// Next はレビュー待ちのうち閲覧数が最大のホイールを返す。
// 待ちが無い場合はnullを返す。
// GET /api/review-queue/next
func (h *ReviewHandler) Next(w http.ResponseWriter, r *http.Request) {
	wheel, err := h.service.NextForReview(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if wheel == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	writeJSON(w, http.StatusOK, reviewQueueEntry{
		Path:         wheel.Path,
		Config:       wheel.Config,
		Copyable:     wheel.Copyable,
		ReviewStatus: wheel.ReviewStatus,
		Created:      wheel.Created,
		LastRead:     wheel.LastRead,
		ReadCount:    wheel.ReadCount,
	})
}

// Count はレビュー待ち件数を返す。
// GET /api/review-queue/count
func (h *ReviewHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.PendingCount(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, queueCountResponse{WheelsInReviewQueue: count})
}

// Approve は共有ホイールの承認を処理する。
// POST /api/review-queue/{path}/approve
func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, review.OutcomeApprove)
}

// Reject は共有ホイールの却下（削除）を処理する。
// POST /api/review-queue/{path}/delete
func (h *ReviewHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, review.OutcomeReject)
}

func (h *ReviewHandler) decide(w http.ResponseWriter, r *http.Request, outcome review.Outcome) {
	path := chi.URLParam(r, "path")

	reviewerUID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		reviewerUID = model.DefaultOwnerUID
	}

	if err := h.service.Decide(r.Context(), path, reviewerUID, outcome); err != nil {
		handleServiceError(w, err)
		return
	}

	writeStatusOK(w)
}
