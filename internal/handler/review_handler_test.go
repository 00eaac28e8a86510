package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hitoshi/wheelshare/internal/model"
	"github.com/hitoshi/wheelshare/internal/review"
)

// mockReviewService はReviewServiceInterfaceのモック実装。
type mockReviewService struct {
	nextForReviewFn func(ctx context.Context) (*model.SharedWheel, error)
	pendingCountFn  func(ctx context.Context) (int, error)
	decideFn        func(ctx context.Context, path, reviewerUID string, outcome review.Outcome) error
}

func (m *mockReviewService) NextForReview(ctx context.Context) (*model.SharedWheel, error) {
	if m.nextForReviewFn != nil {
		return m.nextForReviewFn(ctx)
	}
	return nil, nil
}

func (m *mockReviewService) PendingCount(ctx context.Context) (int, error) {
	if m.pendingCountFn != nil {
		return m.pendingCountFn(ctx)
	}
	return 0, nil
}

func (m *mockReviewService) Decide(ctx context.Context, path, reviewerUID string, outcome review.Outcome) error {
	if m.decideFn != nil {
		return m.decideFn(ctx, path, reviewerUID, outcome)
	}
	return nil
}

// --- GET /api/review-queue/next テスト ---

func TestReviewHandler_Next_ReturnsMostReadPending(t *testing.T) {
	lastRead := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	svc := &mockReviewService{
		nextForReviewFn: func(ctx context.Context) (*model.SharedWheel, error) {
			return &model.SharedWheel{
				Path:         "abc-234",
				Config:       json.RawMessage(`{"title":"Lunch"}`),
				Copyable:     true,
				ReviewStatus: model.ReviewStatusPending,
				Created:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
				LastRead:     &lastRead,
				ReadCount:    42,
			}, nil
		},
	}
	h := NewReviewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/review-queue/next", nil)
	w := httptest.NewRecorder()

	h.Next(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Path         string          `json:"path"`
		Config       json.RawMessage `json:"config"`
		Copyable     bool            `json:"copyable"`
		ReviewStatus string          `json:"reviewStatus"`
		ReadCount    int             `json:"readCount"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Path != "abc-234" {
		t.Errorf("path = %q, want %q", resp.Path, "abc-234")
	}
	if resp.ReviewStatus != "Pending" {
		t.Errorf("reviewStatus = %q, want %q", resp.ReviewStatus, "Pending")
	}
	if resp.ReadCount != 42 {
		t.Errorf("readCount = %d, want 42", resp.ReadCount)
	}
}

func TestReviewHandler_Next_EmptyQueueReturnsNull(t *testing.T) {
	svc := &mockReviewService{
		nextForReviewFn: func(ctx context.Context) (*model.SharedWheel, error) {
			return nil, nil
		},
	}
	h := NewReviewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/review-queue/next", nil)
	w := httptest.NewRecorder()

	h.Next(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); body != "null\n" {
		t.Errorf("body = %q, want %q", body, "null\n")
	}
}

// --- GET /api/review-queue/count テスト ---

func TestReviewHandler_Count(t *testing.T) {
	svc := &mockReviewService{
		pendingCountFn: func(ctx context.Context) (int, error) {
			return 5, nil
		},
	}
	h := NewReviewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/review-queue/count", nil)
	w := httptest.NewRecorder()

	h.Count(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]int
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["wheelsInReviewQueue"] != 5 {
		t.Errorf("wheelsInReviewQueue = %d, want 5", resp["wheelsInReviewQueue"])
	}
}

// --- POST /api/review-queue/{path}/approve, /delete テスト ---

func TestReviewHandler_Approve(t *testing.T) {
	var gotPath, gotUID string
	var gotOutcome review.Outcome
	svc := &mockReviewService{
		decideFn: func(ctx context.Context, path, reviewerUID string, outcome review.Outcome) error {
			gotPath = path
			gotUID = reviewerUID
			gotOutcome = outcome
			return nil
		},
	}
	h := NewReviewHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/review-queue/abc-234/approve", nil)
	req = withUserID(req, model.DefaultOwnerUID)
	req = withChiURLParam(req, "path", "abc-234")
	w := httptest.NewRecorder()

	h.Approve(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotPath != "abc-234" {
		t.Errorf("path = %q, want %q", gotPath, "abc-234")
	}
	if gotUID != model.DefaultOwnerUID {
		t.Errorf("reviewerUID = %q, want %q", gotUID, model.DefaultOwnerUID)
	}
	if gotOutcome != review.OutcomeApprove {
		t.Errorf("outcome = %q, want %q", gotOutcome, review.OutcomeApprove)
	}
}

func TestReviewHandler_Reject(t *testing.T) {
	var gotOutcome review.Outcome
	svc := &mockReviewService{
		decideFn: func(ctx context.Context, path, reviewerUID string, outcome review.Outcome) error {
			gotOutcome = outcome
			return nil
		},
	}
	h := NewReviewHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/review-queue/abc-234/delete", nil)
	req = withChiURLParam(req, "path", "abc-234")
	w := httptest.NewRecorder()

	h.Reject(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotOutcome != review.OutcomeReject {
		t.Errorf("outcome = %q, want %q", gotOutcome, review.OutcomeReject)
	}
}

func TestReviewHandler_Decide_InvalidPath(t *testing.T) {
	svc := &mockReviewService{
		decideFn: func(ctx context.Context, path, reviewerUID string, outcome review.Outcome) error {
			return model.NewInvalidPathError("パスが空です")
		},
	}
	h := NewReviewHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/review-queue//approve", nil)
	req = withChiURLParam(req, "path", "")
	w := httptest.NewRecorder()

	h.Approve(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	resp := parseAPIErrorResponse(t, w)
	if resp["code"] != model.ErrCodeInvalidPath {
		t.Errorf("code = %q, want %q", resp["code"], model.ErrCodeInvalidPath)
	}
}
