package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

// newRequestFrom は指定クライアントIPからのリクエストを生成するヘルパー。
func newRequestFrom(method, target, clientIP string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = clientIP + ":51234"
	return req
}

// --- RateLimitMiddleware (API全般) のテスト ---

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     2, // 2 req/sec
		GeneralBurst:    5, // バースト5
		PublishRate:     1, // 未使用
		PublishBurst:    10,
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	mw := rl.GeneralMiddleware()

	handlerCallCount := 0
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCallCount++
		w.WriteHeader(http.StatusOK)
	}))

	// バースト内の5リクエストは全て通る
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/test", "10.0.0.1"))

		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("request %d: status = %d, want %d", i, w.Result().StatusCode, http.StatusOK)
		}
	}

	if handlerCallCount != 5 {
		t.Errorf("handler call count = %d, want 5", handlerCallCount)
	}
}

func TestRateLimitMiddleware_Returns429WhenLimitExceeded(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     1, // 1 req/sec
		GeneralBurst:    2, // バースト2
		PublishRate:     1,
		PublishBurst:    10,
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	mw := rl.GeneralMiddleware()

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// バースト分（2回）は通る
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/test", "10.0.0.2"))

		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("request %d: status = %d, want %d", i, w.Result().StatusCode, http.StatusOK)
		}
	}

	// 3回目はレート制限に引っかかる
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/test", "10.0.0.2"))

	if w.Result().StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusTooManyRequests)
	}
}

func TestRateLimitMiddleware_Returns429WithRetryAfterHeader(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     1, // 1 req/sec
		GeneralBurst:    1, // バースト1
		PublishRate:     1,
		PublishBurst:    10,
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	mw := rl.GeneralMiddleware()

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// 1回目は通る
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/test", "10.0.0.3"))

	// 2回目は429になる
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, newRequestFrom(http.MethodGet, "/api/test", "10.0.0.3"))

	if w2.Result().StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", w2.Result().StatusCode, http.StatusTooManyRequests)
	}

	retryAfter := w2.Result().Header.Get("Retry-After")
	if retryAfter == "" {
		t.Fatal("expected Retry-After header to be present")
	}

	// Retry-Afterは数値（秒）であること
	retrySeconds, err := strconv.Atoi(retryAfter)
	if err != nil {
		t.Errorf("Retry-After header should be a number, got %q", retryAfter)
	}
	if retrySeconds < 1 {
		t.Errorf("Retry-After = %d, should be at least 1", retrySeconds)
	}
}

func TestRateLimitMiddleware_IsolatesClientRateLimits(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     1, // 1 req/sec
		GeneralBurst:    1, // バースト1
		PublishRate:     1,
		PublishBurst:    10,
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	mw := rl.GeneralMiddleware()

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// クライアントAの1回目は通る
	wA := httptest.NewRecorder()
	handler.ServeHTTP(wA, newRequestFrom(http.MethodGet, "/api/test", "10.0.1.1"))

	if wA.Result().StatusCode != http.StatusOK {
		t.Errorf("client A first request: status = %d, want %d", wA.Result().StatusCode, http.StatusOK)
	}

	// クライアントAの2回目は429
	wA2 := httptest.NewRecorder()
	handler.ServeHTTP(wA2, newRequestFrom(http.MethodGet, "/api/test", "10.0.1.1"))

	if wA2.Result().StatusCode != http.StatusTooManyRequests {
		t.Errorf("client A second request: status = %d, want %d", wA2.Result().StatusCode, http.StatusTooManyRequests)
	}

	// クライアントBの1回目は通る（クライアントAのレートに影響されない）
	wB := httptest.NewRecorder()
	handler.ServeHTTP(wB, newRequestFrom(http.MethodGet, "/api/test", "10.0.1.2"))

	if wB.Result().StatusCode != http.StatusOK {
		t.Errorf("client B first request: status = %d, want %d", wB.Result().StatusCode, http.StatusOK)
	}
}

func TestRateLimitMiddleware_UsesForwardedForHeader(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     1,
		GeneralBurst:    1,
		PublishRate:     1,
		PublishBurst:    10,
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// 同一のRemoteAddrでもX-Forwarded-Forが異なれば別クライアントとして扱う
	req1 := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req1.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.254")
	w1 := httptest.NewRecorder()
	handler.ServeHTTP(w1, req1)

	req2 := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req2.Header.Set("X-Forwarded-For", "198.51.100.2, 10.0.0.254")
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, req2)

	if w1.Result().StatusCode != http.StatusOK || w2.Result().StatusCode != http.StatusOK {
		t.Errorf("distinct forwarded clients should both pass: got %d and %d",
			w1.Result().StatusCode, w2.Result().StatusCode)
	}

	// 同じX-Forwarded-Forの2回目は429
	req3 := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req3.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.254")
	w3 := httptest.NewRecorder()
	handler.ServeHTTP(w3, req3)

	if w3.Result().StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", w3.Result().StatusCode, http.StatusTooManyRequests)
	}
}

// --- PublishMiddleware のテスト ---

func TestPublishRateLimit_AllowsRequestsWithinLimit(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     100, // 高い値（制限に引っかからないように）
		GeneralBurst:    200,
		PublishRate:     1, // 1 req/sec
		PublishBurst:    3, // バースト3
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	mw := rl.PublishMiddleware()

	handlerCallCount := 0
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCallCount++
		w.WriteHeader(http.StatusOK)
	}))

	// バースト内の3リクエストは全て通る
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newRequestFrom(http.MethodPost, "/api/shared-wheels", "10.0.2.1"))

		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("request %d: status = %d, want %d", i, w.Result().StatusCode, http.StatusOK)
		}
	}

	if handlerCallCount != 3 {
		t.Errorf("handler call count = %d, want 3", handlerCallCount)
	}
}

func TestPublishRateLimit_Returns429WhenLimitExceeded(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     100,
		GeneralBurst:    200,
		PublishRate:     1, // 1 req/sec
		PublishBurst:    1, // バースト1
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	mw := rl.PublishMiddleware()

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// 1回目は通る
	w1 := httptest.NewRecorder()
	handler.ServeHTTP(w1, newRequestFrom(http.MethodPost, "/api/shared-wheels", "10.0.2.2"))

	if w1.Result().StatusCode != http.StatusOK {
		t.Errorf("request 1: status = %d, want %d", w1.Result().StatusCode, http.StatusOK)
	}

	// 2回目は429
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, newRequestFrom(http.MethodPost, "/api/shared-wheels", "10.0.2.2"))

	if w2.Result().StatusCode != http.StatusTooManyRequests {
		t.Errorf("request 2: status = %d, want %d", w2.Result().StatusCode, http.StatusTooManyRequests)
	}

	retryAfter := w2.Result().Header.Get("Retry-After")
	if retryAfter == "" {
		t.Error("expected Retry-After header to be present")
	}
}

func TestPublishRateLimit_IndependentFromGeneralLimit(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     1,
		GeneralBurst:    1,
		PublishRate:     1,
		PublishBurst:    1,
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	generalMW := rl.GeneralMiddleware()
	publishMW := rl.PublishMiddleware()

	// General MWでリクエスト（バーストを消費）
	generalHandler := generalMW(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w1 := httptest.NewRecorder()
	generalHandler.ServeHTTP(w1, newRequestFrom(http.MethodGet, "/api/test", "10.0.2.3"))

	// General limitは使い果たした。Publish limitはまだ使える
	publishHandler := publishMW(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w2 := httptest.NewRecorder()
	publishHandler.ServeHTTP(w2, newRequestFrom(http.MethodPost, "/api/shared-wheels", "10.0.2.3"))

	if w2.Result().StatusCode != http.StatusOK {
		t.Errorf("publish should still be allowed: status = %d, want %d",
			w2.Result().StatusCode, http.StatusOK)
	}
}

// --- 429レスポンスフォーマットのテスト ---

func TestRateLimitMiddleware_429ResponseIsJSON(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     1,
		GeneralBurst:    1,
		PublishRate:     1,
		PublishBurst:    10,
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	mw := rl.GeneralMiddleware()

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// バースト消費
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/test", "10.0.3.1"))

	// 429レスポンス
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, newRequestFrom(http.MethodGet, "/api/test", "10.0.3.1"))

	resp := w2.Result()
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusTooManyRequests)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q, want %q", contentType, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body["code"] == "" {
		t.Error("expected 'code' field in error response")
	}
	if body["message"] == "" {
		t.Error("expected 'message' field in error response")
	}
	if body["category"] == "" {
		t.Error("expected 'category' field in error response")
	}
}

// --- クリーンアップのテスト ---

func TestRateLimiter_CleanupRemovesExpiredEntries(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     2,
		GeneralBurst:    5,
		PublishRate:     1,
		PublishBurst:    10,
		CleanupInterval: 50 * time.Millisecond, // テスト用に短く
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	mw := rl.GeneralMiddleware()

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// リクエストを発行してエントリを作成
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/test", "10.0.4.1"))

	// エントリが存在することを確認
	if rl.GeneralLimiterCount() == 0 {
		t.Fatal("expected at least one limiter entry")
	}

	// クリーンアップが実行されるのを待つ
	// エントリのTTLはcleanupIntervalの2倍
	// 50ms * 2 = 100ms がTTL、200ms待てば削除されるはず
	time.Sleep(200 * time.Millisecond)

	if count := rl.GeneralLimiterCount(); count != 0 {
		t.Errorf("expected 0 limiter entries after cleanup, got %d", count)
	}
}

// --- ClientIP のテスト ---

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"remote addr only", "10.0.5.1:51234", "", "10.0.5.1"},
		{"forwarded single", "10.0.5.1:51234", "198.51.100.7", "198.51.100.7"},
		{"forwarded chain", "10.0.5.1:51234", "198.51.100.7, 10.0.0.254", "198.51.100.7"},
		{"remote addr without port", "10.0.5.1", "", "10.0.5.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- デフォルト設定値のテスト ---

func TestDefaultRateLimiterConfig(t *testing.T) {
	cfg := DefaultRateLimiterConfig()

	if cfg.GeneralRate != 2.0 { // 120/60 = 2
		t.Errorf("GeneralRate = %f, want 2.0", cfg.GeneralRate)
	}
	if cfg.GeneralBurst != 120 {
		t.Errorf("GeneralBurst = %d, want 120", cfg.GeneralBurst)
	}
	if cfg.PublishRate == 0 {
		t.Error("PublishRate should not be 0")
	}
	if cfg.PublishBurst != 10 {
		t.Errorf("PublishBurst = %d, want 10", cfg.PublishBurst)
	}
}
