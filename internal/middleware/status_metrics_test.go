package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// recordedStatuses はHTTPStatusRecorderのモック実装。
type recordedStatuses struct {
	codes []int
}

func (r *recordedStatuses) RecordHTTPStatus(statusCode int) {
	r.codes = append(r.codes, statusCode)
}

// TestStatusMetricsMiddleware_RecordsStatusCode はレスポンスのステータスコードが記録されることを検証する。
func TestStatusMetricsMiddleware_RecordsStatusCode(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"200 OK", http.StatusOK},
		{"404 Not Found", http.StatusNotFound},
		{"451 Blocked", http.StatusUnavailableForLegalReasons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordedStatuses{}
			handler := NewStatusMetricsMiddleware(rec)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if len(rec.codes) != 1 || rec.codes[0] != tt.statusCode {
				t.Errorf("recorded codes = %v, want [%d]", rec.codes, tt.statusCode)
			}
		})
	}
}

// TestStatusMetricsMiddleware_ImplicitOK はWriteHeader未呼び出しの場合に200が記録されることを検証する。
func TestStatusMetricsMiddleware_ImplicitOK(t *testing.T) {
	rec := &recordedStatuses{}
	handler := NewStatusMetricsMiddleware(rec)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if len(rec.codes) != 1 || rec.codes[0] != http.StatusOK {
		t.Errorf("recorded codes = %v, want [200]", rec.codes)
	}
}
