package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

// リクエストIDが採番され、レスポンスヘッダーとコンテキストに設定されることを確認
func TestRequestIDMiddleware_Generates(t *testing.T) {
	mw := NewRequestIDMiddleware()

	var ctxID string
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	headerID := rec.Header().Get("X-Request-ID")
	if headerID == "" {
		t.Fatal("expected X-Request-ID header")
	}
	if ctxID != headerID {
		t.Errorf("context ID %q != header ID %q", ctxID, headerID)
	}
	if _, err := uuid.Parse(headerID); err != nil {
		t.Errorf("generated ID %q is not a valid UUID: %v", headerID, err)
	}
}

// クライアント提供のX-Request-IDが引き継がれることを確認
func TestRequestIDMiddleware_PropagatesClientID(t *testing.T) {
	mw := NewRequestIDMiddleware()

	var ctxID string
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if ctxID != "client-supplied-id" {
		t.Errorf("context ID = %q, want %q", ctxID, "client-supplied-id")
	}
	if got := rec.Header().Get("X-Request-ID"); got != "client-supplied-id" {
		t.Errorf("header ID = %q, want %q", got, "client-supplied-id")
	}
}

// 未設定コンテキストでは空文字列が返ることを確認
func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", got)
	}
}
