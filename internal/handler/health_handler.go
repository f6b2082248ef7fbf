package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"
)

// DBTimeQuerier はDB疎通確認に必要なインターフェース。
// *sql.DBの部分集合として定義する。
type DBTimeQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HealthHandler はヘルスチェックとDB疎通確認のHTTPハンドラー。
type HealthHandler struct {
	db DBTimeQuerier
}

// NewHealthHandler はHealthHandlerを生成する。
func NewHealthHandler(db DBTimeQuerier) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health はプロセスの生存確認に応答する。依存コンポーネントには触れない。
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// TestDB はデータベースへの疎通を確認する。
// GET /test-db
//
// 診断専用エンドポイント。失敗時はエラーメッセージをそのまま返す。
func (h *HealthHandler) TestDB(w http.ResponseWriter, r *http.Request) {
	var now time.Time
	err := h.db.QueryRowContext(r.Context(), "SELECT NOW()").Scan(&now)
	if err != nil {
		writeJSONResponse(w, http.StatusInternalServerError, map[string]any{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"status": "success",
		"time":   now.UTC().Format(time.RFC3339),
	})
}
