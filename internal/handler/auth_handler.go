// Package handler はHTTP APIのルーティングとハンドラーを提供する。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/storefront/internal/middleware"
	"github.com/hitoshi/storefront/internal/model"
)

// AccountServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AccountServiceInterface interface {
	// Register は新規ユーザーを登録する。
	Register(ctx context.Context, name, email, phone, password string) (*model.User, error)
	// Login は認証情報を検証し、セッショントークンとユーザーを返す。
	Login(ctx context.Context, email, password string) (string, *model.User, error)
}

// AuthHandler はアカウント登録・ログイン・トークン検証のHTTPハンドラー。
type AuthHandler struct {
	service  AccountServiceInterface
	verifier middleware.TokenVerifier
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AccountServiceInterface, verifier middleware.TokenVerifier) *AuthHandler {
	return &AuthHandler{
		service:  service,
		verifier: verifier,
	}
}

// registerRequest はユーザー登録リクエストのボディ。
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// loginRequest はログインリクエストのボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registeredUserResponse は登録直後に返す最小限のユーザー情報。
type registeredUserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// userResponse はログイン時に返すユーザー情報。
type userResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Register はユーザー登録を処理する。
// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, invalidRequestBodyError())
		return
	}

	user, err := h.service.Register(r.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user": registeredUserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Login はログインを処理する。
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, invalidRequestBodyError())
		return
	}

	if req.Email == "" || req.Password == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     model.ErrCodeValidation,
			Message:  "Email and password are required",
			Category: "validation",
		})
		return
	}

	token, user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"token": token,
		"user": userResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
			Role:  user.Role,
		},
	})
}

// VerifyToken はベアラートークンの有効性を検証する。
// GET /verify-token
//
// チェックアウトの認証ゲートと異なり、未提示・検証失敗のいずれも
// 401と{valid:false}で応答する（フロントエンドのセッション確認用）。
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		writeJSONResponse(w, http.StatusUnauthorized, map[string]any{
			"valid":   false,
			"message": "No token provided",
		})
		return
	}

	userID, err := h.verifier.Verify(token)
	if err != nil {
		writeJSONResponse(w, http.StatusUnauthorized, map[string]any{
			"valid":   false,
			"message": "Invalid token",
		})
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"valid":  true,
		"userId": userID,
	})
}

// --- ヘルパー関数 ---

// writeJSONResponse はJSONレスポンスを書き込む。
func writeJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// writeAPIErrorResponse は統一エラーフォーマットでエラーレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	middleware.WriteErrorResponse(w, statusCode, apiErr)
}

// invalidRequestBodyError はリクエストボディ解析失敗エラーを生成する。
func invalidRequestBodyError() *model.APIError {
	return &model.APIError{
		Code:     model.ErrCodeValidation,
		Message:  "Invalid request body",
		Category: "validation",
	}
}

// asAPIError はエラーチェーンからAPIErrorを取り出す。
func asAPIError(err error) (*model.APIError, bool) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	if apiErr, ok := asAPIError(err); ok {
		writeAPIErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	middleware.WriteInternalServerError(w)
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeValidation, model.ErrCodeEmptyCart:
		return http.StatusBadRequest
	case model.ErrCodeEmailTaken, model.ErrCodeUserNotFound, model.ErrCodeInvalidCredentials:
		return http.StatusBadRequest
	case model.ErrCodeNoToken:
		return http.StatusUnauthorized
	case model.ErrCodeInvalidToken:
		return http.StatusForbidden
	case model.ErrCodeProductNotFound:
		return http.StatusNotFound
	case model.ErrCodeTransactionFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
