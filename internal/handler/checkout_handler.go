package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/storefront/internal/checkout"
	"github.com/hitoshi/storefront/internal/middleware"
	"github.com/hitoshi/storefront/internal/model"
)

// CheckoutServiceInterface はチェックアウトハンドラーが必要とするサービスインターフェース。
type CheckoutServiceInterface interface {
	// Checkout はカートと宛先を検証し、注文を作成して注文IDを返す。
	Checkout(ctx context.Context, input checkout.Input) (int, error)
}

// CheckoutHandler はチェックアウトのHTTPハンドラー。
type CheckoutHandler struct {
	service CheckoutServiceInterface
}

// NewCheckoutHandler はCheckoutHandlerを生成する。
func NewCheckoutHandler(service CheckoutServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// cartItemRequest はカート1行のリクエスト表現。
type cartItemRequest struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// checkoutRequest はチェックアウトリクエストのボディ。
type checkoutRequest struct {
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Address       string            `json:"address"`
	City          string            `json:"city"`
	PostalCode    string            `json:"postalCode"`
	Phone         string            `json:"phone"`
	PaymentMethod string            `json:"paymentMethod"`
	CartItems     []cartItemRequest `json:"cartItems"`
	TotalAmount   float64           `json:"totalAmount"`
}

// Checkout はチェックアウトを処理する。
// POST /checkout
//
// 注文の所有者はリクエストボディではなく、認証ミドルウェアが
// コンテキストに注入したユーザーIDを使用する。
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewNoTokenError())
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, invalidRequestBodyError())
		return
	}

	items := make([]checkout.CartItem, 0, len(req.CartItems))
	for _, ci := range req.CartItems {
		items = append(items, checkout.CartItem{
			ProductID: ci.ID,
			Name:      ci.Name,
			Quantity:  ci.Quantity,
			Price:     ci.Price,
		})
	}

	orderID, err := h.service.Checkout(r.Context(), checkout.Input{
		UserID:        userID,
		Name:          req.Name,
		Email:         req.Email,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Phone:         req.Phone,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
		TotalAmount:   req.TotalAmount,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Order created",
		"orderId": orderID,
	})
}
