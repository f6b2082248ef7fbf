package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/storefront/internal/model"
)

// CatalogServiceInterface は商品ハンドラーが必要とするサービスインターフェース。
type CatalogServiceInterface interface {
	// List は全商品を返す。
	List(ctx context.Context) ([]*model.Product, error)
	// Get は指定IDの商品を返す。存在しない場合はProductNotFoundエラーを返す。
	Get(ctx context.Context, id int) (*model.Product, error)
}

// ProductHandler は商品カタログのHTTPハンドラー。
type ProductHandler struct {
	service CatalogServiceInterface
}

// NewProductHandler はProductHandlerを生成する。
func NewProductHandler(service CatalogServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// productResponse は商品情報のAPIレスポンス。
type productResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// ListProducts は全商品の一覧を返す。
// GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("failed to list products", slog.String("error", err.Error()))
		writeAPIErrorResponse(w, http.StatusInternalServerError, &model.APIError{
			Code:     model.ErrCodeInternal,
			Message:  "Failed to retrieve products",
			Category: "catalog",
		})
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

// GetProduct は指定IDの商品を返す。
// GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		// 数値でないIDはどの商品にも一致しない
		writeAPIErrorResponse(w, http.StatusNotFound, model.NewProductNotFoundError())
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok {
			writeAPIErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
			return
		}
		slog.Error("failed to get product",
			slog.Int("product_id", id),
			slog.String("error", err.Error()),
		)
		writeAPIErrorResponse(w, http.StatusInternalServerError, &model.APIError{
			Code:     model.ErrCodeInternal,
			Message:  "Failed to retrieve product",
			Category: "catalog",
		})
		return
	}

	writeJSONResponse(w, http.StatusOK, toProductResponse(product))
}

// toProductResponse はmodel.ProductからAPIレスポンスに変換する。
func toProductResponse(p *model.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
	}
}
