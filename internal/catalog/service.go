// Package catalog は商品カタログの読み取りサービスを提供する。
package catalog

import (
	"context"
	"fmt"

	"github.com/hitoshi/storefront/internal/model"
	"github.com/hitoshi/storefront/internal/repository"
)

// Service は商品の一覧取得と単品取得を提供する。読み取り専用。
type Service struct {
	products repository.ProductRepository
}

// NewService はServiceを生成する。
func NewService(products repository.ProductRepository) *Service {
	return &Service{products: products}
}

// List は全商品を返す。
func (s *Service) List(ctx context.Context) ([]*model.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get は指定IDの商品を返す。存在しない場合はProductNotFoundエラーを返す。
func (s *Service) Get(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil {
		return nil, model.NewProductNotFoundError()
	}
	return product, nil
}
