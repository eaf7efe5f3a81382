package repository

import (
	"context"

	"quickcart/internal/domain/model"
)

// 商品カタログ（外部ストアAPI・読み取り専用）
type CatalogGateway interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	// 無ければErrNotFound
	FindProduct(ctx context.Context, productID string) (model.Product, error)
}
