package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"quickcart/internal/domain/model"
	repo "quickcart/internal/repository"
)

// ProductUsecase は外部カタログの公開商品を一覧・詳細で返す。
type ProductUsecase struct {
	catalog repo.CatalogGateway
}

func NewProductUsecase(catalog repo.CatalogGateway) *ProductUsecase {
	return &ProductUsecase{catalog: catalog}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Page     int
	Limit    int
	Q        string
	Category string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid q")
	}

	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}

	//絞り込み（名前の部分一致とカテゴリの完全一致）
	q := strings.ToLower(strings.TrimSpace(in.Q))
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if in.Category != "" && p.Category != in.Category {
			continue
		}
		filtered = append(filtered, p)
	}

	total := int64(len(filtered))

	//ページング
	start := (in.Page - 1) * in.Limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + in.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return ProductListOutput{
		Items: filtered[start:end],
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.catalog.FindProduct(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}
	return p, nil
}
