package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"quickcart/internal/domain/model"
	"quickcart/internal/repository"
)

// 外部ストアAPIの商品カタログを読むクライアント
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

// DI
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// 公開中の全商品を取得する
func (c *CatalogClient) ListProducts(ctx context.Context) ([]model.Product, error) {
	url := c.baseURL + "/api/products"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog api returned status %d", resp.StatusCode)
	}

	var products []model.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, err
	}
	return products, nil
}

// 商品1件を取得する。404はErrNotFoundにする。
func (c *CatalogClient) FindProduct(ctx context.Context, productID string) (model.Product, error) {
	url := c.baseURL + "/api/products/" + productID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Product{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Product{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.Product{}, repository.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return model.Product{}, fmt.Errorf("catalog api returned status %d", resp.StatusCode)
	}

	var product model.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return model.Product{}, err
	}
	return product, nil
}
