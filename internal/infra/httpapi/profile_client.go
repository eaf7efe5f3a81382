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

// 購入者プロフィール（保存済み配送先）を読むクライアント
type ProfileClient struct {
	baseURL    string
	httpClient *http.Client
}

// DI
func NewProfileClient(baseURL string, timeout time.Duration) *ProfileClient {
	return &ProfileClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *ProfileClient) GetProfile(ctx context.Context, userID string) (model.BuyerProfile, error) {
	url := c.baseURL + "/api/users/" + userID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.BuyerProfile{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.BuyerProfile{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.BuyerProfile{}, repository.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return model.BuyerProfile{}, fmt.Errorf("profile api returned status %d", resp.StatusCode)
	}

	var profile model.BuyerProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return model.BuyerProfile{}, err
	}
	return profile, nil
}
