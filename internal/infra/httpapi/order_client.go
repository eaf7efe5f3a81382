package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"quickcart/internal/domain/model"
	"quickcart/internal/repository"

	"github.com/google/uuid"
)

// 注文作成APIへ1回だけPOSTするクライアント。リトライはしない。
type OrderClient struct {
	baseURL    string
	httpClient *http.Client
}

// DI
func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	return &OrderClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *OrderClient) CreateOrder(ctx context.Context, orderReq model.OrderRequest) (model.OrderAck, error) {
	body, err := json.Marshal(orderReq)
	if err != nil {
		return model.OrderAck{}, err
	}

	url := c.baseURL + "/api/orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return model.OrderAck{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	//サーバー側の重複検知用
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.OrderAck{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		//エラーボディのmessageはそのまま見せる
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Message == "" {
			errBody.Message = "order could not be placed"
		}
		return model.OrderAck{}, &repository.RemoteError{
			Status:  resp.StatusCode,
			Message: errBody.Message,
		}
	}

	var ack model.OrderAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return model.OrderAck{}, err
	}
	return ack, nil
}
