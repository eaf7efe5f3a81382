package repository

import (
	"context"
	"fmt"

	"quickcart/internal/domain/model"
)

// 注文作成API側のエラー。messageはそのままユーザーに見せる。
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %d: %s", e.Status, e.Message)
}

// 注文作成（外部ストアAPIへの1回きりの書き込み。リトライしない）
type OrderGateway interface {
	CreateOrder(ctx context.Context, req model.OrderRequest) (model.OrderAck, error)
}
