package repository

import (
	"context"
	"errors"

	"quickcart/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カートの永続化（ユーザーごとに1レコードを丸ごと上書き）
type CartRepository interface {
	// 無ければ空のマッピングを返す
	Load(ctx context.Context, userID string) (model.CartItems, error)
	Save(ctx context.Context, userID string, items model.CartItems) error
}
