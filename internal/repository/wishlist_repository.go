package repository

import (
	"context"

	"quickcart/internal/domain/model"
)

// ウィッシュリストの永続化。カートと同じ上書き方式。
type WishlistRepository interface {
	// 無ければ空を返す
	Load(ctx context.Context, userID string) (model.Wishlist, error)
	Save(ctx context.Context, userID string, wishlist model.Wishlist) error
}
