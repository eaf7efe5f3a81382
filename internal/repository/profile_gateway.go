package repository

import (
	"context"

	"quickcart/internal/domain/model"
)

// 購入者プロフィール（外部ストアAPI）。保存済みの配送先と州を返す。
type ProfileGateway interface {
	GetProfile(ctx context.Context, userID string) (model.BuyerProfile, error)
}
