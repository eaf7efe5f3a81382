package model

import "time"

// Wishlist は商品IDの集合（重複なし・順序は追加順）
type Wishlist []string

func (w Wishlist) Has(productID string) bool {
	for _, id := range w {
		if id == productID {
			return true
		}
	}
	return false
}

func (w Wishlist) Add(productID string) Wishlist {
	if w.Has(productID) {
		return w
	}
	return append(w, productID)
}

func (w Wishlist) Remove(productID string) Wishlist {
	out := make(Wishlist, 0, len(w))
	for _, id := range w {
		if id != productID {
			out = append(out, id)
		}
	}
	return out
}

// ウィッシュリストの永続化レコード。カートと同じく1ユーザー1行。
type WishlistRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"user_id"`
	Payload   string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
