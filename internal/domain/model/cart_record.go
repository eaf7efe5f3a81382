package model

import "time"

// カートの永続化レコード。1ユーザーにつき1行で、
// payloadにCartItemsをJSONで丸ごと保存する（最後の書き込みが勝つ）。
type CartRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"user_id"`
	Payload   string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
