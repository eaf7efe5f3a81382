package repository

import (
	"context"
	"encoding/json"
	"errors"

	"quickcart/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type WishlistGormRepository struct {
	db *gorm.DB
}

// DI
func NewWishlistGormRepository(db *gorm.DB) *WishlistGormRepository {
	return &WishlistGormRepository{db: db}
}

// ユーザーのウィッシュリストを読み出す。行が無ければ空。
func (r *WishlistGormRepository) Load(ctx context.Context, userID string) (model.Wishlist, error) {
	var rec model.WishlistRecord

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Wishlist{}, nil
	}
	if err != nil {
		return nil, err
	}

	wishlist := model.Wishlist{}
	if err := json.Unmarshal([]byte(rec.Payload), &wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}

// リスト全体をJSONで上書き保存する。
func (r *WishlistGormRepository) Save(ctx context.Context, userID string, wishlist model.Wishlist) error {
	payload, err := json.Marshal(wishlist)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&model.WishlistRecord{}).
		Where("user_id = ?", userID).
		Update("payload", string(payload))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	rec := model.WishlistRecord{
		UserID:  userID,
		Payload: string(payload),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return r.db.WithContext(ctx).
				Model(&model.WishlistRecord{}).
				Where("user_id = ?", userID).
				Update("payload", string(payload)).Error
		}
		return err
	}
	return nil
}
