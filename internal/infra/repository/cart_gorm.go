package repository

import (
	"context"
	"encoding/json"
	"errors"

	"quickcart/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// ユーザーのカートを読み出す。行が無ければ空のマッピング。
func (r *CartGormRepository) Load(ctx context.Context, userID string) (model.CartItems, error) {
	var rec model.CartRecord

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItems{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := model.CartItems{}
	if err := json.Unmarshal([]byte(rec.Payload), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// マッピング全体をJSONで上書き保存する（最後の書き込みが勝つ）。
func (r *CartGormRepository) Save(ctx context.Context, userID string, items model.CartItems) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}

	//既存行があれば上書き
	res := r.db.WithContext(ctx).
		Model(&model.CartRecord{}).
		Where("user_id = ?", userID).
		Update("payload", string(payload))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	//無ければ新規作成
	rec := model.CartRecord{
		UserID:  userID,
		Payload: string(payload),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		//同時作成で一意制約に当たったら上書きに切り替える
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return r.db.WithContext(ctx).
				Model(&model.CartRecord{}).
				Where("user_id = ?", userID).
				Update("payload", string(payload)).Error
		}
		return err
	}
	return nil
}
