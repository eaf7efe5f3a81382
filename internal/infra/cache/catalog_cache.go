package cache

import (
	"context"
	"encoding/json"
	"time"

	"quickcart/internal/domain/model"
	"quickcart/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	catalogKey      = "catalog:products"
	defaultCacheTTL = 5 * time.Minute
)

// CatalogCache はカタログ取得をRedisで短時間キャッシュするデコレータ。
// キャッシュ障害のときは素通しでAPIまで行く。
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	next   repository.CatalogGateway
}

func NewCatalogCache(client *redis.Client, ttl time.Duration, next repository.CatalogGateway) *CatalogCache {
	if ttl == 0 {
		ttl = defaultCacheTTL
	}
	return &CatalogCache{client: client, ttl: ttl, next: next}
}

func (c *CatalogCache) ListProducts(ctx context.Context) ([]model.Product, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err == nil {
		var products []model.Product
		if jsonErr := json.Unmarshal(data, &products); jsonErr == nil {
			return products, nil
		}
		//壊れたキャッシュは捨てて取り直す
		_ = c.client.Del(ctx, catalogKey).Err()
	} else if err != redis.Nil {
		//Redisが落ちていてもカタログは返す
		return c.next.ListProducts(ctx)
	}

	products, err := c.next.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		_ = c.client.Set(ctx, catalogKey, data, c.ttl).Err()
	}
	return products, nil
}

// 一覧キャッシュから引く。無ければ裏のゲートウェイに任せる。
func (c *CatalogCache) FindProduct(ctx context.Context, productID string) (model.Product, error) {
	products, err := c.ListProducts(ctx)
	if err != nil {
		return c.next.FindProduct(ctx, productID)
	}
	for _, p := range products {
		if p.ID == productID {
			return p, nil
		}
	}
	return model.Product{}, repository.ErrNotFound
}
