package cache

import (
	"context"
	"encoding/json"
	"time"

	"bzmall/internal/domain"

	"github.com/redis/go-redis/v9"
)

// PopularCache 首页热榜那一小条的缓存
// 榜单全量在数据库的缓存表里，这里只放展示用的头部
type PopularCache interface {
	Set(ctx context.Context, items []domain.PopularProduct) error
	Get(ctx context.Context) ([]domain.PopularProduct, error)
}

type RedisPopularCache struct {
	client     redis.Cmdable
	key        string
	expiration time.Duration
}

func NewRedisPopularCache(client redis.Cmdable) PopularCache {
	return &RedisPopularCache{
		client: client,
		key:    "popular:top",
		// 过期时间要比重算周期长，重算一天一次
		expiration: time.Hour * 25,
	}
}

func (r *RedisPopularCache) Set(ctx context.Context, items []domain.PopularProduct) error {
	val, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, val, r.expiration).Err()
}

func (r *RedisPopularCache) Get(ctx context.Context) ([]domain.PopularProduct, error) {
	val, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		return nil, err
	}
	var res []domain.PopularProduct
	err = json.Unmarshal(val, &res)
	return res, err
}
