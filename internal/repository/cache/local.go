package cache

import (
	"context"
	"errors"
	"time"

	"bzmall/internal/domain"

	"github.com/ecodeclub/ekit/syncx/atomicx"
)

// LocalPopularCache 进程内的热榜头部缓存，挡在 redis 前面
// 重算一天一次，所以过期时间可以给得很宽
type LocalPopularCache struct {
	topList    *atomicx.Value[[]domain.PopularProduct]
	ddl        *atomicx.Value[time.Time]
	expiration time.Duration
}

func NewLocalPopularCache() *LocalPopularCache {
	return &LocalPopularCache{
		topList:    atomicx.NewValue[[]domain.PopularProduct](),
		ddl:        atomicx.NewValueOf(time.Now()),
		expiration: time.Hour * 25,
	}
}

func (l *LocalPopularCache) Set(ctx context.Context, items []domain.PopularProduct) error {
	// 先设置过期时间再写数据，反过来会有一个极小的窗口
	// 读到新数据配旧 ddl，被当成过期
	l.ddl.Store(time.Now().Add(l.expiration))
	l.topList.Store(items)
	return nil
}

func (l *LocalPopularCache) Get(ctx context.Context) ([]domain.PopularProduct, error) {
	ddl := l.ddl.Load()
	items := l.topList.Load()
	if len(items) == 0 || ddl.Before(time.Now()) {
		// 没预热过，或者过期了，让调用方去下一级找
		return nil, errors.New("本地缓存未命中")
	}
	return items, nil
}
