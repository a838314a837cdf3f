package repository

import (
	"context"
	"database/sql"
	"time"

	"bzmall/internal/domain"
	"bzmall/internal/repository/cache"
	"bzmall/internal/repository/dao"
	"bzmall/pkg/logger"

	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
)

// 统计窗口：截止到重算时刻往前 30 天
const windowDays = 30

// 首页热榜条的长度
const topN = 10

//go:generate mockgen -source=./popular.go -package=repomocks -destination=mocks/popular.mock.go PopularRepository
type PopularRepository interface {
	// Metrics 聚合窗口内每个商品的四项行为指标
	// 只读原始表，出错直接向上抛，不做任何写入
	// 返回的切片是乱序的，排序是调用方的事
	Metrics(ctx context.Context, now time.Time) ([]domain.ProductMetrics, error)
	// ProductsByIds 查商品目录，给决胜排序和展示快照用
	// 目录里不存在的 id 不会出现在返回的 map 里
	ProductsByIds(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	// ReplaceTopList 原子替换榜单，随后刷新首页热榜缓存
	// 缓存刷新失败只记日志，不影响替换结果
	ReplaceTopList(ctx context.Context, items []domain.PopularProduct) error
	// List 按名次升序分页读榜单
	List(ctx context.Context, offset, limit int, name string) ([]domain.PopularProduct, int64, error)
	// TopN 首页热榜条，本地缓存、redis、数据库逐级回源
	TopN(ctx context.Context) ([]domain.PopularProduct, error)
}

type CachedPopularRepository struct {
	dao        dao.PopularProductDAO
	productDao dao.ProductDAO
	redisCache cache.PopularCache
	localCache *cache.LocalPopularCache
	l          logger.Logger
}

func NewCachedPopularRepository(d dao.PopularProductDAO,
	productDao dao.ProductDAO,
	redisCache cache.PopularCache,
	localCache *cache.LocalPopularCache,
	l logger.Logger) PopularRepository {
	return &CachedPopularRepository{
		dao:        d,
		productDao: productDao,
		redisCache: redisCache,
		localCache: localCache,
		l:          l,
	}
}

func (c *CachedPopularRepository) Metrics(ctx context.Context, now time.Time) ([]domain.ProductMetrics, error) {
	start := now.AddDate(0, 0, -windowDays)
	since := start.UnixMilli()
	sinceDate := start.Format(time.DateOnly)

	// 四个聚合互相独立，并发去查
	// 任何一个失败就整体失败，这一轮重算作废
	var (
		sales     []dao.ProductCount
		views     []dao.ProductCount
		wishlists []dao.ProductCount
		carts     []dao.ProductCount
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		sales, err = c.dao.SumSales(ctx, since)
		return err
	})
	eg.Go(func() error {
		var err error
		views, err = c.dao.CountViews(ctx, sinceDate)
		return err
	})
	eg.Go(func() error {
		var err error
		wishlists, err = c.dao.CountAdds(ctx, dao.ProductLogTypeWishlist, since)
		return err
	})
	eg.Go(func() error {
		var err error
		carts, err = c.dao.CountAdds(ctx, dao.ProductLogTypeCart, since)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 按商品 id 做外连接语义的合并：
	// 在任何一张表里出现过就有一行，缺的指标补 0
	merged := make(map[int64]*domain.ProductMetrics,
		len(sales)+len(views)+len(wishlists)+len(carts))
	ensure := func(pid int64) *domain.ProductMetrics {
		m, ok := merged[pid]
		if !ok {
			m = &domain.ProductMetrics{ProductId: pid}
			merged[pid] = m
		}
		return m
	}
	for _, r := range sales {
		ensure(r.ProductId).SalesCount = r.Cnt
	}
	for _, r := range views {
		ensure(r.ProductId).ViewCount = r.Cnt
	}
	for _, r := range wishlists {
		ensure(r.ProductId).WishlistCount = r.Cnt
	}
	for _, r := range carts {
		ensure(r.ProductId).CartAddCount = r.Cnt
	}

	res := make([]domain.ProductMetrics, 0, len(merged))
	for _, m := range merged {
		res = append(res, *m)
	}
	return res, nil
}

func (c *CachedPopularRepository) ProductsByIds(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	products, err := c.productDao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		res[p.Id] = c.productToDomain(p)
	}
	return res, nil
}

func (c *CachedPopularRepository) ReplaceTopList(ctx context.Context, items []domain.PopularProduct) error {
	rows := slice.Map(items, func(idx int, src domain.PopularProduct) dao.PopularProduct {
		return c.toEntity(src)
	})
	err := c.dao.ReplaceCache(ctx, rows)
	if err != nil {
		return err
	}
	// 榜单换好了，顺手把首页热榜条也刷掉
	// 刷不动就算了，读路径自己会回源
	top := items
	if len(top) > topN {
		top = top[:topN]
	}
	if er := c.localCache.Set(ctx, top); er != nil {
		c.l.Warn("刷新本地热榜缓存失败", logger.Error(er))
	}
	if er := c.redisCache.Set(ctx, top); er != nil {
		c.l.Warn("刷新 redis 热榜缓存失败", logger.Error(er))
	}
	return nil
}

func (c *CachedPopularRepository) List(ctx context.Context, offset, limit int, name string) ([]domain.PopularProduct, int64, error) {
	rows, total, err := c.dao.ListCache(ctx, offset, limit, name)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(rows, func(idx int, src dao.PopularProduct) domain.PopularProduct {
		return c.toDomain(src)
	}), total, nil
}

func (c *CachedPopularRepository) TopN(ctx context.Context) ([]domain.PopularProduct, error) {
	items, err := c.localCache.Get(ctx)
	if err == nil {
		return items, nil
	}
	items, err = c.redisCache.Get(ctx)
	if err == nil {
		_ = c.localCache.Set(ctx, items)
		return items, nil
	}
	// 缓存全空，回源数据库，再把缓存补上
	rows, _, err := c.dao.ListCache(ctx, 0, topN, "")
	if err != nil {
		return nil, err
	}
	items = slice.Map(rows, func(idx int, src dao.PopularProduct) domain.PopularProduct {
		return c.toDomain(src)
	})
	_ = c.localCache.Set(ctx, items)
	if er := c.redisCache.Set(ctx, items); er != nil {
		c.l.Warn("回填 redis 热榜缓存失败", logger.Error(er))
	}
	return items, nil
}

func (c *CachedPopularRepository) toEntity(p domain.PopularProduct) dao.PopularProduct {
	return dao.PopularProduct{
		ProductId:     p.ProductId,
		Rank:          p.Rank,
		SalesCount:    p.SalesCount,
		ViewCount:     p.ViewCount,
		WishlistCount: p.WishlistCount,
		CartAddCount:  p.CartAddCount,
		TotalScore:    p.TotalScore,
		Name: sql.NullString{
			String: p.Name,
			Valid:  p.Name != "",
		},
		ThumbnailPath: sql.NullString{
			String: p.ThumbnailPath,
			Valid:  p.ThumbnailPath != "",
		},
		SalePrice: sql.NullInt64{
			Int64: p.SalePrice,
			Valid: p.SalePrice > 0,
		},
	}
}

func (c *CachedPopularRepository) toDomain(row dao.PopularProduct) domain.PopularProduct {
	return domain.PopularProduct{
		ProductMetrics: domain.ProductMetrics{
			ProductId:     row.ProductId,
			SalesCount:    row.SalesCount,
			ViewCount:     row.ViewCount,
			WishlistCount: row.WishlistCount,
			CartAddCount:  row.CartAddCount,
		},
		TotalScore:    row.TotalScore,
		Rank:          row.Rank,
		Name:          row.Name.String,
		ThumbnailPath: row.ThumbnailPath.String,
		SalePrice:     row.SalePrice.Int64,
	}
}

func (c *CachedPopularRepository) productToDomain(p dao.Product) domain.Product {
	return domain.Product{
		Id:            p.Id,
		Name:          p.Name.String,
		SalePrice:     p.SalePrice.Int64,
		ThumbnailPath: p.ThumbnailPath.String,
		Ctime:         time.UnixMilli(p.Ctime),
		Utime:         time.UnixMilli(p.Utime),
	}
}
