package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"bzmall/internal/domain"
	"bzmall/internal/integration/startup"
	"bzmall/internal/repository/dao"
	"bzmall/internal/service"
	"bzmall/pkg/lockx"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PopularServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	rdb redis.Cmdable
}

func TestPopularService(t *testing.T) {
	suite.Run(t, &PopularServiceTestSuite{})
}

func (s *PopularServiceTestSuite) SetupSuite() {
	s.db = startup.InitTestDB()
	s.rdb = startup.InitTestRedis()
}

func (s *PopularServiceTestSuite) TearDownTest() {
	t := s.T()
	for _, table := range []string{
		"orders", "product_view_logs", "user_product_logs",
		"popular_products", "products",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(t, err)
	}
	err := s.rdb.Del(context.Background(), "popular:top").Err()
	require.NoError(t, err)
}

// 整条链路：种 25 个商品，销量依次递增，重算之后翻第二页
func (s *PopularServiceTestSuite) TestRebuildAndPaginate() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	now := time.Now().UnixMilli()
	for i := 1; i <= 25; i++ {
		err := s.db.WithContext(ctx).Create(&dao.Product{
			Id: int64(i),
			Name: sql.NullString{
				String: fmt.Sprintf("商品%d", i),
				Valid:  true,
			},
			SalePrice: sql.NullInt64{Int64: int64(i) * 100, Valid: true},
			Ctime:     now,
			Utime:     now,
		}).Error
		require.NoError(t, err)
		// 销量 = 商品 id，分数就是 4*id，彼此不同分
		err = s.db.WithContext(ctx).Create(&dao.Order{
			ProductId: int64(i),
			Uid:       1,
			Quantity:  int64(i),
			Ctime:     now,
			Utime:     now,
		}).Error
		require.NoError(t, err)
	}

	svc := startup.InitPopularService()
	err := svc.Rebuild(ctx)
	require.NoError(t, err)

	res, err := svc.List(ctx, 2, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.Total)
	assert.Equal(t, 2, res.Page)
	require.Len(t, res.Items, 10)
	for i, item := range res.Items {
		rank := int64(11 + i)
		assert.Equal(t, rank, item.Rank)
		// 销量越大排越前，名次 r 对应商品 26-r
		assert.Equal(t, 26-rank, item.ProductId)
		assert.Equal(t, item.SalesCount*4, item.TotalScore)
		assert.Equal(t, fmt.Sprintf("商品%d", item.ProductId), item.Name)
	}

	// 首页热榜条也应该刷进了 redis
	data, err := s.rdb.Get(ctx, "popular:top").Bytes()
	require.NoError(t, err)
	var top []domain.PopularProduct
	require.NoError(t, json.Unmarshal(data, &top))
	require.Len(t, top, 10)
	assert.Equal(t, int64(25), top[0].ProductId)
	assert.Equal(t, int64(1), top[0].Rank)
}

// 窗口外的订单不参与统计，窗口里没数据榜单就是空的
func (s *PopularServiceTestSuite) TestRebuildWindow() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	now := time.Now()
	err := s.db.WithContext(ctx).Create(&dao.Product{
		Id:    1,
		Ctime: now.UnixMilli(),
		Utime: now.UnixMilli(),
	}).Error
	require.NoError(t, err)
	// 31 天前的订单，已经滑出窗口
	err = s.db.WithContext(ctx).Create(&dao.Order{
		ProductId: 1,
		Uid:       1,
		Quantity:  100,
		Ctime:     now.AddDate(0, 0, -31).UnixMilli(),
		Utime:     now.AddDate(0, 0, -31).UnixMilli(),
	}).Error
	require.NoError(t, err)

	svc := startup.InitPopularService()
	require.NoError(t, svc.Rebuild(ctx))
	res, err := svc.List(ctx, 1, 20, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Total)
	assert.Empty(t, res.Items)

	// 补一单窗口内的再重算，商品就该上榜了
	err = s.db.WithContext(ctx).Create(&dao.Order{
		ProductId: 1,
		Uid:       1,
		Quantity:  2,
		Ctime:     now.Add(-time.Hour).UnixMilli(),
		Utime:     now.Add(-time.Hour).UnixMilli(),
	}).Error
	require.NoError(t, err)
	require.NoError(t, svc.Rebuild(ctx))
	res, err = svc.List(ctx, 1, 20, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(8), res.Items[0].TotalScore)
}

// 同一个用户同一天反复看同一个商品只算一次浏览
func (s *PopularServiceTestSuite) TestViewDedup() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	now := time.Now()
	today := now.Format(time.DateOnly)
	yesterday := now.AddDate(0, 0, -1).Format(time.DateOnly)
	err := s.db.WithContext(ctx).Create(&dao.Product{
		Id:    1,
		Ctime: now.UnixMilli(),
		Utime: now.UnixMilli(),
	}).Error
	require.NoError(t, err)

	viewDao := dao.NewGORMProductViewLogDAO(s.db)
	// 两次投递同一批日志，模拟消息重复消费
	logs := []dao.ProductViewLog{
		{ProductId: 1, Uid: 1, ViewDate: today},
		{ProductId: 1, Uid: 1, ViewDate: today},
		{ProductId: 1, Uid: 1, ViewDate: yesterday},
		{ProductId: 1, Uid: 2, ViewDate: today},
	}
	require.NoError(t, viewDao.BatchInsert(ctx, logs))
	require.NoError(t, viewDao.BatchInsert(ctx, logs))

	svc := startup.InitPopularService()
	require.NoError(t, svc.Rebuild(ctx))
	res, err := svc.List(ctx, 1, 20, "")
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	// (uid1, 今天) (uid1, 昨天) (uid2, 今天) 三个去重组合
	assert.Equal(t, int64(3), res.Items[0].ViewCount)
	assert.Equal(t, int64(3), res.Items[0].TotalScore)
}

// 锁被占着的时候重算要立刻让路，不排队
func (s *PopularServiceTestSuite) TestRebuildBusy() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	locker := lockx.NewMySQLLocker(sqlDB)
	lock, err := locker.Lock(ctx, "popular_rebuild", time.Second)
	require.NoError(t, err)

	svc := startup.InitPopularService()
	assert.Equal(t, service.ErrRebuildRunning, svc.Rebuild(ctx))

	// 放掉锁之后就能正常重算了
	require.NoError(t, lock.Unlock(ctx))
	assert.NoError(t, svc.Rebuild(ctx))
}

// 替换失败必须整体回滚，老榜单原样保留
func (s *PopularServiceTestSuite) TestReplaceCacheRollback() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	d := dao.NewGORMPopularProductDAO(s.db)
	old := []dao.PopularProduct{
		{ProductId: 101, Rank: 1, TotalScore: 40},
		{ProductId: 102, Rank: 2, TotalScore: 20},
	}
	require.NoError(t, d.ReplaceCache(ctx, old))

	// 名次重复，唯一索引会拦下来
	err := d.ReplaceCache(ctx, []dao.PopularProduct{
		{ProductId: 201, Rank: 1, TotalScore: 99},
		{ProductId: 202, Rank: 1, TotalScore: 98},
	})
	assert.ErrorIs(t, err, dao.ErrDuplicateRank)

	rows, total, err := d.ListCache(ctx, 0, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(101), rows[0].ProductId)
	assert.Equal(t, int64(102), rows[1].ProductId)
}
