package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"bzmall/internal/domain"
	"bzmall/internal/repository"
	repomocks "bzmall/internal/repository/mocks"
	"bzmall/pkg/lockx"
	lockxmocks "bzmall/pkg/lockx/mocks"
	"bzmall/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPopularRankingService_rank(t *testing.T) {
	day := func(s string) time.Time {
		res, err := time.Parse(time.DateOnly, s)
		assert.NoError(t, err)
		return res
	}
	testCases := []struct {
		name     string
		metrics  []domain.ProductMetrics
		products map[int64]domain.Product

		// 只断言 (ProductId, Rank, TotalScore)，快照字段单独测
		wantOrder []int64
		wantScore []int64
	}{
		{
			name: "分数直接分出高下",
			metrics: []domain.ProductMetrics{
				{ProductId: 1, SalesCount: 1},
				{ProductId: 2, SalesCount: 10},
				{ProductId: 3, ViewCount: 2},
			},
			products: map[int64]domain.Product{
				1: {Id: 1, Ctime: day("2024-01-01")},
				2: {Id: 2, Ctime: day("2024-01-01")},
				3: {Id: 3, Ctime: day("2024-01-01")},
			},
			wantOrder: []int64{2, 1, 3},
			wantScore: []int64{40, 4, 2},
		},
		{
			name: "同分按上架时间新的在前",
			metrics: []domain.ProductMetrics{
				{ProductId: 1, SalesCount: 25},
				{ProductId: 2, SalesCount: 25},
			},
			products: map[int64]domain.Product{
				1: {Id: 1, Ctime: day("2024-01-01")},
				2: {Id: 2, Ctime: day("2024-02-01")},
			},
			wantOrder: []int64{2, 1},
			wantScore: []int64{100, 100},
		},
		{
			name: "目录里查不到的按上架时间 0 算，排在同分有记录的后面",
			metrics: []domain.ProductMetrics{
				{ProductId: 7, SalesCount: 25},
				{ProductId: 8, SalesCount: 25},
			},
			products: map[int64]domain.Product{
				8: {Id: 8, Ctime: day("2024-01-01")},
			},
			wantOrder: []int64{8, 7},
			wantScore: []int64{100, 100},
		},
		{
			name: "同分同时间按商品 id 升序，保证没有并列名次",
			metrics: []domain.ProductMetrics{
				{ProductId: 9, WishlistCount: 5},
				{ProductId: 3, WishlistCount: 5},
				{ProductId: 6, WishlistCount: 5},
			},
			products: map[int64]domain.Product{
				9: {Id: 9, Ctime: day("2024-03-01")},
				3: {Id: 3, Ctime: day("2024-03-01")},
				6: {Id: 6, Ctime: day("2024-03-01")},
			},
			wantOrder: []int64{3, 6, 9},
			wantScore: []int64{10, 10, 10},
		},
	}

	svc := NewPopularRankingService(nil, nil,
		logger.NewNopLogger()).(*PopularRankingService)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := svc.rank(tc.metrics, tc.products)
			assert.Equal(t, len(tc.wantOrder), len(res))
			for i, item := range res {
				assert.Equal(t, tc.wantOrder[i], item.ProductId)
				assert.Equal(t, tc.wantScore[i], item.TotalScore)
				// 名次从 1 开始连续
				assert.Equal(t, int64(i+1), item.Rank)
			}
		})
	}
}

func TestPopularRankingService_rank_determinism(t *testing.T) {
	metrics := []domain.ProductMetrics{
		{ProductId: 1, SalesCount: 3, ViewCount: 7},
		{ProductId: 2, SalesCount: 3, ViewCount: 7},
		{ProductId: 3, CartAddCount: 2},
		{ProductId: 4, WishlistCount: 1, ViewCount: 4},
		{ProductId: 5},
	}
	products := map[int64]domain.Product{
		1: {Id: 1, Ctime: time.UnixMilli(1000)},
		2: {Id: 2, Ctime: time.UnixMilli(1000)},
		3: {Id: 3, Ctime: time.UnixMilli(3000)},
		4: {Id: 4, Ctime: time.UnixMilli(2000)},
	}
	svc := NewPopularRankingService(nil, nil,
		logger.NewNopLogger()).(*PopularRankingService)
	first := svc.rank(metrics, products)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, svc.rank(metrics, products))
	}
}

func TestPopularRankingService_rank_snapshot(t *testing.T) {
	svc := NewPopularRankingService(nil, nil,
		logger.NewNopLogger()).(*PopularRankingService)
	res := svc.rank([]domain.ProductMetrics{
		// 5 单销量 + 3 次浏览 + 2 收藏 + 1 加购
		{ProductId: 11, SalesCount: 5, ViewCount: 3, WishlistCount: 2, CartAddCount: 1},
	}, map[int64]domain.Product{
		11: {
			Id:            11,
			Name:          "保温杯",
			SalePrice:     1990,
			ThumbnailPath: "/img/11.png",
			Ctime:         time.UnixMilli(1000),
		},
	})
	assert.Equal(t, []domain.PopularProduct{
		{
			ProductMetrics: domain.ProductMetrics{
				ProductId:     11,
				SalesCount:    5,
				ViewCount:     3,
				WishlistCount: 2,
				CartAddCount:  1,
			},
			TotalScore:    30,
			Rank:          1,
			Name:          "保温杯",
			SalePrice:     1990,
			ThumbnailPath: "/img/11.png",
		},
	}, res)
}

func TestPopularRankingService_Rebuild(t *testing.T) {
	mockErr := errors.New("mock db error")
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.PopularRepository, lockx.Locker)

		wantErr error
	}{
		{
			name: "重算成功",
			mock: func(ctrl *gomock.Controller) (repository.PopularRepository, lockx.Locker) {
				lock := lockxmocks.NewMockLock(ctrl)
				lock.EXPECT().Unlock(gomock.Any()).Return(nil)
				locker := lockxmocks.NewMockLocker(ctrl)
				locker.EXPECT().Lock(gomock.Any(), "popular_rebuild", time.Second).
					Return(lock, nil)
				repo := repomocks.NewMockPopularRepository(ctrl)
				repo.EXPECT().Metrics(gomock.Any(), gomock.Any()).
					Return([]domain.ProductMetrics{
						{ProductId: 1, SalesCount: 2},
						{ProductId: 2, SalesCount: 5},
					}, nil)
				repo.EXPECT().ProductsByIds(gomock.Any(), []int64{1, 2}).
					Return(map[int64]domain.Product{
						1: {Id: 1, Name: "茶壶", Ctime: time.UnixMilli(1000)},
						2: {Id: 2, Name: "茶杯", Ctime: time.UnixMilli(2000)},
					}, nil)
				repo.EXPECT().ReplaceTopList(gomock.Any(), []domain.PopularProduct{
					{
						ProductMetrics: domain.ProductMetrics{ProductId: 2, SalesCount: 5},
						TotalScore:     20,
						Rank:           1,
						Name:           "茶杯",
					},
					{
						ProductMetrics: domain.ProductMetrics{ProductId: 1, SalesCount: 2},
						TotalScore:     8,
						Rank:           2,
						Name:           "茶壶",
					},
				}).Return(nil)
				return repo, locker
			},
			wantErr: nil,
		},
		{
			name: "窗口里没数据也要把榜单清空",
			mock: func(ctrl *gomock.Controller) (repository.PopularRepository, lockx.Locker) {
				lock := lockxmocks.NewMockLock(ctrl)
				lock.EXPECT().Unlock(gomock.Any()).Return(nil)
				locker := lockxmocks.NewMockLocker(ctrl)
				locker.EXPECT().Lock(gomock.Any(), "popular_rebuild", time.Second).
					Return(lock, nil)
				repo := repomocks.NewMockPopularRepository(ctrl)
				repo.EXPECT().Metrics(gomock.Any(), gomock.Any()).
					Return([]domain.ProductMetrics{}, nil)
				repo.EXPECT().ReplaceTopList(gomock.Any(), []domain.PopularProduct{}).
					Return(nil)
				return repo, locker
			},
			wantErr: nil,
		},
		{
			name: "锁被别人拿着，立刻放弃这一轮",
			mock: func(ctrl *gomock.Controller) (repository.PopularRepository, lockx.Locker) {
				locker := lockxmocks.NewMockLocker(ctrl)
				locker.EXPECT().Lock(gomock.Any(), "popular_rebuild", time.Second).
					Return(nil, fmt.Errorf("%w: popular_rebuild", lockx.ErrLocked))
				// repo 一个方法都不应该被调用
				return repomocks.NewMockPopularRepository(ctrl), locker
			},
			wantErr: ErrRebuildRunning,
		},
		{
			name: "聚合失败，锁照样释放",
			mock: func(ctrl *gomock.Controller) (repository.PopularRepository, lockx.Locker) {
				lock := lockxmocks.NewMockLock(ctrl)
				lock.EXPECT().Unlock(gomock.Any()).Return(nil)
				locker := lockxmocks.NewMockLocker(ctrl)
				locker.EXPECT().Lock(gomock.Any(), "popular_rebuild", time.Second).
					Return(lock, nil)
				repo := repomocks.NewMockPopularRepository(ctrl)
				repo.EXPECT().Metrics(gomock.Any(), gomock.Any()).
					Return(nil, mockErr)
				return repo, locker
			},
			wantErr: mockErr,
		},
		{
			name: "替换缓存表失败，错误原样往上抛",
			mock: func(ctrl *gomock.Controller) (repository.PopularRepository, lockx.Locker) {
				lock := lockxmocks.NewMockLock(ctrl)
				lock.EXPECT().Unlock(gomock.Any()).Return(nil)
				locker := lockxmocks.NewMockLocker(ctrl)
				locker.EXPECT().Lock(gomock.Any(), "popular_rebuild", time.Second).
					Return(lock, nil)
				repo := repomocks.NewMockPopularRepository(ctrl)
				repo.EXPECT().Metrics(gomock.Any(), gomock.Any()).
					Return([]domain.ProductMetrics{{ProductId: 1, ViewCount: 1}}, nil)
				repo.EXPECT().ProductsByIds(gomock.Any(), []int64{1}).
					Return(map[int64]domain.Product{}, nil)
				repo.EXPECT().ReplaceTopList(gomock.Any(), gomock.Any()).
					Return(mockErr)
				return repo, locker
			},
			wantErr: mockErr,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, locker := tc.mock(ctrl)
			svc := NewPopularRankingService(repo, locker, logger.NewNopLogger())
			err := svc.Rebuild(context.Background())
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestPopularRankingService_List(t *testing.T) {
	testCases := []struct {
		name  string
		page  int
		limit int
		mock  func(ctrl *gomock.Controller) repository.PopularRepository

		wantRes domain.PopularProductList
		wantErr error
	}{
		{
			name:  "正常翻页",
			page:  3,
			limit: 10,
			mock: func(ctrl *gomock.Controller) repository.PopularRepository {
				repo := repomocks.NewMockPopularRepository(ctrl)
				repo.EXPECT().List(gomock.Any(), 20, 10, "杯").
					Return([]domain.PopularProduct{{Rank: 21}}, int64(25), nil)
				return repo
			},
			wantRes: domain.PopularProductList{
				Items: []domain.PopularProduct{{Rank: 21}},
				Page:  3,
				Limit: 10,
				Total: 25,
			},
		},
		{
			name:  "非法分页参数兜底成 1",
			page:  0,
			limit: -5,
			mock: func(ctrl *gomock.Controller) repository.PopularRepository {
				repo := repomocks.NewMockPopularRepository(ctrl)
				repo.EXPECT().List(gomock.Any(), 0, 1, "杯").
					Return([]domain.PopularProduct{}, int64(0), nil)
				return repo
			},
			wantRes: domain.PopularProductList{
				Items: []domain.PopularProduct{},
				Page:  1,
				Limit: 1,
				Total: 0,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewPopularRankingService(tc.mock(ctrl), nil, logger.NewNopLogger())
			res, err := svc.List(context.Background(), tc.page, tc.limit, "杯")
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
