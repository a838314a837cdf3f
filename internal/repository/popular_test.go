package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"bzmall/internal/domain"
	"bzmall/internal/repository/cache"
	"bzmall/internal/repository/dao"
	daomocks "bzmall/internal/repository/dao/mocks"
	"bzmall/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedPopularRepository_Metrics(t *testing.T) {
	// 固定重算时刻，窗口起点就固定了
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	since := now.AddDate(0, 0, -30).UnixMilli()
	sinceDate := "2024-05-31"
	mockErr := errors.New("mock db error")

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) dao.PopularProductDAO

		wantRes []domain.ProductMetrics
		wantErr error
	}{
		{
			name: "四张表外连接合并，缺的指标补 0",
			mock: func(ctrl *gomock.Controller) dao.PopularProductDAO {
				d := daomocks.NewMockPopularProductDAO(ctrl)
				d.EXPECT().SumSales(gomock.Any(), since).
					Return([]dao.ProductCount{
						{ProductId: 1, Cnt: 3},
						{ProductId: 2, Cnt: 1},
					}, nil)
				d.EXPECT().CountViews(gomock.Any(), sinceDate).
					Return([]dao.ProductCount{
						{ProductId: 2, Cnt: 7},
						{ProductId: 3, Cnt: 2},
					}, nil)
				d.EXPECT().CountAdds(gomock.Any(), dao.ProductLogTypeWishlist, since).
					Return([]dao.ProductCount{
						{ProductId: 3, Cnt: 5},
					}, nil)
				d.EXPECT().CountAdds(gomock.Any(), dao.ProductLogTypeCart, since).
					Return([]dao.ProductCount{
						{ProductId: 4, Cnt: 1},
					}, nil)
				return d
			},
			wantRes: []domain.ProductMetrics{
				{ProductId: 1, SalesCount: 3},
				{ProductId: 2, SalesCount: 1, ViewCount: 7},
				{ProductId: 3, ViewCount: 2, WishlistCount: 5},
				{ProductId: 4, CartAddCount: 1},
			},
		},
		{
			name: "窗口里一条记录都没有",
			mock: func(ctrl *gomock.Controller) dao.PopularProductDAO {
				d := daomocks.NewMockPopularProductDAO(ctrl)
				d.EXPECT().SumSales(gomock.Any(), since).Return(nil, nil)
				d.EXPECT().CountViews(gomock.Any(), sinceDate).Return(nil, nil)
				d.EXPECT().CountAdds(gomock.Any(), dao.ProductLogTypeWishlist, since).
					Return(nil, nil)
				d.EXPECT().CountAdds(gomock.Any(), dao.ProductLogTypeCart, since).
					Return(nil, nil)
				return d
			},
			wantRes: []domain.ProductMetrics{},
		},
		{
			name: "任何一个聚合失败就整体失败",
			mock: func(ctrl *gomock.Controller) dao.PopularProductDAO {
				d := daomocks.NewMockPopularProductDAO(ctrl)
				d.EXPECT().SumSales(gomock.Any(), since).
					Return(nil, mockErr)
				// errgroup 内其余查询照样会发出去
				d.EXPECT().CountViews(gomock.Any(), sinceDate).
					Return(nil, nil).AnyTimes()
				d.EXPECT().CountAdds(gomock.Any(), gomock.Any(), since).
					Return(nil, nil).AnyTimes()
				return d
			},
			wantErr: mockErr,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			// Metrics 不碰缓存和商品目录，传占位实现就够了
			repo := NewCachedPopularRepository(tc.mock(ctrl), nil,
				nil, cache.NewLocalPopularCache(), logger.NewNopLogger())
			res, err := repo.Metrics(context.Background(), now)
			assert.Equal(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			assert.ElementsMatch(t, tc.wantRes, res)
		})
	}
}

func TestCachedPopularRepository_ProductsByIds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	productDao := daomocks.NewMockProductDAO(ctrl)
	productDao.EXPECT().FindByIds(gomock.Any(), []int64{1, 2, 3}).
		Return([]dao.Product{
			{
				Id:        1,
				Name:      stringOf("茶壶"),
				SalePrice: int64Of(4990),
				Ctime:     1000,
				Utime:     1000,
			},
			// id 为 3 的商品目录里没有
			{
				Id:    2,
				Ctime: 2000,
				Utime: 2000,
			},
		}, nil)
	repo := NewCachedPopularRepository(nil, productDao,
		nil, cache.NewLocalPopularCache(), logger.NewNopLogger())
	res, err := repo.ProductsByIds(context.Background(), []int64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, map[int64]domain.Product{
		1: {
			Id:        1,
			Name:      "茶壶",
			SalePrice: 4990,
			Ctime:     time.UnixMilli(1000),
			Utime:     time.UnixMilli(1000),
		},
		2: {
			Id:    2,
			Ctime: time.UnixMilli(2000),
			Utime: time.UnixMilli(2000),
		},
	}, res)
}

func stringOf(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func int64Of(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}
