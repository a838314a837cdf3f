package repository

import (
	"context"

	"bzmall/internal/domain"
	"bzmall/internal/repository/dao"

	"github.com/ecodeclub/ekit/slice"
)

type ProductViewRepository interface {
	// BatchRecord 批量落浏览日志，重复的 (商品, 用户, 日) 静默去重
	BatchRecord(ctx context.Context, views []domain.ProductView) error
}

type productViewRepository struct {
	dao dao.ProductViewLogDAO
}

func NewProductViewRepository(d dao.ProductViewLogDAO) ProductViewRepository {
	return &productViewRepository{
		dao: d,
	}
}

func (r *productViewRepository) BatchRecord(ctx context.Context, views []domain.ProductView) error {
	if len(views) == 0 {
		return nil
	}
	return r.dao.BatchInsert(ctx, slice.Map(views,
		func(idx int, src domain.ProductView) dao.ProductViewLog {
			return dao.ProductViewLog{
				ProductId: src.ProductId,
				Uid:       src.Uid,
				ViewDate:  src.ViewDate,
			}
		}))
}
