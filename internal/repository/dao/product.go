package dao

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=./product.go -package=daomocks -destination=mocks/product.mock.go ProductDAO
type ProductDAO interface {
	FindByIds(ctx context.Context, ids []int64) ([]Product, error)
}

type GORMProductDAO struct {
	db *gorm.DB
}

func NewGORMProductDAO(db *gorm.DB) ProductDAO {
	return &GORMProductDAO{
		db: db,
	}
}

func (dao *GORMProductDAO) FindByIds(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	err := dao.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&res).Error
	return res, err
}

// Product 商品目录表
// 榜单会拿 ctime 当同分的决胜字段，拿名称、缩略图、售价做展示快照
type Product struct {
	Id   int64          `gorm:"primaryKey,autoIncrement"`
	Name sql.NullString `gorm:"type:varchar(256)"`
	// 售价，单位分
	SalePrice     sql.NullInt64
	ThumbnailPath sql.NullString `gorm:"type:varchar(1024)"`

	Ctime int64
	Utime int64
}
