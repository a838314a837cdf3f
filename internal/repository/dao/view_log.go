package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductViewLogDAO interface {
	// BatchInsert 批量落浏览日志
	// 同一个 (商品, 用户, 日) 已经有记录就静默跳过，
	// 所以消息重复投递是安全的
	BatchInsert(ctx context.Context, logs []ProductViewLog) error
}

type GORMProductViewLogDAO struct {
	db *gorm.DB
}

func NewGORMProductViewLogDAO(db *gorm.DB) ProductViewLogDAO {
	return &GORMProductViewLogDAO{
		db: db,
	}
}

func (dao *GORMProductViewLogDAO) BatchInsert(ctx context.Context, logs []ProductViewLog) error {
	now := time.Now().UnixMilli()
	for i := range logs {
		logs[i].Ctime = now
		logs[i].Utime = now
	}
	return dao.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(logs, 100).Error
}

// ProductViewLog 商品浏览日志
// 三列唯一索引把 (商品, 用户, 日) 压成一条，和聚合时的去重口径一致
type ProductViewLog struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	ProductId int64 `gorm:"uniqueIndex:uk_view_product_uid_date"`
	Uid       int64 `gorm:"uniqueIndex:uk_view_product_uid_date"`
	// ViewDate 浏览的自然日，YYYY-MM-DD
	// 字符串比较和日期比较在这个格式下等价
	ViewDate string `gorm:"type:varchar(10);uniqueIndex:uk_view_product_uid_date"`

	Ctime int64
	Utime int64
}
