package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateRank 写入榜单时名次或者商品冲突了
	// 正常情况下不可能出现，出现了说明上游排序有问题
	ErrDuplicateRank = errors.New("榜单名次或者商品重复")

	// ErrDataNotFound 通用的数据没找到错误
	ErrDataNotFound = gorm.ErrRecordNotFound
)

//go:generate mockgen -source=./popular.go -package=daomocks -destination=mocks/popular.mock.go PopularProductDAO
type PopularProductDAO interface {
	// SumSales 统计 since（毫秒时间戳）之后每个商品卖出的数量
	// 没有订单的商品不会出现在结果里
	SumSales(ctx context.Context, since int64) ([]ProductCount, error)
	// CountViews 统计 sinceDate（YYYY-MM-DD）之后每个商品的浏览量
	// 同一个用户同一天看同一个商品多少遍都只算一次
	CountViews(ctx context.Context, sinceDate string) ([]ProductCount, error)
	// CountAdds 统计 since 之后某一类行为日志里 ADD 的条数
	// REMOVE 不参与统计，也不抵扣
	CountAdds(ctx context.Context, typ string, since int64) ([]ProductCount, error)
	// ReplaceCache 原子地把榜单整个换成 rows
	// rows 为空就是清空榜单
	ReplaceCache(ctx context.Context, rows []PopularProduct) error
	// ListCache 按名次升序分页读榜单，name 非空时按商品名模糊过滤
	// 第二个返回值是过滤后的总行数，跟分页参数无关
	ListCache(ctx context.Context, offset, limit int, name string) ([]PopularProduct, int64, error)
}

type GORMPopularProductDAO struct {
	db *gorm.DB
}

func NewGORMPopularProductDAO(db *gorm.DB) PopularProductDAO {
	return &GORMPopularProductDAO{
		db: db,
	}
}

func (dao *GORMPopularProductDAO) SumSales(ctx context.Context, since int64) ([]ProductCount, error) {
	var res []ProductCount
	err := dao.db.WithContext(ctx).Model(&Order{}).
		Select("product_id AS product_id, COALESCE(SUM(quantity), 0) AS cnt").
		Where("ctime >= ?", since).
		Group("product_id").
		Find(&res).Error
	return res, err
}

func (dao *GORMPopularProductDAO) CountViews(ctx context.Context, sinceDate string) ([]ProductCount, error) {
	var res []ProductCount
	// COUNT(DISTINCT uid, view_date) 是 MySQL 的多列 DISTINCT 写法
	// 浏览日志表上有 (product_id, uid, view_date) 唯一索引兜底，
	// 但去重语义不依赖它，重复数据进来了这里照样只算一次
	err := dao.db.WithContext(ctx).Model(&ProductViewLog{}).
		Select("product_id AS product_id, COUNT(DISTINCT uid, view_date) AS cnt").
		Where("view_date >= ?", sinceDate).
		Group("product_id").
		Find(&res).Error
	return res, err
}

func (dao *GORMPopularProductDAO) CountAdds(ctx context.Context, typ string, since int64) ([]ProductCount, error) {
	var res []ProductCount
	err := dao.db.WithContext(ctx).Model(&UserProductLog{}).
		Select("product_id AS product_id, COUNT(*) AS cnt").
		Where("type = ? AND action = ? AND ctime >= ?", typ, ProductLogActionAdd, since).
		Group("product_id").
		Find(&res).Error
	return res, err
}

func (dao *GORMPopularProductDAO) ReplaceCache(ctx context.Context, rows []PopularProduct) error {
	now := time.Now().UnixMilli()
	for i := range rows {
		rows[i].Ctime = now
		rows[i].Utime = now
	}
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先整表清空，再整批写入，都在同一个事务里
		// 读请求要么看到完整的旧榜单，要么看到完整的新榜单
		// 注意不能用 TRUNCATE，TRUNCATE 是 DDL，会把事务隐式提交掉
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&PopularProduct{}).Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return fmt.Errorf("%w: %v", ErrDuplicateRank, err)
		}
	}
	return err
}

func (dao *GORMPopularProductDAO) ListCache(ctx context.Context, offset, limit int, name string) ([]PopularProduct, int64, error) {
	// Count 和 Find 的 WHERE 条件必须一致，所以统一从这里构造
	query := func() *gorm.DB {
		q := dao.db.WithContext(ctx).Model(&PopularProduct{})
		if name != "" {
			// 按快照里的商品名过滤
			// utf8mb4 默认的 ci collation 本身就不区分大小写
			q = q.Where("name LIKE ?", "%"+name+"%")
		}
		return q
	}
	var total int64
	err := query().Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	var res []PopularProduct
	err = query().Order("`rank` ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, total, err
}

// ProductCount 聚合查询的中间结果，每个商品一行
type ProductCount struct {
	ProductId int64
	Cnt       int64
}

// Order 原始订单表，热榜只读它
type Order struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	ProductId int64 `gorm:"index"`
	Uid       int64
	// Quantity 购买数量
	Quantity int64
	// 下单时间有索引，聚合全靠它圈定窗口
	Ctime int64 `gorm:"index"`
	Utime int64
}

// UserProductLog 用户对商品的行为日志（心愿单、购物车）
// ADD 和 REMOVE 都会记一条，互相不覆盖
type UserProductLog struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	ProductId int64  `gorm:"index"`
	Uid       int64
	// Type 取值见下面的常量
	Type   string `gorm:"type:varchar(32)"`
	Action string `gorm:"type:varchar(32)"`
	Ctime  int64  `gorm:"index"`
	Utime  int64
}

const (
	ProductLogTypeWishlist = "WISHLIST"
	ProductLogTypeCart     = "CART"

	ProductLogActionAdd    = "ADD"
	ProductLogActionRemove = "REMOVE"
)

// PopularProduct 热榜缓存表
// 每一轮重算整表换血，单行从来不原地更新
// rank 和 product_id 都有唯一索引，排序出了问题宁可写入失败
type PopularProduct struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	ProductId int64 `gorm:"uniqueIndex:uk_popular_product_id"`
	// rank 在 MySQL 8 里是保留字，列名要加反引号
	Rank int64 `gorm:"column:rank;uniqueIndex:uk_popular_rank"`

	SalesCount    int64
	ViewCount     int64
	WishlistCount int64
	CartAddCount  int64
	TotalScore    int64

	// 下面三列是重算时从商品目录拷贝的快照
	// 目录后面改了也不影响榜单，到下一轮重算才会刷新
	Name          sql.NullString `gorm:"type:varchar(256)"`
	ThumbnailPath sql.NullString `gorm:"type:varchar(1024)"`
	SalePrice     sql.NullInt64

	Ctime int64
	Utime int64
}
