package domain

import "time"

// Product 商品目录条目
// 热榜这边只读它，不拥有它
type Product struct {
	Id            int64
	Name          string
	SalePrice     int64
	ThumbnailPath string

	Ctime time.Time
	Utime time.Time
}
