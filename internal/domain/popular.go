package domain

// 热榜打分的固定权重
// 卖出一件 4 分，一次有效浏览 1 分，加一次心愿单 2 分，加一次购物车 3 分
const (
	ScoreSale     = 4
	ScoreView     = 1
	ScoreWishlist = 2
	ScoreCartAdd  = 3
)

// ProductMetrics 单个商品在统计窗口内的行为指标
// 每一轮重算都从原始表上重新聚合出来，只在一次重算的内存里存在
type ProductMetrics struct {
	ProductId int64
	// SalesCount 窗口内订单数量之和
	SalesCount int64
	// ViewCount 窗口内浏览量，按 (用户, 自然日) 去重之后的
	ViewCount int64
	// WishlistCount 窗口内加入心愿单的次数，只算 ADD，不抵扣 REMOVE
	WishlistCount int64
	// CartAddCount 窗口内加入购物车的次数，同样只算 ADD
	CartAddCount int64
}

// TotalScore 总分永远从四个计数现算，不允许单独维护
func (m ProductMetrics) TotalScore() int64 {
	return m.SalesCount*ScoreSale +
		m.ViewCount*ScoreView +
		m.WishlistCount*ScoreWishlist +
		m.CartAddCount*ScoreCartAdd
}

// PopularProduct 榜单里的一行
// Rank 从 1 开始连续递增，没有空洞也没有并列
// 名称、缩略图和售价是重算那一刻从商品目录拷过来的快照，
// 下一轮重算之前不会跟着目录变
type PopularProduct struct {
	ProductMetrics
	TotalScore    int64
	Rank          int64
	Name          string
	ThumbnailPath string
	SalePrice     int64
}

// PopularProductList 分页查询结果
// Total 是过滤之后的总行数，跟当前页无关
type PopularProductList struct {
	Items []PopularProduct
	Page  int
	Limit int
	Total int64
}

// ProductView 一次商品浏览，ViewDate 形如 2024-01-02
// 同一个 (用户, 商品, 日) 只会留下一条记录
type ProductView struct {
	Uid       int64
	ProductId int64
	ViewDate  string
}
