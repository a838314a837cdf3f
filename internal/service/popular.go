package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"bzmall/internal/domain"
	"bzmall/internal/repository"
	"bzmall/pkg/lockx"
	"bzmall/pkg/logger"

	"github.com/ecodeclub/ekit/slice"
)

// ErrRebuildRunning 别的实例（或者本实例的另一个触发源）正在重算
// 调用方想重算就自己再触发一次，或者干脆等下一个周期
var ErrRebuildRunning = errors.New("热榜重算正在进行中")

// 重算的全局互斥锁名，所有实例、所有触发源共用这一把
const rebuildLockName = "popular_rebuild"

//go:generate mockgen -source=./popular.go -package=svcmocks -destination=mocks/popular.mock.go PopularService
type PopularService interface {
	// Rebuild 重算整个热榜并原子替换缓存表
	// 同一时刻全系统最多一个在跑，抢不到锁返回 ErrRebuildRunning
	Rebuild(ctx context.Context) error
	// List 分页读榜单，name 非空时按商品名模糊过滤
	List(ctx context.Context, page, limit int, name string) (domain.PopularProductList, error)
	// TopN 首页热榜条
	TopN(ctx context.Context) ([]domain.PopularProduct, error)
}

type PopularRankingService struct {
	repo        repository.PopularRepository
	locker      lockx.Locker
	lockTimeout time.Duration
	l           logger.Logger
	// 打分函数放成字段，测试的时候可以换
	scoreFunc func(m domain.ProductMetrics) int64
}

func NewPopularRankingService(repo repository.PopularRepository,
	locker lockx.Locker, l logger.Logger) PopularService {
	res := &PopularRankingService{
		repo:   repo,
		locker: locker,
		// 抢锁最多等 1 秒，抢不到就放弃这一轮
		lockTimeout: time.Second,
		l:           l,
	}
	res.scoreFunc = res.score
	return res
}

func (svc *PopularRankingService) Rebuild(ctx context.Context) error {
	lock, err := svc.locker.Lock(ctx, rebuildLockName, svc.lockTimeout)
	if err != nil {
		if errors.Is(err, lockx.ErrLocked) {
			return ErrRebuildRunning
		}
		return err
	}
	defer func() {
		// 不管中间哪一步失败，锁都要释放
		// 用新的 ctx，避免原 ctx 已经超时导致锁卡到连接断开才释放
		unlockCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if er := lock.Unlock(unlockCtx); er != nil {
			svc.l.Error("释放热榜重算锁失败", logger.Error(er))
		}
	}()

	// 聚合和排序都在写事务之外，慢一点也不挡别人写
	items, err := svc.topList(ctx, time.Now())
	if err != nil {
		return err
	}
	return svc.repo.ReplaceTopList(ctx, items)
}

func (svc *PopularRankingService) topList(ctx context.Context, now time.Time) ([]domain.PopularProduct, error) {
	metrics, err := svc.repo.Metrics(ctx, now)
	if err != nil {
		return nil, err
	}
	if len(metrics) == 0 {
		// 窗口里一点动静都没有，空榜单也是合法结果
		return []domain.PopularProduct{}, nil
	}
	ids := slice.Map(metrics, func(idx int, src domain.ProductMetrics) int64 {
		return src.ProductId
	})
	products, err := svc.repo.ProductsByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return svc.rank(metrics, products), nil
}

// rank 纯内存排序，同样的输入必须给出逐字节相同的输出
// 排序键：总分降序 → 商品上架时间降序（目录里查不到按 0 算）→ 商品 id 升序
// 最后一级保证了这是个全序，名次不会有并列
func (svc *PopularRankingService) rank(metrics []domain.ProductMetrics,
	products map[int64]domain.Product) []domain.PopularProduct {
	type scoredRow struct {
		m     domain.ProductMetrics
		score int64
		ctime int64
	}
	rows := slice.Map(metrics, func(idx int, src domain.ProductMetrics) scoredRow {
		var ctime int64
		if p, ok := products[src.ProductId]; ok {
			ctime = p.Ctime.UnixMilli()
		}
		return scoredRow{
			m:     src,
			score: svc.scoreFunc(src),
			ctime: ctime,
		}
	})
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		if rows[i].ctime != rows[j].ctime {
			return rows[i].ctime > rows[j].ctime
		}
		return rows[i].m.ProductId < rows[j].m.ProductId
	})
	res := make([]domain.PopularProduct, 0, len(rows))
	for i, row := range rows {
		p := products[row.m.ProductId]
		res = append(res, domain.PopularProduct{
			ProductMetrics: row.m,
			TotalScore:     row.score,
			// 名次从 1 开始，连续不断
			Rank:          int64(i + 1),
			Name:          p.Name,
			ThumbnailPath: p.ThumbnailPath,
			SalePrice:     p.SalePrice,
		})
	}
	return res
}

func (svc *PopularRankingService) score(m domain.ProductMetrics) int64 {
	return m.TotalScore()
}

func (svc *PopularRankingService) List(ctx context.Context, page, limit int, name string) (domain.PopularProductList, error) {
	// 默认值是 web 层的事，这里只兜底非法值
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	items, total, err := svc.repo.List(ctx, (page-1)*limit, limit, name)
	if err != nil {
		return domain.PopularProductList{}, err
	}
	return domain.PopularProductList{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

func (svc *PopularRankingService) TopN(ctx context.Context) ([]domain.PopularProduct, error) {
	return svc.repo.TopN(ctx)
}
