package job

import (
	"context"
	"errors"
	"time"

	"bzmall/internal/service"
	"bzmall/pkg/logger"
)

// PopularRebuildJob 每天凌晨重算一次热榜
type PopularRebuildJob struct {
	svc     service.PopularService
	timeout time.Duration
	l       logger.Logger
}

func NewPopularRebuildJob(svc service.PopularService,
	l logger.Logger, timeout time.Duration) *PopularRebuildJob {
	return &PopularRebuildJob{
		svc:     svc,
		timeout: timeout,
		l:       l,
	}
}

func (p *PopularRebuildJob) Name() string {
	return "popular_rebuild"
}

func (p *PopularRebuildJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	err := p.svc.Rebuild(ctx)
	if errors.Is(err, service.ErrRebuildRunning) {
		// 别的实例在算了，这一轮让给它，不算失败
		// 定时任务不重试，下一个周期自然会覆盖
		p.l.Info("热榜重算已经有人在跑，跳过这一轮")
		return nil
	}
	return err
}
