package ioc

import (
	"time"

	"bzmall/internal/job"
	"bzmall/internal/service"
	"bzmall/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

func InitPopularRebuildJob(svc service.PopularService, l logger.Logger) *job.PopularRebuildJob {
	// 重算要扫四张表，给足超时
	return job.NewPopularRebuildJob(svc, l, time.Minute*10)
}

func InitJobs(l logger.Logger, rebuildJob *job.PopularRebuildJob) *cron.Cron {
	bd := job.NewCronJobBuilder(l, prometheus.SummaryOpts{
		Namespace: "bzmall_server",
		Subsystem: "bzmall",
		Name:      "cron_job",
		Help:      "热榜定时任务",
	})
	expr := cron.New(cron.WithSeconds())
	// 每天零点重算，用的是服务器本地时区
	_, err := expr.AddJob("0 0 0 * * *", bd.Build(rebuildJob))
	if err != nil {
		panic(err)
	}
	return expr
}
