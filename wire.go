//go:build wireinject

package main

import (
	"bzmall/internal/events/product"
	"bzmall/internal/repository"
	"bzmall/internal/repository/cache"
	"bzmall/internal/repository/dao"
	"bzmall/internal/service"
	"bzmall/internal/web"
	"bzmall/ioc"

	"github.com/google/wire"
)

// 第三方依赖
var thirdProvider = wire.NewSet(
	ioc.InitLogger,
	ioc.InitDB,
	ioc.InitRedis,
	ioc.InitKafka,
	ioc.NewSyncProducer,
	ioc.InitLocker,
)

// 热榜部分
var popularProvider = wire.NewSet(
	dao.NewGORMPopularProductDAO,
	dao.NewGORMProductDAO,
	dao.NewGORMProductViewLogDAO,
	cache.NewRedisPopularCache,
	cache.NewLocalPopularCache,
	repository.NewCachedPopularRepository,
	repository.NewProductViewRepository,
	service.NewPopularRankingService,
)

func InitApp() *App {
	wire.Build(
		thirdProvider,
		popularProvider,

		// events 部分
		product.NewKafkaProducer,
		product.NewViewEventBatchConsumer,
		ioc.NewConsumers,

		// cron 部分
		ioc.InitPopularRebuildJob,
		ioc.InitJobs,

		// handler 部分
		web.NewPopularProductHandler,
		web.NewPopularProductAdminHandler,
		web.NewProductViewHandler,

		// gin 的中间件
		ioc.GinMiddlewares,

		// Web 服务器
		ioc.InitWebServer,

		wire.Struct(new(App), "*"),
	)
	return new(App)
}
