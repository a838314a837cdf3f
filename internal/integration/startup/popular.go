package startup

import (
	"bzmall/internal/repository"
	"bzmall/internal/repository/cache"
	"bzmall/internal/repository/dao"
	"bzmall/internal/service"
	"bzmall/pkg/lockx"
	"bzmall/pkg/logger"
)

func InitPopularRepository() repository.PopularRepository {
	db := InitTestDB()
	return repository.NewCachedPopularRepository(
		dao.NewGORMPopularProductDAO(db),
		dao.NewGORMProductDAO(db),
		cache.NewRedisPopularCache(InitTestRedis()),
		cache.NewLocalPopularCache(),
		logger.NewNopLogger(),
	)
}

func InitPopularService() service.PopularService {
	sqlDB, err := InitTestDB().DB()
	if err != nil {
		panic(err)
	}
	return service.NewPopularRankingService(
		InitPopularRepository(),
		lockx.NewMySQLLocker(sqlDB),
		logger.NewNopLogger(),
	)
}
