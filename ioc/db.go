package ioc

import (
	"fmt"

	"bzmall/internal/repository/dao"
	"bzmall/pkg/gormx/callbacks/prometheus"
	"bzmall/pkg/lockx"
	"bzmall/pkg/logger"

	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
	gormPrometheus "gorm.io/plugin/prometheus"
)

func InitDB(l logger.Logger) *gorm.DB {
	type Config struct {
		DSN string `yaml:"dsn"`
	}
	c := Config{
		DSN: "root:root@tcp(localhost:13316)/bzmall",
	}
	err := viper.UnmarshalKey("db", &c)
	if err != nil {
		panic(fmt.Errorf("初始化 db 配置失败 %v, 原因 %w", c, err))
	}

	db, err := gorm.Open(mysql.Open(c.DSN), &gorm.Config{
		Logger: glogger.New(gormLoggerFunc(l.Debug),
			glogger.Config{
				SlowThreshold: 0,
				LogLevel:      glogger.Info,
			}),
	})
	if err != nil {
		panic(err)
	}

	// 连接池之类的指标交给官方插件
	err = db.Use(gormPrometheus.New(gormPrometheus.Config{
		DBName:          "bzmall",
		RefreshInterval: 15,
	}))
	if err != nil {
		panic(err)
	}

	// 各类语句的耗时统计
	cb := &prometheus.Callbacks{
		Namespace:  "bzmall_server",
		Subsystem:  "bzmall",
		Name:       "gorm_op",
		InstanceID: "my-instance-1",
		Help:       "GORM 数据库操作耗时",
	}
	err = cb.Register(db)
	if err != nil {
		panic(err)
	}

	err = dao.InitTables(db)
	if err != nil {
		panic(err)
	}

	return db
}

// InitLocker 热榜重算用的全局锁，挂在业务库上
// 多实例部署时靠它保证同一时刻只有一个在重算
func InitLocker(db *gorm.DB) lockx.Locker {
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	return lockx.NewMySQLLocker(sqlDB)
}

type gormLoggerFunc func(msg string, fields ...logger.Field)

func (g gormLoggerFunc) Printf(msg string, args ...interface{}) {
	g(msg, logger.Field{Key: "args", Value: args})
}
