package ioc

import (
	"context"
	"strings"
	"time"

	"bzmall/internal/web"
	"bzmall/pkg/ginx"
	"bzmall/pkg/ginx/middleware/accesslog"
	"bzmall/pkg/ginx/middleware/metrics"
	limitmdl "bzmall/pkg/ginx/middleware/ratelimit"
	"bzmall/pkg/logger"
	"bzmall/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func InitWebServer(funcs []gin.HandlerFunc,
	popularHdl *web.PopularProductHandler,
	adminHdl *web.PopularProductAdminHandler,
	viewHdl *web.ProductViewHandler) *gin.Engine {
	server := gin.Default()
	gin.ForceConsoleColor()

	server.Use(funcs...)

	popularHdl.RegisterRoutes(server)
	adminHdl.RegisterRoutes(server)
	viewHdl.RegisterRoutes(server)

	return server
}

func GinMiddlewares(cmd redis.Cmdable, l logger.Logger) []gin.HandlerFunc {
	ginx.SetLogger(l)

	pb := &metrics.PrometheusBuilder{
		Namespace:  "bzmall_server",
		Subsystem:  "bzmall",
		Name:       "gin_http",
		InstanceID: "my-instance-1",
		Help:       "GIN 中 HTTP 请求",
	}

	return []gin.HandlerFunc{
		// 限流，一个 ip 一分钟最多 100 次
		limitmdl.NewBuilder(
			ratelimit.NewRedisSlidingWindowLimiter(cmd, time.Minute, 100)).
			Build(),

		// 跨域
		corsHandler(),

		// prometheus
		pb.Build(),

		// 访问日志，DEBUG 级别，线上按需关
		accesslog.NewBuilder(func(ctx context.Context, al *accesslog.AccessLog) {
			l.Debug("GIN 收到请求", logger.Field{
				Key:   "req",
				Value: al,
			})
		}).Build(),
	}
}

func corsHandler() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "bzmall.com")
		},
		MaxAge: 12 * time.Hour,
	})
}
