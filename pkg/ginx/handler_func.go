package ginx

import (
	"net/http"

	"bzmall/pkg/logger"

	"github.com/gin-gonic/gin"
)

// 因为泛型的限制，这里只能用包变量来配置日志
var log logger.Logger = logger.NewNopLogger()

func SetLogger(l logger.Logger) {
	log = l
}

// WrapReq 把参数绑定和统一响应做掉，业务方法只管处理 Req
func WrapReq[Req any](fn func(ctx *gin.Context, req Req) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := ctx.Bind(&req); err != nil {
			// Bind 失败的时候 gin 自己会写 400
			log.Error("解析请求失败", logger.Error(err))
			return
		}
		res, err := fn(ctx, req)
		if err != nil {
			log.Error("执行业务逻辑失败",
				logger.String("path", ctx.Request.URL.Path),
				logger.Error(err))
		}
		ctx.JSON(http.StatusOK, res)
	}
}

func Wrap(fn func(ctx *gin.Context) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := fn(ctx)
		if err != nil {
			log.Error("执行业务逻辑失败",
				logger.String("path", ctx.Request.URL.Path),
				logger.Error(err))
		}
		ctx.JSON(http.StatusOK, res)
	}
}
