package accesslog

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

// MiddlewareBuilder 访问日志中间件
// 日志怎么打由调用方通过 loggerFunc 决定
type MiddlewareBuilder struct {
	loggerFunc   func(ctx context.Context, al *AccessLog)
	allowReqBody bool
}

// AccessLog 一次请求的摘要
type AccessLog struct {
	Method   string
	Url      string
	ReqBody  string
	Status   int
	Duration string
}

func NewBuilder(fn func(ctx context.Context, al *AccessLog)) *MiddlewareBuilder {
	return &MiddlewareBuilder{
		loggerFunc: fn,
	}
}

// AllowReqBody 打开请求体记录，排查问题的时候用，平时别开
func (b *MiddlewareBuilder) AllowReqBody() *MiddlewareBuilder {
	b.allowReqBody = true
	return b
}

func (b *MiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		url := ctx.Request.URL.String()
		// url 可能被人构造得很长，掐掉
		if len(url) > 1024 {
			url = url[:1024]
		}
		al := &AccessLog{
			Method: ctx.Request.Method,
			Url:    url,
		}
		if b.allowReqBody && ctx.Request.Body != nil {
			// GetRawData 会读空 Body，要再塞回去
			body, _ := ctx.GetRawData()
			ctx.Request.Body = io.NopCloser(bytes.NewReader(body))
			if len(body) > 1024 {
				body = body[:1024]
			}
			al.ReqBody = string(body)
		}

		defer func() {
			al.Status = ctx.Writer.Status()
			al.Duration = time.Since(start).String()
			b.loggerFunc(ctx, al)
		}()

		ctx.Next()
	}
}
