package ratelimit

import (
	"fmt"
	"net/http"

	"bzmall/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// Builder 按 ip 限流的 gin 中间件
type Builder struct {
	prefix  string
	limiter ratelimit.Limiter
}

func NewBuilder(limiter ratelimit.Limiter) *Builder {
	return &Builder{
		prefix:  "ip-limiter",
		limiter: limiter,
	}
}

func (b *Builder) Prefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

func (b *Builder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		limited, err := b.limiter.Limit(ctx,
			fmt.Sprintf("%s:%s", b.prefix, ctx.ClientIP()))
		if err != nil {
			// redis 崩了。这里选择保守做法，直接拒绝请求
			// 如果更在意可用性，可以放行
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if limited {
			ctx.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		ctx.Next()
	}
}
