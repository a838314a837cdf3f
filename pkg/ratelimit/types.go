package ratelimit

import "context"

type Limiter interface {
	// Limit 检查 key 有没有触发限流
	// key 是限流对象，比如 ip 或者用户 id
	Limit(ctx context.Context, key string) (bool, error)
}
