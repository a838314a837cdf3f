package lockx

import (
	"context"
	"errors"
	"time"
)

// ErrLocked 在等待时间内没有拿到锁
var ErrLocked = errors.New("锁已经被别人持有")

// Locker 按名字的互斥锁，要求跨进程、跨实例生效
// 同一个名字同一时刻最多一个持有者
//
//go:generate mockgen -source=./types.go -package=lockxmocks -destination=mocks/lockx.mock.go Locker
type Locker interface {
	// Lock 在 timeout 之内尝试拿到名为 name 的锁
	// 拿不到返回 ErrLocked，不会自动重试
	Lock(ctx context.Context, name string, timeout time.Duration) (Lock, error)
}

// Lock 已经持有的锁，用完必须 Unlock
type Lock interface {
	Unlock(ctx context.Context) error
}
