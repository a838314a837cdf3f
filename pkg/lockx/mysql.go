package lockx

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MySQLLocker 基于 MySQL GET_LOCK 的实现
// GET_LOCK 是会话级别的，所以 Lock 到 Unlock 之间必须钉死在同一个连接上，
// 不能把语句交给连接池随机分配。这里用 sql.Conn 来保证这一点。
// 额外的好处：万一进程崩了，连接断开时 MySQL 会自动释放锁
type MySQLLocker struct {
	db *sql.DB
}

func NewMySQLLocker(db *sql.DB) Locker {
	return &MySQLLocker{
		db: db,
	}
}

func (m *MySQLLocker) Lock(ctx context.Context, name string, timeout time.Duration) (Lock, error) {
	conn, err := m.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	// GET_LOCK 的超时参数是秒
	var got sql.NullInt64
	err = conn.QueryRowContext(ctx, "SELECT GET_LOCK(?, ?)", name,
		int64(timeout/time.Second)).Scan(&got)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	// 返回 1 才是拿到了，0 是超时，NULL 是出错
	if !got.Valid || got.Int64 != 1 {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %s", ErrLocked, name)
	}
	return &mysqlLock{
		conn: conn,
		name: name,
	}, nil
}

type mysqlLock struct {
	conn *sql.Conn
	name string
}

func (l *mysqlLock) Unlock(ctx context.Context) error {
	// 不管 RELEASE_LOCK 成不成功，连接都要还回去
	// 连接关掉之后 MySQL 也会释放这个会话上的锁
	defer func() {
		_ = l.conn.Close()
	}()
	_, err := l.conn.ExecContext(ctx, "SELECT RELEASE_LOCK(?)", l.name)
	return err
}
