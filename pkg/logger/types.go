package logger

// Logger 日志门面，屏蔽具体日志库
// 方法上的 Field 是可选的结构化字段
type Logger interface {
	Debug(msg string, args ...Field)
	Info(msg string, args ...Field)
	Warn(msg string, args ...Field)
	Error(msg string, args ...Field)
}

// Field 结构化日志字段
type Field struct {
	Key   string
	Value any
}

func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

func Int(key string, val int) Field {
	return Field{Key: key, Value: val}
}

func Int64(key string, val int64) Field {
	return Field{Key: key, Value: val}
}

func Bool(key string, val bool) Field {
	return Field{Key: key, Value: val}
}

// Error 约定俗成用 error 作为 key
func Error(err error) Field {
	return Field{Key: "error", Value: err}
}
