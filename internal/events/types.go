package events

// Consumer 所有后台消费者的统一启动入口
type Consumer interface {
	Start() error
}
