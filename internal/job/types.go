package job

// Job 所有定时任务的抽象
type Job interface {
	Name() string
	Run() error
}
