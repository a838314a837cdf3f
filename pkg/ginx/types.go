package ginx

// Result API 响应的统一格式
// Code 为 0 表示成功，4 开头是调用方的问题，5 开头是系统的问题
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}
