package harvest

import "errors"

var (
	// ErrCritical 采集循环被意外错误中断, 已采集的记录仍然返回
	ErrCritical = errors.New("critical harvest error")
	// ErrParse 页面HTML无法解析
	ErrParse = errors.New("failed to parse listing page")
)
