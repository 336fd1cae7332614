package session

import "errors"

var (
	// ErrSessionCreation 浏览器会话启动失败
	ErrSessionCreation = errors.New("failed to create browser session")
	// ErrSessionExhausted 会话重启次数已用尽, 本次运行之后的导航全部视为失败
	ErrSessionExhausted = errors.New("browser session restart budget exhausted")
	// ErrNavigation 页面在重试次数内未能加载完成
	ErrNavigation = errors.New("page navigation failed")

	errNoSession = errors.New("no live browser session")
)
