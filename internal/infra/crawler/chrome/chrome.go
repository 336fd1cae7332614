package chrome

import (
	"context"
	"errors"
	"time"
)

// ErrNoContent 会话还没有成功加载过页面
var ErrNoContent = errors.New("no page content loaded")

// Session 一个可导航、可渲染的浏览器会话, 同一时间只被一个调用方使用
type Session interface {
	// Navigate 导航到url, 受PageLoadTimeout限制
	Navigate(ctx context.Context, url string) error
	// WaitReady 等待document.readyState为complete
	WaitReady(ctx context.Context, timeout time.Duration) error
	// ScrollHeight 返回document.body.scrollHeight
	ScrollHeight(ctx context.Context) (int, error)
	ScrollToBottom(ctx context.Context) error
	// HTML 返回当前渲染后的文档
	HTML(ctx context.Context) (string, error)
	Close() error
}

// Launcher 创建一个新的会话
type Launcher func(ctx context.Context) (Session, error)

// 目标站点是俄语站点
const acceptLanguage = "ru-RU,ru;q=0.9,en-US;q=0.8,en;q=0.7"

const (
	readyStateJS    = `() => document.readyState === "complete"`
	scrollHeightJS  = `() => document.body.scrollHeight`
	scrollToEndJS   = `() => window.scrollTo(0, document.body.scrollHeight)`
	readyStateExpr  = `document.readyState === "complete"`
	scrollHeightExp = `document.body.scrollHeight`
	scrollToEndExpr = `window.scrollTo(0, document.body.scrollHeight)`
)
