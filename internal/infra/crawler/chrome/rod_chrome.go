package chrome

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

type rodSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	opts     Options
}

// NewRodLauncher 返回基于go-rod的会话工厂
func NewRodLauncher(opts ...Option) Launcher {
	o := NewOptions(opts...)
	return func(ctx context.Context) (Session, error) {
		return InitRodSession(ctx, o)
	}
}

// InitRodSession 启动一个带stealth脚本的无头浏览器并打开空白页
func InitRodSession(ctx context.Context, opts Options) (Session, error) {
	l := launcher.New().
		Context(ctx).
		Headless(opts.Headless).
		Leakless(opts.Leakless).
		NoSandbox(opts.NoSandbox).
		Set("window-size", fmt.Sprintf("%d,%d", opts.WindowWidth, opts.WindowHeight)).
		Set("log-level", "3").
		Logger(io.Discard)
	if opts.Bin != "" {
		l = l.Bin(opts.Bin)
	}
	if opts.DisableBlinkFeatures != "" {
		l = l.Set("disable-blink-features", opts.DisableBlinkFeatures)
	}
	if opts.DisableDevShmUsage {
		l = l.Set("disable-dev-shm-usage")
	}
	if opts.UserAgent != "" {
		l = l.Set("user-agent", opts.UserAgent)
	}
	for _, f := range opts.ExtraFlags {
		l = l.Set(flags.Flag(f))
	}

	controlURL, err := l.Launch()
	if err != nil {
		l.Kill()
		return nil, fmt.Errorf("启动浏览器失败: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).NoDefaultDevice()
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("连接浏览器失败: %w", err)
	}

	rs := &rodSession{launcher: l, browser: browser, opts: opts}
	page, err := stealth.Page(browser)
	if err != nil {
		_ = rs.Close()
		return nil, fmt.Errorf("创建页面失败: %w", err)
	}
	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.WindowWidth,
		Height:            opts.WindowHeight,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		_ = rs.Close()
		return nil, fmt.Errorf("设置视口失败: %w", err)
	}
	if _, err := page.SetExtraHeaders([]string{"Accept-Language", acceptLanguage}); err != nil {
		_ = rs.Close()
		return nil, fmt.Errorf("设置请求头失败: %w", err)
	}
	rs.page = page
	return rs, nil
}

func (rs *rodSession) Navigate(ctx context.Context, url string) error {
	page := rs.page.Context(ctx).Timeout(rs.opts.PageLoadTimeout)
	defer page.CancelTimeout()

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("导航失败: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("等待页面加载失败: %w", err)
	}
	return nil
}

func (rs *rodSession) WaitReady(ctx context.Context, timeout time.Duration) error {
	page := rs.page.Context(ctx).Timeout(timeout)
	defer page.CancelTimeout()

	if err := page.Wait(rod.Eval(readyStateJS)); err != nil {
		return fmt.Errorf("等待页面就绪失败: %w", err)
	}
	return nil
}

func (rs *rodSession) ScrollHeight(ctx context.Context) (int, error) {
	page := rs.page.Context(ctx).Timeout(rs.opts.ScriptTimeout)
	defer page.CancelTimeout()

	res, err := page.Eval(scrollHeightJS)
	if err != nil {
		return 0, fmt.Errorf("获取页面高度失败: %w", err)
	}
	return res.Value.Int(), nil
}

func (rs *rodSession) ScrollToBottom(ctx context.Context) error {
	page := rs.page.Context(ctx).Timeout(rs.opts.ScriptTimeout)
	defer page.CancelTimeout()

	if _, err := page.Eval(scrollToEndJS); err != nil {
		return fmt.Errorf("滚动页面失败: %w", err)
	}
	return nil
}

func (rs *rodSession) HTML(ctx context.Context) (string, error) {
	if rs.page == nil {
		return "", ErrNoContent
	}
	page := rs.page.Context(ctx).Timeout(rs.opts.ScriptTimeout)
	defer page.CancelTimeout()

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("获取页面HTML失败: %w", err)
	}
	return html, nil
}

func (rs *rodSession) Close() error {
	var errs []error
	if rs.browser != nil {
		if err := rs.browser.Close(); err != nil {
			errs = append(errs, err)
		}
		rs.browser = nil
	}
	if rs.launcher != nil {
		rs.launcher.Kill()
		rs.launcher.Cleanup()
		rs.launcher = nil
	}
	return errors.Join(errs...)
}
