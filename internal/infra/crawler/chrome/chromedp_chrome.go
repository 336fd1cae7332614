package chrome

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/go-rod/stealth"
)

type chromedpSession struct {
	allocCancel context.CancelFunc
	ctx         context.Context
	cancel      context.CancelFunc
	opts        Options
}

// NewChromedpLauncher 返回基于chromedp的会话工厂
func NewChromedpLauncher(opts ...Option) Launcher {
	o := NewOptions(opts...)
	return func(ctx context.Context) (Session, error) {
		return InitChromedpSession(ctx, o)
	}
}

func InitChromedpSession(ctx context.Context, opts Options) (Session, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("enable-automation", false),
		chromedp.Flag("no-sandbox", opts.NoSandbox),
		chromedp.Flag("disable-dev-shm-usage", opts.DisableDevShmUsage),
		chromedp.Flag("log-level", "3"),
		chromedp.WindowSize(opts.WindowWidth, opts.WindowHeight),
		chromedp.CombinedOutput(io.Discard),
	)
	if opts.DisableBlinkFeatures != "" {
		allocOpts = append(allocOpts, chromedp.Flag("disable-blink-features", opts.DisableBlinkFeatures))
	}
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}
	if opts.Bin != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.Bin))
	}
	for _, f := range opts.ExtraFlags {
		allocOpts = append(allocOpts, chromedp.Flag(f, true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	// chromedp默认会把浏览器内部的报错打印到标准输出
	quiet := func(string, ...any) {}
	tabCtx, cancel := chromedp.NewContext(allocCtx, chromedp.WithErrorf(quiet), chromedp.WithLogf(quiet))

	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(opts.WindowWidth), int64(opts.WindowHeight)),
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": acceptLanguage}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(stealth.JS).Do(ctx)
			return err
		}),
	)
	if err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("启动浏览器失败: %w", err)
	}
	return &chromedpSession{
		allocCancel: allocCancel,
		ctx:         tabCtx,
		cancel:      cancel,
		opts:        opts,
	}, nil
}

// run 在浏览器标签页上下文中执行动作, 调用方ctx取消时同样中止
func (cs *chromedpSession) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(cs.ctx, timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

func (cs *chromedpSession) Navigate(ctx context.Context, url string) error {
	if err := cs.run(ctx, cs.opts.PageLoadTimeout, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("导航失败: %w", err)
	}
	return nil
}

func (cs *chromedpSession) WaitReady(ctx context.Context, timeout time.Duration) error {
	var ready bool
	err := cs.run(ctx, timeout+time.Second,
		chromedp.Poll(readyStateExpr, &ready, chromedp.WithPollingTimeout(timeout)),
	)
	if err != nil {
		return fmt.Errorf("等待页面就绪失败: %w", err)
	}
	return nil
}

func (cs *chromedpSession) ScrollHeight(ctx context.Context) (int, error) {
	var height int
	if err := cs.run(ctx, cs.opts.ScriptTimeout, chromedp.Evaluate(scrollHeightExp, &height)); err != nil {
		return 0, fmt.Errorf("获取页面高度失败: %w", err)
	}
	return height, nil
}

func (cs *chromedpSession) ScrollToBottom(ctx context.Context) error {
	if err := cs.run(ctx, cs.opts.ScriptTimeout, chromedp.Evaluate(scrollToEndExpr, nil)); err != nil {
		return fmt.Errorf("滚动页面失败: %w", err)
	}
	return nil
}

func (cs *chromedpSession) HTML(ctx context.Context) (string, error) {
	var html string
	err := cs.run(ctx, cs.opts.ScriptTimeout, chromedp.OuterHTML("html", &html, chromedp.ByQuery))
	if err != nil {
		return "", fmt.Errorf("获取页面HTML失败: %w", err)
	}
	return html, nil
}

func (cs *chromedpSession) Close() error {
	if cs.cancel == nil {
		return nil
	}
	err := chromedp.Cancel(cs.ctx)
	cs.cancel()
	cs.allocCancel()
	cs.cancel = nil
	return err
}
