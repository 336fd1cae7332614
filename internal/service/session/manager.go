package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LouYuanbo1/tenderparser/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/tenderparser/param"
)

// Sleeper 可被ctx中断的等待
type Sleeper func(ctx context.Context, d time.Duration) error

func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type manager struct {
	launch   chrome.Launcher
	params   *param.Session
	logger   *slog.Logger
	sleep    Sleeper
	current  chrome.Session
	restarts int
}

type ManagerOption func(*manager)

func WithSleeper(sleep Sleeper) ManagerOption {
	return func(m *manager) { m.sleep = sleep }
}

func InitManager(launch chrome.Launcher, params *param.Session, logger *slog.Logger, opts ...ManagerOption) Manager {
	m := &manager{
		launch: launch,
		params: params,
		logger: logger,
		sleep:  SleepContext,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *manager) Create(ctx context.Context) (chrome.Session, error) {
	if m.current != nil {
		return m.current, nil
	}
	s, err := m.launch(ctx)
	if err != nil {
		m.logger.Error("浏览器会话启动失败", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrSessionCreation, err)
	}
	m.current = s
	m.logger.Info("浏览器会话已启动")
	return s, nil
}

func (m *manager) Navigate(ctx context.Context, url string) *NavResult {
	maxAttempts := max(m.params.MaxAttempts, 1)
	attempts := 0
	lastErr := errNoSession
	for m.current != nil && attempts < maxAttempts {
		attempts++
		m.logger.Info("加载页面",
			slog.String("url", url),
			slog.Int("attempt", attempts),
			slog.Int("max_attempts", maxAttempts),
		)
		err := m.attempt(ctx, url)
		if err == nil {
			m.logger.Debug("页面加载完成", slog.String("url", url), slog.Int("attempt", attempts))
			return &NavResult{Status: NavOK, Page: m.current, Attempts: attempts}
		}
		lastErr = err
		m.logger.Warn("页面加载失败",
			slog.String("url", url),
			slog.Int("attempt", attempts),
			slog.Any("error", err),
		)
		if ctx.Err() != nil {
			return &NavResult{Status: NavFatal, Attempts: attempts, Err: ctx.Err()}
		}
		if attempts < maxAttempts {
			delay := time.Duration(attempts) * m.params.RetryDelay
			m.logger.Info("等待后重试", slog.Duration("delay", delay))
			if err := m.sleep(ctx, delay); err != nil {
				return &NavResult{Status: NavFatal, Attempts: attempts, Err: err}
			}
		}
	}
	navErr := fmt.Errorf("%w: %s: %w", ErrNavigation, url, lastErr)

	// 重启次数用尽后保留当前会话, 之后的页面照常重试, 只是不再重启
	if m.restarts >= m.params.MaxRestarts {
		m.logger.Error("浏览器重启次数已用尽, 本页计为失败",
			slog.String("url", url),
			slog.Int("restarts", m.restarts),
			slog.Int("max_restarts", m.params.MaxRestarts),
		)
		return &NavResult{Status: NavFatal, Attempts: attempts, Err: fmt.Errorf("%w: %w", ErrSessionExhausted, navErr)}
	}

	m.Close()
	m.restarts++
	m.logger.Warn("重启浏览器会话",
		slog.Int("restart", m.restarts),
		slog.Int("max_restarts", m.params.MaxRestarts),
	)
	if _, err := m.Create(ctx); err != nil {
		return &NavResult{Status: NavRetry, Attempts: attempts, Err: err}
	}
	return &NavResult{Status: NavRetry, Attempts: attempts, Err: navErr}
}

func (m *manager) attempt(ctx context.Context, url string) error {
	if err := m.current.Navigate(ctx, url); err != nil {
		return err
	}
	return m.current.WaitReady(ctx, m.params.ReadyTimeout)
}

func (m *manager) Restarts() int {
	return m.restarts
}

func (m *manager) Close() {
	if m.current == nil {
		return
	}
	if err := m.current.Close(); err != nil {
		m.logger.Warn("关闭浏览器会话失败", slog.Any("error", err))
	}
	m.current = nil
}
