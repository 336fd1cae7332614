package collector

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"github.com/LouYuanbo1/tenderparser/internal/config"
	"github.com/LouYuanbo1/tenderparser/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/tenderparser/internal/infra/crawler/types"
	"github.com/gocolly/colly/v2"
)

type collySession struct {
	colly *colly.Collector
	last  *types.NetworkResponse
}

func InitCollySession(cfg *config.Config) (chrome.Session, error) {
	opts := []colly.CollectorOption{
		colly.AllowURLRevisit(),
	}
	if cfg.Browser.UserAgent != "" {
		opts = append(opts, colly.UserAgent(cfg.Browser.UserAgent))
	}
	if cfg.Colly.IgnoreRobotsTxt {
		opts = append(opts, colly.IgnoreRobotsTxt())
	}
	c := colly.NewCollector(opts...)
	if d := cfg.Browser.PageLoadTimeout.Std(); d > 0 {
		c.SetRequestTimeout(d)
	}
	if cfg.Colly.EnableCookieJar {
		jar, err := cookiejar.New(cfg.Colly.CookieJarOptions)
		if err != nil {
			return nil, fmt.Errorf("创建cookie jar失败: %w", err)
		}
		c.SetCookieJar(jar)
	}

	cs := &collySession{colly: c}
	c.OnResponse(func(r *colly.Response) {
		cs.last = &types.NetworkResponse{
			Url:        r.Request.URL.String(),
			StatusCode: r.StatusCode,
			Body:       r.Body,
		}
	})
	return cs, nil
}

func (cs *collySession) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cs.colly == nil {
		return fmt.Errorf("访问URL失败: session closed")
	}
	cs.last = nil
	if err := cs.colly.Visit(url); err != nil {
		return fmt.Errorf("访问URL失败: %w", err)
	}
	return nil
}

// WaitReady 静态文档在响应返回时即已就绪
func (cs *collySession) WaitReady(ctx context.Context, _ time.Duration) error {
	if cs.last == nil {
		return chrome.ErrNoContent
	}
	return ctx.Err()
}

func (cs *collySession) ScrollHeight(ctx context.Context) (int, error) {
	return 0, ctx.Err()
}

func (cs *collySession) ScrollToBottom(ctx context.Context) error {
	return ctx.Err()
}

func (cs *collySession) HTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if cs.last == nil {
		return "", chrome.ErrNoContent
	}
	return string(cs.last.Body), nil
}

func (cs *collySession) Close() error {
	cs.colly = nil
	cs.last = nil
	return nil
}
