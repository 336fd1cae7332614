package collector

import (
	"context"

	"github.com/LouYuanbo1/tenderparser/internal/config"
	"github.com/LouYuanbo1/tenderparser/internal/infra/crawler/chrome"
)

// NewStaticLauncher 返回基于colly的会话工厂.
// 不执行javascript, 适合服务端渲染的列表页或本地测试
func NewStaticLauncher(cfg *config.Config) chrome.Launcher {
	return func(ctx context.Context) (chrome.Session, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return InitCollySession(cfg)
	}
}
