package crawler

import (
	"fmt"

	"github.com/LouYuanbo1/tenderparser/internal/config"
	"github.com/LouYuanbo1/tenderparser/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/tenderparser/internal/infra/crawler/collector"
)

// NewLauncher 根据browser.engine选择会话实现
func NewLauncher(cfg *config.Config) (chrome.Launcher, error) {
	switch cfg.Browser.Engine {
	case config.EngineRod, "":
		return chrome.NewRodLauncher(chrome.FromConfig(cfg)...), nil
	case config.EngineChromedp:
		return chrome.NewChromedpLauncher(chrome.FromConfig(cfg)...), nil
	case config.EngineStatic:
		return collector.NewStaticLauncher(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidEngine, cfg.Browser.Engine)
	}
}
