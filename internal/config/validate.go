package config

import (
	"net/url"
)

const (
	EngineRod      = "rod"
	EngineChromedp = "chromedp"
	EngineStatic   = "static"
)

func (c *Config) Validate() error {
	u, err := url.Parse(c.Site.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidBaseURL
	}
	switch c.Browser.Engine {
	case EngineRod, EngineChromedp, EngineStatic:
	default:
		return ErrInvalidEngine
	}
	if c.Browser.PageLoadTimeout <= 0 || c.Browser.ScriptTimeout <= 0 ||
		c.Browser.ReadyTimeout <= 0 || c.Harvest.TimeBudget <= 0 {
		return ErrInvalidTimeout
	}
	if c.Session.MaxAttempts <= 0 || c.Session.MaxRestarts < 0 || c.Harvest.MaxEmptyPages <= 0 {
		return ErrInvalidBudget
	}
	if c.Harvest.MaxTenders < 0 {
		return ErrInvalidMaxTenders
	}
	if c.Harvest.MinPageDelay < 0 || c.Harvest.MinPageDelay > c.Harvest.MaxPageDelay {
		return ErrInvalidPageDelay
	}
	return nil
}
