package param

import (
	"time"

	"github.com/LouYuanbo1/tenderparser/internal/config"
)

// Session 会话管理选项
type Session struct {
	MaxAttempts  int           `json:"max_attempts"`
	RetryDelay   time.Duration `json:"retry_delay"`
	ReadyTimeout time.Duration `json:"ready_timeout"`
	MaxRestarts  int           `json:"max_restarts"`
}

func SessionFromConfig(cfg *config.Config) *Session {
	return &Session{
		MaxAttempts:  cfg.Session.MaxAttempts,
		RetryDelay:   cfg.Session.RetryDelay.Std(),
		ReadyTimeout: cfg.Browser.ReadyTimeout.Std(),
		MaxRestarts:  cfg.Session.MaxRestarts,
	}
}
