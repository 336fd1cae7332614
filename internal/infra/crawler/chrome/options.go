package chrome

import (
	"time"

	"github.com/LouYuanbo1/tenderparser/internal/config"
)

// Options 浏览器启动参数
type Options struct {
	Bin                  string
	Headless             bool
	WindowWidth          int
	WindowHeight         int
	DisableBlinkFeatures string
	DisableDevShmUsage   bool
	NoSandbox            bool
	UserAgent            string
	Leakless             bool
	ExtraFlags           []string
	PageLoadTimeout      time.Duration
	ScriptTimeout        time.Duration
}

type Option func(*Options)

func NewOptions(opts ...Option) Options {
	o := Options{
		Headless:        true,
		WindowWidth:     1920,
		WindowHeight:    1080,
		PageLoadTimeout: 4 * time.Minute,
		ScriptTimeout:   30 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithBin(bin string) Option {
	return func(o *Options) { o.Bin = bin }
}

func WithHeadless(headless bool) Option {
	return func(o *Options) { o.Headless = headless }
}

func WithWindowSize(width, height int) Option {
	return func(o *Options) {
		if width > 0 && height > 0 {
			o.WindowWidth, o.WindowHeight = width, height
		}
	}
}

func WithDisableBlinkFeatures(features string) Option {
	return func(o *Options) { o.DisableBlinkFeatures = features }
}

func WithDisableDevShmUsage(disable bool) Option {
	return func(o *Options) { o.DisableDevShmUsage = disable }
}

func WithNoSandbox(noSandbox bool) Option {
	return func(o *Options) { o.NoSandbox = noSandbox }
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) { o.UserAgent = userAgent }
}

func WithLeakless(leakless bool) Option {
	return func(o *Options) { o.Leakless = leakless }
}

func WithExtraFlags(flags ...string) Option {
	return func(o *Options) { o.ExtraFlags = append(o.ExtraFlags, flags...) }
}

func WithTimeouts(pageLoad, script time.Duration) Option {
	return func(o *Options) {
		if pageLoad > 0 {
			o.PageLoadTimeout = pageLoad
		}
		if script > 0 {
			o.ScriptTimeout = script
		}
	}
}

// FromConfig 将配置文件中的browser段转换为启动参数
func FromConfig(cfg *config.Config) []Option {
	b := cfg.Browser
	return []Option{
		WithBin(b.Bin),
		WithHeadless(b.Headless),
		WithWindowSize(b.WindowWidth, b.WindowHeight),
		WithDisableBlinkFeatures(b.DisableBlinkFeatures),
		WithDisableDevShmUsage(b.DisableDevShmUsage),
		WithNoSandbox(b.NoSandbox),
		WithUserAgent(b.UserAgent),
		WithLeakless(b.Leakless),
		WithExtraFlags(b.ExtraFlags...),
		WithTimeouts(b.PageLoadTimeout.Std(), b.ScriptTimeout.Std()),
	}
}
