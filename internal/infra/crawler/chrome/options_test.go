package chrome

import (
	"testing"
	"time"

	"github.com/LouYuanbo1/tenderparser/internal/config"
	"github.com/google/go-cmp/cmp"
)

func TestNewOptions(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		got := NewOptions()
		want := Options{
			Headless:        true,
			WindowWidth:     1920,
			WindowHeight:    1080,
			PageLoadTimeout: 4 * time.Minute,
			ScriptTimeout:   30 * time.Second,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("NewOptions() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero values keep defaults", func(t *testing.T) {
		t.Parallel()
		got := NewOptions(WithWindowSize(0, 0), WithTimeouts(0, 0))
		if got.WindowWidth != 1920 || got.PageLoadTimeout != 4*time.Minute {
			t.Errorf("unexpected options: %+v", got)
		}
	})

	t.Run("from config", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default()
		cfg.Browser.Bin = "/usr/bin/chromium"
		cfg.Browser.Headless = false
		cfg.Browser.ExtraFlags = []string{"disable-gpu"}
		cfg.Browser.PageLoadTimeout = config.Duration(time.Minute)

		got := NewOptions(FromConfig(cfg)...)
		if got.Bin != "/usr/bin/chromium" || got.Headless {
			t.Errorf("unexpected options: %+v", got)
		}
		if diff := cmp.Diff([]string{"disable-gpu"}, got.ExtraFlags); diff != "" {
			t.Errorf("ExtraFlags mismatch (-want +got):\n%s", diff)
		}
		if got.PageLoadTimeout != time.Minute {
			t.Errorf("PageLoadTimeout = %v, want 1m", got.PageLoadTimeout)
		}
		if got.UserAgent != cfg.Browser.UserAgent {
			t.Errorf("UserAgent = %q, want %q", got.UserAgent, cfg.Browser.UserAgent)
		}
	})
}
