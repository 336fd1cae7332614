package param

import (
	"testing"
	"time"

	"github.com/LouYuanbo1/tenderparser/internal/config"
	"github.com/stretchr/testify/require"
)

func TestHarvestFromConfig(t *testing.T) {
	t.Parallel()

	h := HarvestFromConfig(config.Default())
	require.Equal(t, 100, h.MaxTenders)
	require.Equal(t, 30*time.Minute, h.TimeBudget)
	require.Equal(t, 3, h.MaxEmptyPages)
	require.Equal(t, Scroll{ScrollTimes: 3, Pause: 1500 * time.Millisecond}, h.Scroll)
	require.Equal(t, 15*time.Second, h.MinPageDelay)
	require.Equal(t, 30*time.Second, h.MaxPageDelay)
	require.Equal(t, "article.tender-row", h.CardSelector)
}

func TestPageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		path string
		page int
		want string
	}{
		{"default", "https://rostender.info", "/extsearch", 1, "https://rostender.info/extsearch?page=1"},
		{"trailing slash", "https://rostender.info/", "extsearch", 12, "https://rostender.info/extsearch?page=12"},
		{"test server", "http://127.0.0.1:8080", "/list", 3, "http://127.0.0.1:8080/list?page=3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := &Harvest{BaseURL: tt.base, ListingPath: tt.path}
			require.Equal(t, tt.want, h.PageURL(tt.page))
		})
	}
}

func TestSessionFromConfig(t *testing.T) {
	t.Parallel()

	s := SessionFromConfig(config.Default())
	require.Equal(t, &Session{
		MaxAttempts:  3,
		RetryDelay:   20 * time.Second,
		ReadyTimeout: 30 * time.Second,
		MaxRestarts:  5,
	}, s)
}
