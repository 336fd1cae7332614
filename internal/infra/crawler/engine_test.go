package crawler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LouYuanbo1/tenderparser/internal/config"
	"github.com/LouYuanbo1/tenderparser/internal/infra/crawler/chrome"
	"github.com/stretchr/testify/require"
)

func TestNewLauncher(t *testing.T) {
	t.Parallel()

	for _, engine := range []string{config.EngineRod, config.EngineChromedp, config.EngineStatic} {
		cfg := config.Default()
		cfg.Browser.Engine = engine
		l, err := NewLauncher(cfg)
		require.NoError(t, err, engine)
		require.NotNil(t, l, engine)
	}

	cfg := config.Default()
	cfg.Browser.Engine = "selenium"
	_, err := NewLauncher(cfg)
	require.ErrorIs(t, err, config.ErrInvalidEngine)
}

func TestStaticSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><body><p>ok</p></body></html>`))
	}))
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Browser.Engine = config.EngineStatic
	launch, err := NewLauncher(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	s, err := launch(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.HTML(ctx)
	require.ErrorIs(t, err, chrome.ErrNoContent)

	require.NoError(t, s.Navigate(ctx, srv.URL+"/page"))
	require.NoError(t, s.WaitReady(ctx, 0))
	html, err := s.HTML(ctx)
	require.NoError(t, err)
	require.Contains(t, html, "<p>ok</p>")

	// 同一URL可以重复访问
	require.NoError(t, s.Navigate(ctx, srv.URL+"/page"))

	err = s.Navigate(ctx, srv.URL+"/missing")
	require.Error(t, err)
	_, err = s.HTML(ctx)
	require.True(t, errors.Is(err, chrome.ErrNoContent))
}
