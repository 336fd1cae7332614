package harvest

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"strings"
	"time"

	"github.com/LouYuanbo1/tenderparser/internal/domain/entity"
	"github.com/LouYuanbo1/tenderparser/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/tenderparser/internal/service/session"
	"github.com/LouYuanbo1/tenderparser/param"
	"github.com/PuerkitoBio/goquery"
)

type harvester struct {
	manager  session.Manager
	params   *param.Harvest
	logger   *slog.Logger
	sleep    session.Sleeper
	now      func() time.Time
	rand     *rand.Rand
	base     *url.URL
	locators []locator
	// extractCard 单张卡片的字段提取
	extractCard func(card *goquery.Selection, base *url.URL) entity.Tender
}

type HarvesterOption func(*harvester)

func WithSleeper(sleep session.Sleeper) HarvesterOption {
	return func(h *harvester) { h.sleep = sleep }
}

func WithClock(now func() time.Time) HarvesterOption {
	return func(h *harvester) { h.now = now }
}

func WithRand(r *rand.Rand) HarvesterOption {
	return func(h *harvester) { h.rand = r }
}

func InitHarvester(manager session.Manager, params *param.Harvest, logger *slog.Logger, opts ...HarvesterOption) Harvester {
	h := &harvester{
		manager:  manager,
		params:   params,
		logger:   logger,
		sleep:    session.SleepContext,
		now:      time.Now,
		rand:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		locators: nextPageLocators(params.NextPageLabel, params.NextPageArrowLabel),

		extractCard: extractTender,
	}
	if base, err := url.Parse(params.BaseURL); err == nil {
		h.base = base
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// pageOutcome 单页处理结果
type pageOutcome int

const (
	pageEmpty pageOutcome = iota
	pageCards
)

func (h *harvester) Run(ctx context.Context) (res *Result, err error) {
	start := h.now()
	res = &Result{}

	maxTenders := h.params.MaxTenders
	if maxTenders <= 0 {
		res.Stop = StopNothingRequested
		h.logger.Info("未请求任何记录, 跳过采集", slog.Int("max_tenders", maxTenders))
		return res, nil
	}

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("采集过程中出现严重错误", slog.Any("panic", r))
			res.Stop = StopCritical
			err = fmt.Errorf("%w: %v", ErrCritical, r)
		}
		h.manager.Close()
		res.Restarts = h.manager.Restarts()
		res.Elapsed = h.now().Sub(start)
		h.logger.Info("采集结束",
			slog.String("stop", string(res.Stop)),
			slog.Int("records", len(res.Records)),
			slog.Int("pages", res.Pages),
			slog.Int("restarts", res.Restarts),
			slog.Duration("elapsed", res.Elapsed),
		)
	}()

	if _, err := h.manager.Create(ctx); err != nil {
		res.Stop = StopCritical
		return res, fmt.Errorf("%w: %w", ErrCritical, err)
	}

	seen := make(map[string]struct{})
	emptyPages := 0
	page := 1
	for {
		switch {
		case len(res.Records) >= maxTenders:
			res.Stop = StopCapReached
			return res, nil
		case emptyPages >= h.params.MaxEmptyPages:
			h.logger.Warn("连续空页过多, 停止采集", slog.Int("empty_pages", emptyPages))
			res.Stop = StopEmptyPages
			return res, nil
		case h.now().Sub(start) > h.params.TimeBudget:
			h.logger.Warn("超出总时间预算, 停止采集", slog.Duration("budget", h.params.TimeBudget))
			res.Stop = StopTimeBudget
			return res, nil
		}
		if err := ctx.Err(); err != nil {
			res.Stop = StopCritical
			return res, fmt.Errorf("%w: %w", ErrCritical, err)
		}

		res.Pages++
		pageURL := h.params.PageURL(page)
		h.logger.Info("处理列表页", slog.Int("page", page), slog.String("url", pageURL))

		doc, outcome := h.loadPage(ctx, page, pageURL)
		if outcome == pageEmpty {
			emptyPages++
			page++
			continue
		}
		emptyPages = 0
		h.collect(doc.Find(h.params.CardSelector), res, seen)

		name, found := findNextPage(doc, h.locators)
		if !found {
			h.logger.Info("未找到下一页按钮")
			if len(res.Records) < maxTenders {
				h.logger.Info("尝试直接访问下一页", slog.Int("page", page+1))
				page++
				continue
			}
			res.Stop = StopNoNextAtCap
			return res, nil
		}
		h.logger.Debug("找到下一页按钮", slog.String("locator", name))

		page++
		if len(res.Records) >= maxTenders {
			continue
		}
		delay := h.pageDelay()
		h.logger.Info("翻页前等待", slog.Duration("delay", delay))
		if err := h.sleep(ctx, delay); err != nil {
			h.logger.Warn("等待被中断", slog.Any("error", err))
		}
	}
}

// loadPage 导航, 滚动并解析一页. 返回pageEmpty时该页计为空页
func (h *harvester) loadPage(ctx context.Context, n int, pageURL string) (*goquery.Document, pageOutcome) {
	nav := h.manager.Navigate(ctx, pageURL)
	if nav.Status != session.NavOK {
		h.logger.Warn("页面加载失败, 计为空页",
			slog.Int("page", n),
			slog.String("status", nav.Status.String()),
			slog.Any("error", nav.Err),
		)
		return nil, pageEmpty
	}

	h.settle(ctx, nav.Page)

	content, err := nav.Page.HTML(ctx)
	if err != nil {
		h.logger.Error("读取页面内容失败", slog.Int("page", n), slog.Any("error", err))
		return nil, pageEmpty
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		h.logger.Error("解析页面失败", slog.Int("page", n), slog.Any("error", fmt.Errorf("%w: %w", ErrParse, err)))
		return nil, pageEmpty
	}

	if hasNoResultsMarker(doc, h.params.NoResultsMarker) {
		h.logger.Info("页面没有招标记录", slog.Int("page", n))
		return nil, pageEmpty
	}
	cards := doc.Find(h.params.CardSelector)
	h.logger.Info("找到卡片", slog.Int("page", n), slog.Int("cards", cards.Length()))
	if cards.Length() == 0 {
		return nil, pageEmpty
	}
	return doc, pageCards
}

// settle 滚动到底部触发懒加载, 页面高度不再变化时停止
func (h *harvester) settle(ctx context.Context, s chrome.Session) {
	last, err := s.ScrollHeight(ctx)
	if err != nil {
		h.logger.Error("滚动失败", slog.Any("error", err))
		return
	}
	if last == 0 {
		return
	}
	for i := 0; i < h.params.Scroll.ScrollTimes; i++ {
		if err := s.ScrollToBottom(ctx); err != nil {
			h.logger.Error("滚动失败", slog.Any("error", err))
			return
		}
		if err := h.sleep(ctx, h.params.Scroll.Pause); err != nil {
			return
		}
		height, err := s.ScrollHeight(ctx)
		if err != nil {
			h.logger.Error("滚动失败", slog.Any("error", err))
			return
		}
		if height == last {
			return
		}
		last = height
	}
}

func (h *harvester) collect(cards *goquery.Selection, res *Result, seen map[string]struct{}) {
	maxTenders := h.params.MaxTenders
	cards.EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if len(res.Records) >= maxTenders {
			return false
		}
		t, ok := h.extract(card)
		if !ok {
			return true
		}
		if _, dup := seen[t.ID]; dup {
			h.logger.Debug("跳过重复记录", slog.String("id", t.ID))
			return true
		}
		seen[t.ID] = struct{}{}
		res.Records = append(res.Records, t)
		h.logger.Info("添加招标记录",
			slog.String("progress", fmt.Sprintf("%d/%d", len(res.Records), maxTenders)),
			slog.String("id", t.ID),
			slog.String("title", truncate(t.Title, 30)),
		)
		return true
	})
}

// extract 卡片内的panic只跳过当前卡片
func (h *harvester) extract(card *goquery.Selection) (t entity.Tender, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("解析卡片失败", slog.Any("panic", r))
			ok = false
		}
	}()
	return h.extractCard(card, h.base), true
}

func (h *harvester) pageDelay() time.Duration {
	lo, hi := h.params.MinPageDelay, h.params.MaxPageDelay
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(h.rand.Int64N(int64(hi-lo)+1))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
