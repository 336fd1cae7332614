package param

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/LouYuanbo1/tenderparser/internal/config"
)

// Harvest 一次列表采集的选项
type Harvest struct {
	BaseURL            string        `json:"base_url"`
	ListingPath        string        `json:"listing_path"`
	MaxTenders         int           `json:"max_tenders"`
	TimeBudget         time.Duration `json:"time_budget"`
	MaxEmptyPages      int           `json:"max_empty_pages"`
	Scroll             Scroll        `json:"scroll"`
	MinPageDelay       time.Duration `json:"min_page_delay"`
	MaxPageDelay       time.Duration `json:"max_page_delay"`
	NoResultsMarker    string        `json:"no_results_marker"`
	CardSelector       string        `json:"card_selector"`
	NextPageLabel      string        `json:"next_page_label"`
	NextPageArrowLabel string        `json:"next_page_arrow_label"`
}

func HarvestFromConfig(cfg *config.Config) *Harvest {
	h := cfg.Harvest
	return &Harvest{
		BaseURL:       cfg.Site.BaseURL,
		ListingPath:   cfg.Site.ListingPath,
		MaxTenders:    h.MaxTenders,
		TimeBudget:    h.TimeBudget.Std(),
		MaxEmptyPages: h.MaxEmptyPages,
		Scroll: Scroll{
			ScrollTimes: h.ScrollTimes,
			Pause:       h.ScrollPause.Std(),
		},
		MinPageDelay:       h.MinPageDelay.Std(),
		MaxPageDelay:       h.MaxPageDelay.Std(),
		NoResultsMarker:    h.NoResultsMarker,
		CardSelector:       h.CardSelector,
		NextPageLabel:      h.NextPageLabel,
		NextPageArrowLabel: h.NextPageArrowLabel,
	}
}

// PageURL 返回第n页列表地址, 例如 https://rostender.info/extsearch?page=2
func (h *Harvest) PageURL(n int) string {
	base := strings.TrimRight(h.BaseURL, "/")
	path := "/" + strings.TrimLeft(h.ListingPath, "/")
	return base + path + "?" + url.Values{"page": {strconv.Itoa(n)}}.Encode()
}
