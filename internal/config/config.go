package config

import (
	"net/http/cookiejar"
	"time"
)

type Config struct {
	Site struct {
		BaseURL     string `json:"base_url" yaml:"base_url"`
		ListingPath string `json:"listing_path" yaml:"listing_path"`
	} `json:"site" yaml:"site"`

	Browser struct {
		Engine               string   `json:"engine" yaml:"engine"`
		Bin                  string   `json:"bin" yaml:"bin"`
		Headless             bool     `json:"headless" yaml:"headless"`
		WindowWidth          int      `json:"window_width" yaml:"window_width"`
		WindowHeight         int      `json:"window_height" yaml:"window_height"`
		DisableBlinkFeatures string   `json:"disable_blink_features" yaml:"disable_blink_features"`
		DisableDevShmUsage   bool     `json:"disable_dev_shm_usage" yaml:"disable_dev_shm_usage"`
		NoSandbox            bool     `json:"no_sandbox" yaml:"no_sandbox"`
		UserAgent            string   `json:"user_agent" yaml:"user_agent"`
		Leakless             bool     `json:"leakless" yaml:"leakless"`
		ExtraFlags           []string `json:"extra_flags" yaml:"extra_flags"`
		PageLoadTimeout      Duration `json:"page_load_timeout" yaml:"page_load_timeout"`
		ScriptTimeout        Duration `json:"script_timeout" yaml:"script_timeout"`
		ReadyTimeout         Duration `json:"ready_timeout" yaml:"ready_timeout"`
	} `json:"browser" yaml:"browser"`

	Session struct {
		MaxAttempts int      `json:"max_attempts" yaml:"max_attempts"`
		RetryDelay  Duration `json:"retry_delay" yaml:"retry_delay"`
		MaxRestarts int      `json:"max_restarts" yaml:"max_restarts"`
	} `json:"session" yaml:"session"`

	Harvest struct {
		MaxTenders         int      `json:"max_tenders" yaml:"max_tenders"`
		TimeBudget         Duration `json:"time_budget" yaml:"time_budget"`
		MaxEmptyPages      int      `json:"max_empty_pages" yaml:"max_empty_pages"`
		ScrollTimes        int      `json:"scroll_times" yaml:"scroll_times"`
		ScrollPause        Duration `json:"scroll_pause" yaml:"scroll_pause"`
		MinPageDelay       Duration `json:"min_page_delay" yaml:"min_page_delay"`
		MaxPageDelay       Duration `json:"max_page_delay" yaml:"max_page_delay"`
		NoResultsMarker    string   `json:"no_results_marker" yaml:"no_results_marker"`
		CardSelector       string   `json:"card_selector" yaml:"card_selector"`
		NextPageLabel      string   `json:"next_page_label" yaml:"next_page_label"`
		NextPageArrowLabel string   `json:"next_page_arrow_label" yaml:"next_page_arrow_label"`
	} `json:"harvest" yaml:"harvest"`

	Colly struct {
		IgnoreRobotsTxt  bool               `json:"ignore_robots_txt" yaml:"ignore_robots_txt"`
		EnableCookieJar  bool               `json:"enable_cookie_jar" yaml:"enable_cookie_jar"`
		CookieJarOptions *cookiejar.Options `json:"-" yaml:"-"`
	} `json:"colly" yaml:"colly"`

	Elasticsearch struct {
		Username string `json:"username" yaml:"username"`
		Password string `json:"password" yaml:"password"`
		Address  string `json:"address" yaml:"address"`
	} `json:"elasticsearch" yaml:"elasticsearch"`

	Log struct {
		File    string `json:"file" yaml:"file"`
		Verbose bool   `json:"verbose" yaml:"verbose"`
	} `json:"log" yaml:"log"`
}

// Duration 以"4m"/"1.5s"形式出现在配置文件中
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
