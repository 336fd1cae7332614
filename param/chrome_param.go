package param

import "time"

// Scroll 页面加载后的滚动选项, 用于触发懒加载的卡片
type Scroll struct {
	ScrollTimes int           `json:"scroll_times"`
	Pause       time.Duration `json:"pause"`
}
