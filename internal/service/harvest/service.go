package harvest

import (
	"context"
	"time"

	"github.com/LouYuanbo1/tenderparser/internal/domain/entity"
)

type Harvester interface {
	// Run 逐页采集直到达到上限或预算耗尽.
	// 返回的Result永远不为nil, 即使err != nil
	Run(ctx context.Context) (*Result, error)
}

type StopReason string

const (
	StopCapReached       StopReason = "cap_reached"
	StopEmptyPages       StopReason = "empty_pages"
	StopTimeBudget       StopReason = "time_budget"
	StopNoNextAtCap      StopReason = "no_next_at_cap"
	StopCritical         StopReason = "critical"
	StopNothingRequested StopReason = "nothing_requested"
)

type Result struct {
	Records  []entity.Tender
	Pages    int
	Restarts int
	Stop     StopReason
	Elapsed  time.Duration
}
