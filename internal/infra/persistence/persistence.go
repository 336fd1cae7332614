package persistence

import (
	"context"

	"github.com/LouYuanbo1/tenderparser/internal/domain/entity"
)

// Writer 一次性写出一次运行采集到的全部记录. 空输入不产生任何输出
type Writer interface {
	Write(ctx context.Context, records []entity.Tender) error
	// Target 输出位置, 用于日志和汇总
	Target() string
}
