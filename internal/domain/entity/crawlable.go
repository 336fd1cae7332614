package entity

import (
	"github.com/LouYuanbo1/tenderparser/internal/domain/model"
)

// 定义可爬取的实体接口
// D是文档类型,必须实现model.Document接口
type Crawlable[D model.Document] interface {
	ToDocument() D
}
