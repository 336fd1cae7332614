package entity

import (
	"net/url"
	"strings"
	"time"

	"github.com/LouYuanbo1/tenderparser/internal/domain/model"
)

// 卡片字段缺失时使用的占位值,与站点原文保持一致
const (
	MissingNumber  = "N/A"
	MissingTitle   = "Без названия"
	MissingLink    = "#"
	MissingID      = "N/A"
	MissingCompany = "Компания не указана"
	MissingPrice   = "Цена не указана"
	MissingDate    = "N/A"
	MissingRegion  = "Регион не указан"
)

// Columns 输出列顺序,CSV和SQLite共用
var Columns = []string{"id", "number", "title", "link", "company", "price", "date", "region"}

// Tender 列表页中的一条招标记录,创建后不再修改
type Tender struct {
	ID      string `json:"id"`
	Number  string `json:"number"`
	Title   string `json:"title"`
	Link    string `json:"link"`
	Company string `json:"company"`
	Price   string `json:"price"`
	Date    string `json:"date"`
	Region  string `json:"region"`
}

var _ Crawlable[*model.TenderDoc] = Tender{}

// Row 按Columns顺序返回字段值
func (t Tender) Row() []string {
	return []string{t.ID, t.Number, t.Title, t.Link, t.Company, t.Price, t.Date, t.Region}
}

func (t Tender) ToDocument() *model.TenderDoc {
	return &model.TenderDoc{
		ID:          t.ID,
		Number:      t.Number,
		Title:       t.Title,
		Link:        t.Link,
		Company:     t.Company,
		Price:       t.Price,
		Date:        t.Date,
		Region:      t.Region,
		CollectedAt: time.Now().UTC(),
	}
}

// IDFromLink 取链接路径最后一段中第一个'-'之前的部分,
// 例如 https://rostender.info/region/moskva/87654321-postavka -> 87654321
func IDFromLink(link string) string {
	if link == "" || link == MissingLink {
		return MissingID
	}
	path := link
	if u, err := url.Parse(link); err == nil {
		path = u.Path
	}
	last := path[strings.LastIndex(path, "/")+1:]
	id, _, _ := strings.Cut(last, "-")
	return id
}
