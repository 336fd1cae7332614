package model

import (
	"time"

	"github.com/elastic/go-elasticsearch/v9/typedapi/types"
)

type Document interface {
	GetID() string
	GetIndex() string
	GetTypeMapping() *types.TypeMapping
}

// TenderDoc 写入Elasticsearch的招标文档
type TenderDoc struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Company     string    `json:"company"`
	Price       string    `json:"price"`
	Date        string    `json:"date"`
	Region      string    `json:"region"`
	CollectedAt time.Time `json:"collected_at"`
}

const TenderIndex = "tenders"

func (d *TenderDoc) GetID() string {
	return d.ID
}

func (d *TenderDoc) GetIndex() string {
	return TenderIndex
}

// GetTypeMapping 展示字段原样保存为keyword,标题/单位/地区额外支持全文检索
func (d *TenderDoc) GetTypeMapping() *types.TypeMapping {
	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"id":           types.NewKeywordProperty(),
			"number":       types.NewKeywordProperty(),
			"title":        types.NewTextProperty(),
			"link":         types.NewKeywordProperty(),
			"company":      types.NewTextProperty(),
			"price":        types.NewKeywordProperty(),
			"date":         types.NewKeywordProperty(),
			"region":       types.NewTextProperty(),
			"collected_at": types.NewDateProperty(),
		},
	}
}
