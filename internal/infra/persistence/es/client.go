package es

import (
	"context"

	"github.com/LouYuanbo1/tenderparser/internal/domain/model"
)

// TypedEsClient 所有文档结构体都要实现model.Document
type TypedEsClient[D model.Document] interface {
	// Index 目标索引名称
	Index() string
	// Address 集群地址
	Address() string
	CreateIndexWithMapping(ctx context.Context) error
	BulkIndexDocsWithID(ctx context.Context, docs []D) (*BulkStats, error)
	CountDocs(ctx context.Context) (int64, error)
}

type BulkStats struct {
	Indexed uint64
	Failed  uint64
}
