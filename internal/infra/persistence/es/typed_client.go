package es

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/LouYuanbo1/tenderparser/internal/config"
	"github.com/LouYuanbo1/tenderparser/internal/domain/model"
	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esutil"
)

// ErrBulkFailed 部分文档未能写入
var ErrBulkFailed = errors.New("bulk indexing failed")

type typedEsClient[D model.Document] struct {
	client  *elasticsearch.TypedClient
	address string
	index   string
	logger  *slog.Logger
	// 仅用于获取索引名和mapping, 不存储数据
	schemaDoc D
}

// InitTypedEsClient index为空时使用文档类型默认的索引
func InitTypedEsClient[D model.Document](cfg *config.Config, index string, logger *slog.Logger) (TypedEsClient[D], error) {
	typedClient, err := elasticsearch.NewTypedClient(elasticsearch.Config{
		Username: cfg.Elasticsearch.Username,
		Password: cfg.Elasticsearch.Password,
		Addresses: []string{
			cfg.Elasticsearch.Address,
		},
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       90 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Elasticsearch client: %w", err)
	}
	tec := &typedEsClient[D]{
		client:  typedClient,
		address: cfg.Elasticsearch.Address,
		index:   index,
		logger:  logger,
	}
	if tec.index == "" {
		tec.index = tec.schemaDoc.GetIndex()
	}
	return tec, nil
}

func (tec *typedEsClient[D]) Index() string {
	return tec.index
}

func (tec *typedEsClient[D]) Address() string {
	return tec.address
}

func (tec *typedEsClient[D]) CreateIndexWithMapping(ctx context.Context) error {
	exists, err := tec.client.Indices.Exists(tec.index).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check index existence in es: %w", err)
	}
	if exists {
		tec.logger.Info("index already exists, skip create", slog.String("index", tec.index))
		return nil
	}

	mapping := tec.schemaDoc.GetTypeMapping()
	if mapping == nil {
		_, err = tec.client.Indices.Create(tec.index).Do(ctx)
	} else {
		_, err = tec.client.Indices.Create(tec.index).Mappings(mapping).Do(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to create index in es: %w", err)
	}
	tec.logger.Info("index created", slog.String("index", tec.index))
	return nil
}

func (tec *typedEsClient[D]) BulkIndexDocsWithID(ctx context.Context, docs []D) (*BulkStats, error) {
	if len(docs) == 0 {
		return &BulkStats{}, nil
	}
	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         tec.index,
		Client:        tec.client,
		NumWorkers:    2,
		FlushBytes:    5 * 1024 * 1024,
		FlushInterval: 30 * time.Second,
		OnError: func(ctx context.Context, err error) {
			tec.logger.Error("bulk indexer error", slog.Any("error", err))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("failed to marshal document %s: %w", doc.GetID(), err), bi.Close(ctx))
		}
		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.GetID(),
			Body:       bytes.NewReader(data),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				if err != nil {
					tec.logger.Error("failed to index document", slog.String("id", item.DocumentID), slog.Any("error", err))
				} else {
					tec.logger.Error("failed to index document", slog.String("id", item.DocumentID), slog.String("reason", res.Error.Reason))
				}
			},
		})
		if err != nil {
			return nil, errors.Join(fmt.Errorf("failed to add document %s: %w", doc.GetID(), err), bi.Close(ctx))
		}
	}

	// 刷新并关闭批量索引器, 确保所有文档都被处理
	if err := bi.Close(ctx); err != nil {
		return nil, fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	stats := bi.Stats()
	out := &BulkStats{Indexed: stats.NumIndexed, Failed: stats.NumFailed}
	tec.logger.Info("bulk indexing completed",
		slog.String("index", tec.index),
		slog.Uint64("indexed", out.Indexed),
		slog.Uint64("failed", out.Failed),
	)
	if out.Failed > 0 {
		return out, fmt.Errorf("%w: %d of %d documents", ErrBulkFailed, out.Failed, len(docs))
	}
	return out, nil
}

func (tec *typedEsClient[D]) CountDocs(ctx context.Context) (int64, error) {
	resp, err := tec.client.Count().Index(tec.index).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count docs in es: %w", err)
	}
	return resp.Count, nil
}
