package es

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/LouYuanbo1/tenderparser/internal/domain/entity"
	"github.com/LouYuanbo1/tenderparser/internal/domain/model"
	"github.com/LouYuanbo1/tenderparser/internal/infra/persistence"
)

type esWriter struct {
	client TypedEsClient[*model.TenderDoc]
	logger *slog.Logger
}

// InitEsWriter 以记录id作为文档_id写入, 重复运行覆盖同一文档
func InitEsWriter(client TypedEsClient[*model.TenderDoc], logger *slog.Logger) persistence.Writer {
	return &esWriter{client: client, logger: logger}
}

func (w *esWriter) Target() string {
	return strings.TrimRight(w.client.Address(), "/") + "/" + w.client.Index()
}

func (w *esWriter) Write(ctx context.Context, records []entity.Tender) error {
	if len(records) == 0 {
		w.logger.Warn("no records to write, index not touched", slog.String("target", w.Target()))
		return nil
	}
	if err := w.client.CreateIndexWithMapping(ctx); err != nil {
		return err
	}
	if _, err := w.client.BulkIndexDocsWithID(ctx, ToDocuments[entity.Tender, *model.TenderDoc](records)); err != nil {
		return fmt.Errorf("failed to write tenders to es: %w", err)
	}
	if total, err := w.client.CountDocs(ctx); err != nil {
		w.logger.Warn("failed to count documents", slog.Any("error", err))
	} else {
		w.logger.Info("tenders written to es", slog.String("target", w.Target()), slog.Int64("total", total))
	}
	return nil
}

// ToDocuments 将爬取结果转换为可写入索引的文档
func ToDocuments[C entity.Crawlable[D], D model.Document](items []C) []D {
	docs := make([]D, 0, len(items))
	for _, item := range items {
		docs = append(docs, item.ToDocument())
	}
	return docs
}
