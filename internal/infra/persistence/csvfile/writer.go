package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/LouYuanbo1/tenderparser/internal/domain/entity"
	"github.com/LouYuanbo1/tenderparser/internal/infra/persistence"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type csvWriter struct {
	path   string
	logger *slog.Logger
}

// InitCsvWriter 以带BOM的UTF-8写出, 方便Excel直接打开西里尔字符
func InitCsvWriter(path string, logger *slog.Logger) persistence.Writer {
	return &csvWriter{path: path, logger: logger}
}

func (w *csvWriter) Target() string {
	return w.path
}

func (w *csvWriter) Write(ctx context.Context, records []entity.Tender) (err error) {
	if len(records) == 0 {
		w.logger.Warn("no records to write, csv file not created", slog.String("path", w.path))
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close csv file: %w", cerr))
		}
	}()

	bom := transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(bom)
	if err := cw.Write(entity.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("failed to write csv row %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	if err := bom.Close(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	w.logger.Info("csv written", slog.String("path", w.path), slog.Int("records", len(records)))
	return nil
}
