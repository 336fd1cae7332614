package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/LouYuanbo1/tenderparser/internal/domain/entity"
	"github.com/LouYuanbo1/tenderparser/internal/infra/persistence"

	_ "modernc.org/sqlite" // SQLite driver
)

const createTenders = `CREATE TABLE IF NOT EXISTS tenders (
	id TEXT,
	number TEXT,
	title TEXT,
	link TEXT,
	company TEXT,
	price TEXT,
	date TEXT,
	region TEXT
)`

const insertTender = `INSERT INTO tenders (id, number, title, link, company, price, date, region)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

type sqliteWriter struct {
	path   string
	logger *slog.Logger
}

// InitSqliteWriter 追加写入tenders表, 不做去重
func InitSqliteWriter(path string, logger *slog.Logger) persistence.Writer {
	return &sqliteWriter{path: path, logger: logger}
}

func (w *sqliteWriter) Target() string {
	return w.path
}

func (w *sqliteWriter) Write(ctx context.Context, records []entity.Tender) (err error) {
	if len(records) == 0 {
		w.logger.Warn("no records to write, database not touched", slog.String("path", w.path))
		return nil
	}

	db, err := sql.Open("sqlite", w.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	defer func() {
		if cerr := db.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close database: %w", cerr))
		}
	}()

	if _, err := db.ExecContext(ctx, createTenders); err != nil {
		return fmt.Errorf("failed to create tenders table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertTender)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.ID, r.Number, r.Title, r.Link, r.Company, r.Price, r.Date, r.Region); err != nil {
			return fmt.Errorf("failed to insert tender %s: %w", r.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tenders: %w", err)
	}

	w.logger.Info("sqlite written", slog.String("path", w.path), slog.Int("records", len(records)))
	return nil
}
