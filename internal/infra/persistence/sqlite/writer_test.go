package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/LouYuanbo1/tenderparser/internal/domain/entity"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var records = []entity.Tender{
	{ID: "111222", Number: "№ 111222", Title: "Ремонт кровли", Link: "https://rostender.info/t/111222-remont",
		Company: "МУП Водоканал", Price: "2 500 000 ₽", Date: "до 05.11.2026", Region: "Тула"},
	{ID: "333444", Number: "№ 333444", Title: "Поставка угля", Link: "https://rostender.info/t/333444-ugol",
		Company: entity.MissingCompany, Price: entity.MissingPrice, Date: entity.MissingDate, Region: entity.MissingRegion},
}

func readAll(t *testing.T, path string) []entity.Tender {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT id, number, title, link, company, price, date, region FROM tenders ORDER BY rowid`)
	require.NoError(t, err)
	defer rows.Close()

	var out []entity.Tender
	for rows.Next() {
		var r entity.Tender
		require.NoError(t, rows.Scan(&r.ID, &r.Number, &r.Title, &r.Link, &r.Company, &r.Price, &r.Date, &r.Region))
		out = append(out, r)
	}
	require.NoError(t, rows.Err())
	return out
}

func TestWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tenders.db")
	w := InitSqliteWriter(path, slog.New(slog.DiscardHandler))
	require.NoError(t, w.Write(context.Background(), records))

	if diff := cmp.Diff(records, readAll(t, path)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tenders.db")
	w := InitSqliteWriter(path, slog.New(slog.DiscardHandler))
	require.NoError(t, w.Write(context.Background(), records))
	require.NoError(t, w.Write(context.Background(), records[:1]))

	got := readAll(t, path)
	require.Len(t, got, 3)
	require.Equal(t, records[0], got[2])
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tenders.db")
	w := InitSqliteWriter(path, slog.New(slog.DiscardHandler))
	require.NoError(t, w.Write(context.Background(), []entity.Tender{}))

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
