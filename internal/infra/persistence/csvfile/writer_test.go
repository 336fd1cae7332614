package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/LouYuanbo1/tenderparser/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

var records = []entity.Tender{
	{ID: "87654321", Number: "№ 87654321", Title: "Поставка бумаги, \"А4\"", Link: "https://rostender.info/region/moskva/87654321-postavka",
		Company: "ООО Ромашка", Price: "1 000 ₽", Date: "до 01.11.2026", Region: "Москва"},
	{ID: entity.MissingID, Number: entity.MissingNumber, Title: entity.MissingTitle, Link: entity.MissingLink,
		Company: entity.MissingCompany, Price: entity.MissingPrice, Date: entity.MissingDate, Region: entity.MissingRegion},
}

func TestWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tenders.csv")
	w := InitCsvWriter(path, slog.New(slog.DiscardHandler))
	require.Equal(t, path, w.Target())
	require.NoError(t, w.Write(context.Background(), records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "missing UTF-8 BOM")

	rows, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, entity.Columns, rows[0])
	require.Equal(t, records[0].Row(), rows[1])
	require.Equal(t, records[1].Row(), rows[2])
}

func TestWriteIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tenders.csv")
	w := InitCsvWriter(path, slog.New(slog.DiscardHandler))

	require.NoError(t, w.Write(context.Background(), records))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(context.Background(), records))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tenders.csv")
	w := InitCsvWriter(path, slog.New(slog.DiscardHandler))
	require.NoError(t, w.Write(context.Background(), nil))

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
