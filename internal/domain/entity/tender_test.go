package entity

import (
	"testing"

	"github.com/LouYuanbo1/tenderparser/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestIDFromLink(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"https://rostender.info/region/moskva/87654321-postavka-bumagi": "87654321",
		"https://rostender.info/tender/111222":                          "111222",
		"https://rostender.info/tender/333444-x?utm=1#top":              "333444",
		"/tender/555-a-b-c": "555",
		"#":                 MissingID,
		"":                  MissingID,
	}
	for link, want := range tests {
		require.Equal(t, want, IDFromLink(link), link)
	}
}

func TestToDocument(t *testing.T) {
	t.Parallel()

	tender := Tender{ID: "1", Number: "№ 1", Title: "Ремонт", Link: "https://rostender.info/t/1-r",
		Company: "ООО", Price: "10 ₽", Date: "N/A", Region: "Тула"}
	doc := tender.ToDocument()

	require.Equal(t, "1", doc.GetID())
	require.Equal(t, model.TenderIndex, doc.GetIndex())
	require.Equal(t, tender.Title, doc.Title)
	require.False(t, doc.CollectedAt.IsZero())
	require.Len(t, tender.Row(), len(Columns))
	require.Contains(t, doc.GetTypeMapping().Properties, "collected_at")
}
