package harvest

import (
	"net/url"
	"strings"
	"testing"

	"github.com/LouYuanbo1/tenderparser/internal/domain/entity"
	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractTender(t *testing.T) {
	t.Parallel()

	base, err := url.Parse(testBase)
	require.NoError(t, err)

	tests := []struct {
		name string
		html string
		want entity.Tender
	}{
		{
			name: "all fields",
			html: card("87654321", "Поставка бумаги"),
			want: tender(testBase, "87654321", "Поставка бумаги"),
		},
		{
			name: "no fields",
			html: `<article class="tender-row"></article>`,
			want: entity.Tender{
				ID:      entity.MissingID,
				Number:  entity.MissingNumber,
				Title:   entity.MissingTitle,
				Link:    entity.MissingLink,
				Company: entity.MissingCompany,
				Price:   entity.MissingPrice,
				Date:    entity.MissingDate,
				Region:  entity.MissingRegion,
			},
		},
		{
			name: "title without href",
			html: `<article class="tender-row"><a class="tender-info__description">Ремонт</a><div class="tender-address">Тула</div></article>`,
			want: entity.Tender{
				ID:      entity.MissingID,
				Number:  entity.MissingNumber,
				Title:   "Ремонт",
				Link:    entity.MissingLink,
				Company: entity.MissingCompany,
				Price:   entity.MissingPrice,
				Date:    entity.MissingDate,
				Region:  "Тула",
			},
		},
		{
			name: "absolute link and empty element",
			html: `<article class="tender-row">
				<a class="tender-info__description" href="https://mirror.example/t/555-x">Уборка</a>
				<div class="starting-price__price">   </div>
			</article>`,
			want: entity.Tender{
				ID:      "555",
				Number:  entity.MissingNumber,
				Title:   "Уборка",
				Link:    "https://mirror.example/t/555-x",
				Company: entity.MissingCompany,
				Price:   "",
				Date:    entity.MissingDate,
				Region:  entity.MissingRegion,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := parse(t, "<html><body>"+tt.html+"</body></html>")
			got := extractTender(doc.Find("article.tender-row").First(), base)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("extractTender() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHasNoResultsMarker(t *testing.T) {
	t.Parallel()

	const marker = "Не найдено ни одного тендера"
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"marker div", noResultsPage, true},
		{"nested marker div", `<div class="outer"><div>  Не найдено ни одного тендера по запросу </div></div>`, true},
		{"marker in span only", `<div><span>Не найдено ни одного тендера</span></div>`, false},
		{"listing", listing(true, card("1", "a")), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, hasNoResultsMarker(parse(t, tt.html), marker))
		})
	}
}
