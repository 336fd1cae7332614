package harvest

import "testing"

func TestFindNextPage(t *testing.T) {
	t.Parallel()

	locators := nextPageLocators("Следующая", "›")
	tests := []struct {
		name      string
		html      string
		wantFound bool
		wantName  string
	}{
		{
			name:      "aria label",
			html:      nextButton,
			wantFound: true,
			wantName:  `a[aria-label="Next page"]`,
		},
		{
			name:      "rel next",
			html:      `<a rel="next" href="?page=3">дальше</a>`,
			wantFound: true,
			wantName:  `a[rel="next"]`,
		},
		{
			name:      "page item skips disabled items",
			html:      `<ul><li class="page-item disabled"><a class="page-link">1</a></li><li class="page-item"><a class="page-link" href="?page=2">2</a></li></ul>`,
			wantFound: true,
			wantName:  `li.page-item:not(.disabled) a.page-link`,
		},
		{
			name:      "text label",
			html:      `<a class="page-link" href="?page=2">Следующая страница</a>`,
			wantFound: true,
			wantName:  `a.page-link:contains("Следующая")`,
		},
		{
			name:      "arrow",
			html:      `<a class="page-link" href="?page=2">›</a>`,
			wantFound: true,
			wantName:  `a.page-link:contains("›")`,
		},
		{
			name: "disabled class",
			html: `<a class="page-link disabled" aria-label="Next page">›</a>`,
		},
		{
			name: "aria disabled",
			html: `<a rel="next" aria-disabled="true">›</a>`,
		},
		{
			name: "hidden ancestor",
			html: `<nav style="display: none"><a rel="next" href="?page=2">›</a></nav>`,
		},
		{
			name: "hidden attribute",
			html: `<a aria-label="Next page" hidden>›</a>`,
		},
		{
			name: "aria hidden",
			html: `<div aria-hidden="true"><a rel="next">›</a></div>`,
		},
		{
			name:      "falls through to next strategy",
			html:      `<a aria-label="Next page" style="visibility:hidden">›</a><a rel="next" href="?page=2">›</a>`,
			wantFound: true,
			wantName:  `a[rel="next"]`,
		},
		{
			name: "no pagination",
			html: `<p>конец</p>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := parse(t, "<html><body>"+tt.html+"</body></html>")
			name, found := findNextPage(doc, locators)
			if found != tt.wantFound || name != tt.wantName {
				t.Errorf("findNextPage() = (%q, %v), want (%q, %v)", name, found, tt.wantName, tt.wantFound)
			}
		})
	}
}

func TestHiddenByStyle(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"":                             false,
		"color: red":                   false,
		"display:none":                 true,
		"DISPLAY: None !important;":    true,
		"margin: 0; visibility:hidden": true,
		"visibility: visible":          false,
		"display: block":               false,
	}
	for style, want := range tests {
		if got := hiddenByStyle(style); got != want {
			t.Errorf("hiddenByStyle(%q) = %v, want %v", style, got, want)
		}
	}
}
