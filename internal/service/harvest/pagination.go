package harvest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// locator 查找"下一页"控件的一种策略, 按顺序尝试, 第一个可用的胜出
type locator struct {
	name string
	find func(doc *goquery.Document) *goquery.Selection
}

func bySelector(selector string) func(doc *goquery.Document) *goquery.Selection {
	return func(doc *goquery.Document) *goquery.Selection {
		return doc.Find(selector)
	}
}

func byText(selector, text string) func(doc *goquery.Document) *goquery.Selection {
	return func(doc *goquery.Document) *goquery.Selection {
		return doc.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
			return text != "" && strings.Contains(s.Text(), text)
		})
	}
}

func nextPageLocators(label, arrowLabel string) []locator {
	return []locator{
		{name: `a[aria-label="Next page"]`, find: bySelector(`a[aria-label="Next page"]`)},
		{name: `a[rel="next"]`, find: bySelector(`a[rel="next"]`)},
		{name: `li.page-item:not(.disabled) a.page-link`, find: bySelector(`li.page-item:not(.disabled) a.page-link`)},
		{name: `a.page-link:contains("` + label + `")`, find: byText("a.page-link", label)},
		{name: `a.page-link:contains("` + arrowLabel + `")`, find: byText("a.page-link", arrowLabel)},
	}
}

// findNextPage 每种策略只检查第一个匹配的元素
func findNextPage(doc *goquery.Document, locators []locator) (string, bool) {
	for _, l := range locators {
		el := l.find(doc).First()
		if el.Length() == 0 {
			continue
		}
		if isVisible(el) && isEnabled(el) {
			return l.name, true
		}
	}
	return "", false
}

// isVisible 仅依据DOM判断: 元素及其祖先都没有被隐藏
func isVisible(el *goquery.Selection) bool {
	for s := el; s.Length() > 0; s = s.Parent() {
		if _, ok := s.Attr("hidden"); ok {
			return false
		}
		if strings.EqualFold(strings.TrimSpace(s.AttrOr("aria-hidden", "")), "true") {
			return false
		}
		if hiddenByStyle(s.AttrOr("style", "")) {
			return false
		}
	}
	return true
}

func hiddenByStyle(style string) bool {
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important")))
		if (prop == "display" && value == "none") || (prop == "visibility" && value == "hidden") {
			return true
		}
	}
	return false
}

func isEnabled(el *goquery.Selection) bool {
	if el.HasClass("disabled") {
		return false
	}
	return !strings.EqualFold(strings.TrimSpace(el.AttrOr("aria-disabled", "")), "true")
}
