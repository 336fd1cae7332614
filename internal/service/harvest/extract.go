package harvest

import (
	"net/url"
	"strings"

	"github.com/LouYuanbo1/tenderparser/internal/domain/entity"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	titleSelector   = "a.tender-info__description"
	numberSelector  = "span.tender__number"
	priceSelector   = "div.starting-price__price"
	dateSelector    = "span.tender__countdown-text"
	companySelector = "div.tender-customer-branches a"
	regionSelector  = "div.tender-address"
)

// extractTender 从一张卡片中提取字段, 每个字段独立回退到占位值
func extractTender(card *goquery.Selection, base *url.URL) entity.Tender {
	t := entity.Tender{
		Number:  fieldText(card, numberSelector, entity.MissingNumber),
		Price:   fieldText(card, priceSelector, entity.MissingPrice),
		Date:    fieldText(card, dateSelector, entity.MissingDate),
		Company: fieldText(card, companySelector, entity.MissingCompany),
		Region:  fieldText(card, regionSelector, entity.MissingRegion),
		Title:   entity.MissingTitle,
		Link:    entity.MissingLink,
	}
	if a := card.Find(titleSelector).First(); a.Length() > 0 {
		t.Title = strings.TrimSpace(a.Text())
		if href, ok := a.Attr("href"); ok {
			t.Link = resolveLink(base, href)
		}
	}
	t.ID = entity.IDFromLink(t.Link)
	return t
}

// fieldText 元素存在时返回去掉首尾空白的文本(可能为空), 不存在时返回fallback
func fieldText(card *goquery.Selection, selector, fallback string) string {
	el := card.Find(selector).First()
	if el.Length() == 0 {
		return fallback
	}
	return strings.TrimSpace(el.Text())
}

func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return entity.MissingLink
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

// hasNoResultsMarker 是否存在直接文本包含marker的div
func hasNoResultsMarker(doc *goquery.Document, marker string) bool {
	if marker == "" {
		return false
	}
	found := false
	doc.Find("div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var own strings.Builder
		for _, n := range s.Nodes {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					own.WriteString(c.Data)
				}
			}
		}
		found = strings.Contains(own.String(), marker)
		return !found
	})
	return found
}
