package harvest

import (
	"fmt"
	"strings"

	"github.com/LouYuanbo1/tenderparser/internal/domain/entity"
)

const testBase = "https://rostender.info"

func card(id, title string) string {
	return fmt.Sprintf(`<article class="tender-row">
  <a class="tender-info__description" href="/region/moskva/%[1]s-postavka">  %[2]s  </a>
  <span class="tender__number">№ %[1]s</span>
  <div class="starting-price__price">1 000 ₽</div>
  <span class="tender__countdown-text">до 01.11.2026</span>
  <div class="tender-customer-branches"><a href="/customer/1">ООО Ромашка</a></div>
  <div class="tender-address"> Москва </div>
</article>`, id, title)
}

func tender(base, id, title string) entity.Tender {
	return entity.Tender{
		ID:      id,
		Number:  "№ " + id,
		Title:   title,
		Link:    base + "/region/moskva/" + id + "-postavka",
		Company: "ООО Ромашка",
		Price:   "1 000 ₽",
		Date:    "до 01.11.2026",
		Region:  "Москва",
	}
}

const nextButton = `<ul class="pagination"><li class="page-item"><a class="page-link" aria-label="Next page" href="?page=2">›</a></li></ul>`

func listing(next bool, cards ...string) string {
	var b strings.Builder
	b.WriteString("<html><body><main>")
	b.WriteString(strings.Join(cards, "\n"))
	b.WriteString("</main>")
	if next {
		b.WriteString(nextButton)
	}
	b.WriteString("</body></html>")
	return b.String()
}

const noResultsPage = `<html><body><div class="search-empty">Не найдено ни одного тендера</div></body></html>`
