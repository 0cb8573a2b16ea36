package news

import (
	"strings"
	"time"

	"github.com/beevik/etree"
)

// Заголовок попадает в ленту, только если содержит одно из этих слов.
var financeKeywords = []string{
	"finance", "stock", "market", "economy", "rupee",
	"bank", "investment", "tax", "gdp", "inflation",
}

// maxItemsPerFeed ограничивает число элементов, читаемых из одной ленты.
const maxItemsPerFeed = 15

var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

// parseFeed разбирает RSS-документ и возвращает релевантные финансовые заголовки.
func parseFeed(source string, body []byte) ([]Item, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, err
	}

	items := make([]Item, 0)
	for _, element := range doc.FindElements("//item") {
		if len(items) >= maxItemsPerFeed {
			break
		}

		title := childText(element, "title")
		if title == "" || !relevantTitle(title) {
			continue
		}

		link := childText(element, "link")
		if link == "" {
			link = "#"
		}

		items = append(items, Item{
			Source:    source,
			Title:     title,
			Sentiment: analyzeSentiment(title),
			Link:      link,
			Published: parsePubDate(childText(element, "pubDate")),
		})
	}

	return items, nil
}

func childText(element *etree.Element, tag string) string {
	child := element.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func relevantTitle(title string) bool {
	lowered := strings.ToLower(title)
	for _, keyword := range financeKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func parsePubDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	for _, layout := range pubDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}

	return time.Time{}
}
