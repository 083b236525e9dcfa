package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// questionSlugMarkers are interrogative URL fragments that mark a
// question page on sites that slug the question text into the path.
var questionSlugMarkers = []string{"/What-", "/How-", "/Why-", "/Is-", "/Can-"}

// CollectSearchLinks extracts candidate question-page URLs from a
// search results page, in document order, deduplicated by normalized
// URL. Profile links, answer permalinks and off-site links are skipped.
func (p *Parser) CollectSearchLinks(htmlBody string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		p.logger.Warn("search page document build failed", "error", err)
		return nil
	}

	seen := make(map[string]bool)
	var urls []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}

		// Ignore external links
		if strings.HasPrefix(href, "http") && !strings.Contains(href, p.siteDomain) {
			return
		}
		if strings.Contains(href, "/profile/") {
			return
		}
		if strings.Contains(href, "answer/") {
			return
		}

		if !hasQuestionMarker(href) && !strings.Contains(href, "/question/") {
			return
		}

		normalized := p.NormalizeURL(href)
		if !seen[normalized] {
			seen[normalized] = true
			urls = append(urls, normalized)
		}
	})

	p.logger.Info("candidate question URLs found", "count", len(urls))
	return urls
}

func hasQuestionMarker(href string) bool {
	for _, marker := range questionSlugMarkers {
		if strings.Contains(href, marker) {
			return true
		}
	}
	return false
}
