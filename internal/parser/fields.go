package parser

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
)

// DefaultTitle is used when no title can be extracted at all.
const DefaultTitle = "Quora Question"

// titleStrategy yields a candidate title or "" when it has no match.
type titleStrategy func(doc *goquery.Document) string

// titleStrategies are tried in priority order; first non-empty wins.
var titleStrategies = []titleStrategy{
	titleFromOpenGraph,
	titleFromTitleTag,
	titleFromHeading,
}

// extractTitle returns the best-effort page title, never empty.
func (p *Parser) extractTitle(doc *goquery.Document) string {
	for _, strategy := range titleStrategies {
		if title := strategy(doc); title != "" {
			return title
		}
	}
	return DefaultTitle
}

func titleFromOpenGraph(doc *goquery.Document) string {
	content, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	return strings.TrimSpace(content)
}

func titleFromTitleTag(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func titleFromHeading(doc *goquery.Document) string {
	heading := doc.Find("h1").First()
	if heading.Length() == 0 {
		return ""
	}
	return flattenText(heading, "")
}

// extractQuestionID derives the parent question's identifier. Markup
// signals (qid meta tag, data-qid attribute) win; with zero signal the
// identifier is the first 12 hex chars of SHA-256(url) read base-16.
// That fallback is stable per URL but only probabilistically unique.
func (p *Parser) extractQuestionID(doc *goquery.Document, pageURL string) *int64 {
	if len(doc.Nodes) > 0 {
		root := doc.Get(0)

		// Meta tag carrying the id by name or property.
		if meta := htmlquery.FindOne(root, `//meta[@name='qid' or @property='qid']`); meta != nil {
			if id, err := strconv.ParseInt(strings.TrimSpace(htmlquery.SelectAttr(meta, "content")), 10, 64); err == nil {
				return &id
			}
		}

		// Any element with a data-qid attribute.
		if holder := htmlquery.FindOne(root, `//*[@data-qid]`); holder != nil {
			if id, err := strconv.ParseInt(strings.TrimSpace(htmlquery.SelectAttr(holder, "data-qid")), 10, 64); err == nil {
				return &id
			}
		}
	}

	digest := sha256.Sum256([]byte(pageURL))
	id, err := strconv.ParseInt(hex.EncodeToString(digest[:])[:12], 16, 64)
	if err != nil {
		return nil
	}
	return &id
}

// extractAuthor finds the answer author's profile link within a block.
// The first link is preferred when it already points at a profile;
// otherwise the links are scanned in document order. Returns the
// normalized profile URL (nil when no profile link exists) and the
// visible link text ("" when empty).
func (p *Parser) extractAuthor(block *goquery.Selection) (*string, string) {
	links := block.Find("a[href]")

	var best *goquery.Selection
	if first := links.First(); first.Length() > 0 {
		if href, _ := first.Attr("href"); strings.Contains(href, "/profile/") {
			best = first
		}
	}
	if best == nil {
		links.EachWithBreak(func(_ int, link *goquery.Selection) bool {
			if href, _ := link.Attr("href"); strings.Contains(href, "/profile/") {
				best = link
				return false
			}
			return true
		})
	}
	if best == nil {
		return nil, ""
	}

	href, _ := best.Attr("href")
	normalized := p.NormalizeURL(href)
	return &normalized, flattenText(best, "")
}

// extractMetric scans a block's flattened text for a count labelled by
// marker ("upvote", "view"): the token immediately before the first
// marker token that parses as a compact number wins.
func extractMetric(text, marker string) *int64 {
	lowered := strings.ToLower(text)
	if !strings.Contains(lowered, marker) {
		return nil
	}

	tokens := strings.Fields(lowered)
	for i, tok := range tokens {
		if strings.Contains(tok, marker) && i > 0 {
			if value, ok := ParseCompactNumber(tokens[i-1]); ok {
				return &value
			}
		}
	}
	return nil
}
