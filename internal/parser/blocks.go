package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minClassBlockText is the minimum stripped-text length for the
// class-name fallback heuristic; shorter matches are navigation
// chrome, not answers.
const minClassBlockText = 50

// Block holds the raw data extracted from one candidate answer region.
type Block struct {
	Text       string
	Upvotes    *int64
	Views      *int64
	ProfileURL *string
	AuthorName string
}

// locateAnswerBlocks finds the page regions that look like individual
// answers. Elements tagged with an automation id containing "answer"
// are preferred; only when that yields nothing are generic containers
// matched by class name. Blocks with identical text are collapsed to
// the first occurrence.
func (p *Parser) locateAnswerBlocks(doc *goquery.Document) []Block {
	var blocks []Block

	doc.Find("[data-testid]").Each(func(_ int, sel *goquery.Selection) {
		testid, _ := sel.Attr("data-testid")
		if !strings.Contains(strings.ToLower(testid), "answer") {
			return
		}
		if text := flattenText(sel, " "); text != "" {
			blocks = append(blocks, p.buildBlock(sel, text))
		}
	})

	if len(blocks) == 0 {
		doc.Find("div").Each(func(_ int, sel *goquery.Selection) {
			class := strings.ToLower(sel.AttrOr("class", ""))
			if !strings.Contains(class, "answer") {
				return
			}
			if len(flattenText(sel, "")) <= minClassBlockText {
				return
			}
			blocks = append(blocks, p.buildBlock(sel, flattenText(sel, " ")))
		})
	}

	// The same visible answer can appear in several nested containers.
	seen := make(map[string]bool, len(blocks))
	deduped := blocks[:0]
	for _, b := range blocks {
		if seen[b.Text] {
			continue
		}
		seen[b.Text] = true
		deduped = append(deduped, b)
	}
	return deduped
}

// buildBlock derives the per-block fields from the block's own subtree.
func (p *Parser) buildBlock(sel *goquery.Selection, text string) Block {
	profileURL, authorName := p.extractAuthor(sel)
	return Block{
		Text:       text,
		Upvotes:    extractMetric(text, "upvote"),
		Views:      extractMetric(text, "view"),
		ProfileURL: profileURL,
		AuthorName: authorName,
	}
}
