package parser

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/qscrape/qscrape/internal/types"
)

// maxFallbackText bounds the whole-page text captured when no answer
// blocks are found.
const maxFallbackText = 5000

// ParsePage parses one content page into records, one per detected
// answer block. It never returns an empty slice: a page with no
// recognizable answers yields a single whole-page fallback record.
// Malformed markup degrades to the fallback, never to an error.
func (p *Parser) ParsePage(htmlBody, pageURL string) []types.Record {
	extractedAt := time.Now().UTC().Format(time.RFC3339)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		p.logger.Warn("document build failed, using raw text fallback", "url", pageURL, "error", err)
		return []types.Record{fallbackRecord(nil, pageURL, DefaultTitle, truncateRunes(htmlBody, maxFallbackText), extractedAt)}
	}

	title := p.extractTitle(doc)
	qid := p.extractQuestionID(doc, pageURL)
	blocks := p.locateAnswerBlocks(doc)

	if len(blocks) == 0 {
		p.logger.Debug("no answer blocks found, falling back to whole-page text", "url", pageURL)
		pageText := truncateRunes(flattenText(doc.Selection, " "), maxFallbackText)
		return []types.Record{fallbackRecord(qid, pageURL, title, pageText, extractedAt)}
	}

	records := make([]types.Record, 0, len(blocks))
	for i, block := range blocks {
		records = append(records, types.Record{
			Index:        i + 1,
			QuestionID:   qid,
			ID:           encodedID(qid, i+1),
			URL:          pageURL,
			Title:        title,
			CreationTime: extractedAt,
			AnswerCount:  len(blocks),
			Answers:      block.Text,
			NumUpvotes:   block.Upvotes,
			NumViews:     block.Views,
			ProfileURL:   block.ProfileURL,
			Names:        []types.Name{{GivenName: block.AuthorName}},
		})
	}
	return records
}

func fallbackRecord(qid *int64, pageURL, title, text, extractedAt string) types.Record {
	return types.Record{
		Index:        1,
		QuestionID:   qid,
		ID:           encodedID(qid, 1),
		URL:          pageURL,
		Title:        title,
		CreationTime: extractedAt,
		AnswerCount:  0,
		Answers:      text,
		Names:        []types.Name{{}},
	}
}

// encodedID builds a stable identifier from (qid, index). Re-parsing
// the same page yields the same ids.
func encodedID(qid *int64, index int) string {
	var q int64
	if qid != nil {
		q = *qid
	}
	digest := sha256.Sum256(fmt.Appendf(nil, "Question@%d:%d", q, index))
	return hex.EncodeToString(digest[:])[:32]
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
