package pipeline

import (
	"strings"

	"github.com/qscrape/qscrape/internal/types"
)

// TrimMiddleware strips surrounding whitespace from the record's text
// fields.
type TrimMiddleware struct{}

func (m *TrimMiddleware) Name() string { return "trim" }

func (m *TrimMiddleware) Process(rec *types.Record) (*types.Record, error) {
	rec.Title = strings.TrimSpace(rec.Title)
	rec.Answers = strings.TrimSpace(rec.Answers)
	for i := range rec.Names {
		rec.Names[i].GivenName = strings.TrimSpace(rec.Names[i].GivenName)
	}
	return rec, nil
}
