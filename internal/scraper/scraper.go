package scraper

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/qscrape/qscrape/internal/config"
	"github.com/qscrape/qscrape/internal/fetcher"
	"github.com/qscrape/qscrape/internal/parser"
	"github.com/qscrape/qscrape/internal/pipeline"
	"github.com/qscrape/qscrape/internal/types"
)

// Scraper routes input URLs to the right extraction path: search
// listing pages fan out into their question pages, question pages are
// parsed directly. All fetching goes through the injected Fetcher.
type Scraper struct {
	fetcher fetcher.Fetcher
	parser  *parser.Parser
	pipe    *pipeline.Pipeline
	logger  *slog.Logger
}

// New creates a Scraper. pipe may be nil to skip record
// post-processing.
func New(cfg *config.Config, f fetcher.Fetcher, pipe *pipeline.Pipeline, logger *slog.Logger) (*Scraper, error) {
	p, err := parser.New(cfg.Scraper.BaseURL, logger)
	if err != nil {
		return nil, err
	}
	return &Scraper{
		fetcher: f,
		parser:  p,
		pipe:    pipe,
		logger:  logger.With("component", "scraper"),
	}, nil
}

// Scrape decides whether the URL is a search listing or a question
// page and routes accordingly. limit bounds how many question pages a
// listing fans out into: nil means no limit, negative values clamp to
// zero. Fetch failures are logged and degrade to an empty result for
// the affected page; Scrape itself never fails.
func (s *Scraper) Scrape(ctx context.Context, rawURL string, limit *int) []types.Record {
	if IsSearchURL(rawURL) {
		return s.scrapeSearch(ctx, rawURL, limit)
	}
	return s.scrapeQuestion(ctx, rawURL)
}

// IsSearchURL reports whether the URL looks like a search results
// listing. The check is purely textual.
func IsSearchURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if strings.Contains(u.Path, "search") {
		return true
	}
	return strings.Contains(u.RawQuery, "q=")
}

// scrapeSearch collects question URLs from a listing page and scrapes
// each in discovery order.
func (s *Scraper) scrapeSearch(ctx context.Context, rawURL string, limit *int) []types.Record {
	s.logger.Debug("scraping search page", "url", rawURL)
	body, ok := s.get(ctx, rawURL)
	if !ok {
		return nil
	}

	questionURLs := s.parser.CollectSearchLinks(body)
	if limit != nil {
		n := max(*limit, 0)
		if n < len(questionURLs) {
			questionURLs = questionURLs[:n]
		}
	}

	var records []types.Record
	for i, qURL := range questionURLs {
		s.logger.Debug("scraping question from search", "position", i+1, "url", qURL)
		records = append(records, s.scrapeQuestion(ctx, qURL)...)
	}
	return records
}

// scrapeQuestion fetches and parses a single question page.
func (s *Scraper) scrapeQuestion(ctx context.Context, rawURL string) []types.Record {
	normalized := s.parser.NormalizeURL(rawURL)
	s.logger.Debug("scraping question page", "url", normalized)
	body, ok := s.get(ctx, normalized)
	if !ok {
		return nil
	}

	records := s.parser.ParsePage(body, normalized)
	return s.applyPipeline(records)
}

// get fetches a URL and returns the body text. Transport failures and
// non-success statuses are logged and reported as "no content" so one
// bad page cannot abort a listing scrape.
func (s *Scraper) get(ctx context.Context, rawURL string) (string, bool) {
	req, err := types.NewRequest(rawURL)
	if err != nil {
		s.logger.Error("request build failed", "url", rawURL, "error", err)
		return "", false
	}

	resp, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		s.logger.Error("request failed", "url", rawURL, "error", err)
		return "", false
	}
	return resp.Text(), true
}

func (s *Scraper) applyPipeline(records []types.Record) []types.Record {
	if s.pipe == nil || s.pipe.Len() == 0 {
		return records
	}

	out := make([]types.Record, 0, len(records))
	for i := range records {
		rec, err := s.pipe.Process(&records[i])
		if err != nil {
			s.logger.Warn("pipeline failed, keeping record as-is", "url", records[i].URL, "error", err)
			out = append(out, records[i])
			continue
		}
		if rec == nil {
			continue
		}
		out = append(out, *rec)
	}
	return out
}
