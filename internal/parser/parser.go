package parser

import (
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/PuerkitoBio/goquery"
)

// Parser turns fetched Quora HTML into structured records. It is
// resilient to layout changes: every extractor is a heuristic that
// yields a default or absence instead of an error.
type Parser struct {
	baseURL    *url.URL
	siteDomain string
	logger     *slog.Logger
}

// New creates a Parser. Scheme-less URLs found in pages are resolved
// against baseURL; off-site links are filtered by its domain.
func New(baseURL string, logger *slog.Logger) (*Parser, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &Parser{
		baseURL:    base,
		siteDomain: strings.TrimPrefix(base.Hostname(), "www."),
		logger:     logger.With("component", "parser"),
	}, nil
}

// NormalizeURL resolves a scheme-less URL against the base site origin.
// URLs that already carry a scheme are returned unchanged.
func (p *Parser) NormalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if u.Scheme != "" {
		return rawURL
	}
	return p.baseURL.ResolveReference(u).String()
}

// flattenText walks the selection's subtree and joins the stripped text
// nodes with sep, mirroring a whitespace-normalized visible-text dump.
func flattenText(sel *goquery.Selection, sep string) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, sep)
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
