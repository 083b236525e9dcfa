package parser

import (
	"reflect"
	"testing"
)

func TestCollectSearchLinks(t *testing.T) {
	p := newTestParser(t)
	html := `<html><body>
		<a href="/profile/alice">Alice</a>
		<a href="/What-is-AI">What is AI?</a>
		<a href="/answer/123">An answer</a>
		<a href="https://other.com/x">Elsewhere</a>
		<a href="/question/456-foo">A question</a>
	</body></html>`

	got := p.CollectSearchLinks(html)
	want := []string{
		"https://www.quora.com/What-is-AI",
		"https://www.quora.com/question/456-foo",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectSearchLinks = %v, want %v", got, want)
	}
}

func TestCollectSearchLinksDedup(t *testing.T) {
	p := newTestParser(t)
	html := `<html><body>
		<a href="/What-is-AI">first</a>
		<a href="https://www.quora.com/What-is-AI">same after normalization</a>
		<a href="/How-does-Go-work">second</a>
	</body></html>`

	got := p.CollectSearchLinks(html)
	want := []string{
		"https://www.quora.com/What-is-AI",
		"https://www.quora.com/How-does-Go-work",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectSearchLinks = %v, want %v", got, want)
	}
}

func TestCollectSearchLinksMarkers(t *testing.T) {
	p := newTestParser(t)
	html := `<html><body>
		<a href="/Why-is-the-sky-blue">why</a>
		<a href="/Is-Go-fast">is</a>
		<a href="/Can-I-learn-Go">can</a>
		<a href="/How-to-start">how</a>
		<a href="/topic/Go">topic page, ignored</a>
	</body></html>`

	got := p.CollectSearchLinks(html)
	if len(got) != 4 {
		t.Fatalf("expected 4 links, got %d: %v", len(got), got)
	}
}

func TestCollectSearchLinksOnSiteAbsolute(t *testing.T) {
	p := newTestParser(t)
	html := `<html><body><a href="https://www.quora.com/question/789">abs</a></body></html>`

	got := p.CollectSearchLinks(html)
	if len(got) != 1 || got[0] != "https://www.quora.com/question/789" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestNormalizeURL(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		in   string
		want string
	}{
		{"/What-is-AI", "https://www.quora.com/What-is-AI"},
		{"https://example.com/page", "https://example.com/page"},
		{"http://www.quora.com/What-is-AI", "http://www.quora.com/What-is-AI"},
	}
	for _, tt := range tests {
		if got := p.NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
