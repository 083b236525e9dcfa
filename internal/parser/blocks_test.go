package parser

import (
	"strings"
	"testing"
)

const answerPageHTML = `<!DOCTYPE html>
<html>
<head>
    <meta property="og:title" content="What is Go? - Quora">
    <meta name="qid" content="12345">
    <title>What is Go?</title>
</head>
<body>
    <div data-testid="answer_main_1">
        <a href="/profile/Alice-Smith">Alice Smith</a>
        <p>Go is a statically typed language designed at Google.</p>
        <span>1.2k upvotes</span>
        <span>30k views</span>
    </div>
    <div data-testid="answer_main_2">
        <p>It compiles fast and ships a garbage collector.</p>
        <span>452 upvotes</span>
    </div>
    <div data-testid="question_header">What is Go?</div>
</body>
</html>`

func TestLocateAnswerBlocksByTestID(t *testing.T) {
	p := newTestParser(t)
	blocks := p.locateAnswerBlocks(makeDoc(t, answerPageHTML))

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}

	first := blocks[0]
	if !strings.Contains(first.Text, "statically typed language") {
		t.Errorf("unexpected first block text: %q", first.Text)
	}
	if first.Upvotes == nil || *first.Upvotes != 1200 {
		t.Errorf("expected 1200 upvotes, got %v", first.Upvotes)
	}
	if first.Views == nil || *first.Views != 30000 {
		t.Errorf("expected 30000 views, got %v", first.Views)
	}
	if first.ProfileURL == nil || *first.ProfileURL != "https://www.quora.com/profile/Alice-Smith" {
		t.Errorf("unexpected profile url: %v", first.ProfileURL)
	}
	if first.AuthorName != "Alice Smith" {
		t.Errorf("unexpected author name: %q", first.AuthorName)
	}

	second := blocks[1]
	if second.Upvotes == nil || *second.Upvotes != 452 {
		t.Errorf("expected 452 upvotes, got %v", second.Upvotes)
	}
	if second.Views != nil {
		t.Errorf("expected absent views, got %d", *second.Views)
	}
	if second.ProfileURL != nil {
		t.Errorf("expected absent profile, got %q", *second.ProfileURL)
	}
}

func TestLocateAnswerBlocksClassFallback(t *testing.T) {
	p := newTestParser(t)
	html := `<html><body>
		<div class="AnswerCard content">This answer text is comfortably longer than fifty characters in total.</div>
		<div class="AnswerCard content">tiny</div>
		<div class="sidebar">Unrelated container that is also longer than fifty characters but not an answer.</div>
	</body></html>`

	blocks := p.locateAnswerBlocks(makeDoc(t, html))
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block from class fallback, got %d", len(blocks))
	}
	if !strings.Contains(blocks[0].Text, "comfortably longer") {
		t.Errorf("unexpected block text: %q", blocks[0].Text)
	}
}

func TestLocateAnswerBlocksPrefersTestID(t *testing.T) {
	p := newTestParser(t)
	html := `<html><body>
		<div data-testid="answer_1">Tagged answer.</div>
		<div class="answer-card">Class-matched answer that would satisfy the length requirement easily.</div>
	</body></html>`

	blocks := p.locateAnswerBlocks(makeDoc(t, html))
	if len(blocks) != 1 {
		t.Fatalf("expected only the tagged block, got %d", len(blocks))
	}
	if blocks[0].Text != "Tagged answer." {
		t.Errorf("unexpected block text: %q", blocks[0].Text)
	}
}

func TestLocateAnswerBlocksDedupByText(t *testing.T) {
	p := newTestParser(t)
	html := `<html><body>
		<div data-testid="answer_outer">Same visible answer text.</div>
		<div data-testid="answer_inner">Same visible answer text.</div>
		<div data-testid="answer_other">A different answer text.</div>
	</body></html>`

	blocks := p.locateAnswerBlocks(makeDoc(t, html))
	if len(blocks) != 2 {
		t.Fatalf("expected 2 deduplicated blocks, got %d", len(blocks))
	}
	if blocks[0].Text != "Same visible answer text." {
		t.Errorf("first occurrence should win, got %q", blocks[0].Text)
	}
}

func TestLocateAnswerBlocksSkipsEmptyText(t *testing.T) {
	p := newTestParser(t)
	html := `<html><body><div data-testid="answer_empty"></div></body></html>`

	if blocks := p.locateAnswerBlocks(makeDoc(t, html)); len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %d", len(blocks))
	}
}
