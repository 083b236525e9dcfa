package parser

import (
	"strings"
	"testing"
	"time"
)

func TestParsePageOneRecordPerBlock(t *testing.T) {
	p := newTestParser(t)
	const url = "https://www.quora.com/What-is-Go"

	records := p.ParsePage(answerPageHTML, url)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	for i, rec := range records {
		if rec.Index != i+1 {
			t.Errorf("record %d: index = %d, want %d", i, rec.Index, i+1)
		}
		if rec.AnswerCount != 2 {
			t.Errorf("record %d: answerCount = %d, want 2", i, rec.AnswerCount)
		}
		if rec.URL != url {
			t.Errorf("record %d: url = %q", i, rec.URL)
		}
		if rec.Title != "What is Go? - Quora" {
			t.Errorf("record %d: title = %q", i, rec.Title)
		}
		if rec.QuestionID == nil || *rec.QuestionID != 12345 {
			t.Errorf("record %d: qid = %v, want 12345", i, rec.QuestionID)
		}
		if rec.ID == "" || len(rec.ID) != 32 {
			t.Errorf("record %d: malformed id %q", i, rec.ID)
		}
		if len(rec.Names) != 1 {
			t.Errorf("record %d: expected one name entry, got %d", i, len(rec.Names))
		}
		if _, err := time.Parse(time.RFC3339, rec.CreationTime); err != nil {
			t.Errorf("record %d: creationTime %q not RFC 3339: %v", i, rec.CreationTime, err)
		}
	}

	if records[0].CreationTime != records[1].CreationTime {
		t.Error("records from one page must share the extraction timestamp")
	}
	if records[0].ID == records[1].ID {
		t.Error("records must have distinct ids")
	}
	if records[0].Names[0].GivenName != "Alice Smith" {
		t.Errorf("unexpected author: %q", records[0].Names[0].GivenName)
	}
	if records[0].Names[0].FamilyName != "" {
		t.Error("family name must stay empty")
	}
}

func TestParsePageIDsAreStable(t *testing.T) {
	p := newTestParser(t)
	const url = "https://www.quora.com/What-is-Go"

	first := p.ParsePage(answerPageHTML, url)
	second := p.ParsePage(answerPageHTML, url)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("record %d id changed between parses: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestParsePageWholePageFallback(t *testing.T) {
	p := newTestParser(t)
	html := `<html><head><title>Sparse Page</title></head><body><p>No answers live here.</p></body></html>`

	records := p.ParsePage(html, "https://www.quora.com/Sparse")
	if len(records) != 1 {
		t.Fatalf("expected exactly 1 fallback record, got %d", len(records))
	}

	rec := records[0]
	if rec.Index != 1 {
		t.Errorf("index = %d, want 1", rec.Index)
	}
	if rec.AnswerCount != 0 {
		t.Errorf("answerCount = %d, want 0", rec.AnswerCount)
	}
	if rec.Title != "Sparse Page" {
		t.Errorf("title = %q", rec.Title)
	}
	if !strings.Contains(rec.Answers, "No answers live here.") {
		t.Errorf("fallback answers should hold page text, got %q", rec.Answers)
	}
	if rec.NumUpvotes != nil || rec.NumViews != nil || rec.ProfileURL != nil {
		t.Error("fallback record must have absent optional fields")
	}
	if len(rec.Names) != 1 || rec.Names[0].GivenName != "" || rec.Names[0].FamilyName != "" {
		t.Errorf("fallback record must carry one empty name pair, got %v", rec.Names)
	}
	if rec.QuestionID == nil {
		t.Error("fallback record still gets a derived question id")
	}
}

func TestParsePageFallbackTruncation(t *testing.T) {
	p := newTestParser(t)
	var b strings.Builder
	b.WriteString("<html><body><p>")
	b.WriteString(strings.Repeat("x", 9000))
	b.WriteString("</p></body></html>")

	records := p.ParsePage(b.String(), "https://www.quora.com/Long")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := len([]rune(records[0].Answers)); got > 5000 {
		t.Errorf("fallback answers length = %d, want <= 5000", got)
	}
}

func TestParsePageNeverEmpty(t *testing.T) {
	p := newTestParser(t)

	for _, html := range []string{"", "<<<not really html>>>", "<html></html>"} {
		records := p.ParsePage(html, "https://www.quora.com/Broken")
		if len(records) == 0 {
			t.Errorf("ParsePage(%q) returned no records", html)
		}
	}
}
