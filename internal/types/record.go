package types

import (
	"encoding/json"
	"strconv"
)

// Name holds an author name split into given/family parts. Quora markup
// does not reliably separate the two, so FamilyName is always empty.
type Name struct {
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
}

// Record represents one extracted answer, or the whole-page fallback
// when no answer blocks were found.
type Record struct {
	// Index is the 1-based position of this record within its page.
	Index int `json:"index"`

	// QuestionID identifies the parent question. It is derived from
	// markup when possible and from a URL hash otherwise.
	QuestionID *int64 `json:"qid"`

	// ID is a stable identifier derived from (QuestionID, Index).
	ID string `json:"id"`

	// URL is the normalized content-page URL.
	URL string `json:"url"`

	// Title is the page title; never empty.
	Title string `json:"title"`

	// CreationTime is the extraction timestamp in RFC 3339.
	CreationTime string `json:"creationTime"`

	// AnswerCount is the number of answer blocks found on the page.
	// Identical across all records from the same page.
	AnswerCount int `json:"answerCount"`

	// Answers is the extracted answer text, or truncated page text in
	// the fallback case.
	Answers string `json:"answers"`

	NumUpvotes *int64  `json:"numUpvotes"`
	NumViews   *int64  `json:"numViews"`
	ProfileURL *string `json:"profileUrl"`

	Names []Name `json:"names"`
}

// Columns returns the tabular column names in Record field order, used
// by the csv/xlsx/html exports.
func Columns() []string {
	return []string{
		"index", "qid", "id", "url", "title", "creationTime",
		"answerCount", "answers", "numUpvotes", "numViews",
		"profileUrl", "names",
	}
}

// Row flattens the record into string cells matching Columns. Absent
// optional values become empty cells; Names serializes as JSON.
func (r *Record) Row() []string {
	names, _ := json.Marshal(r.Names)
	return []string{
		strconv.Itoa(r.Index),
		optInt(r.QuestionID),
		r.ID,
		r.URL,
		r.Title,
		r.CreationTime,
		strconv.Itoa(r.AnswerCount),
		r.Answers,
		optInt(r.NumUpvotes),
		optInt(r.NumViews),
		optStr(r.ProfileURL),
		string(names),
	}
}

func optInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func optStr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
