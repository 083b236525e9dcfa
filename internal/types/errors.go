package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrInvalidURL        = errors.New("invalid URL")
	ErrEmptyResponse     = errors.New("empty response body")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// FetchError wraps errors that occur while fetching a page.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s (status %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError wraps errors that occur while building a document tree.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error for %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExportError wraps errors that occur while writing an export file.
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("export error (%s, %s): %v", e.Format, e.Path, e.Err)
	}
	return fmt.Sprintf("export error (%s): %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
