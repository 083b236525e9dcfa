package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/qscrape/qscrape/internal/types"
)

// formatExts maps a supported format identifier to its file extension.
var formatExts = map[string]string{
	"json":  "json",
	"csv":   "csv",
	"excel": "xlsx",
	"html":  "html",
}

// Exporter serializes a list of records to a timestamped file. Export
// failures are logged and returned: a requested export that silently
// fails to write would be a correctness violation.
type Exporter struct {
	outputDir    string
	baseFilename string
	logger       *slog.Logger
}

// New creates an Exporter writing `<baseFilename>_<timestamp>.<ext>`
// files under outputDir.
func New(outputDir, baseFilename string, logger *slog.Logger) *Exporter {
	return &Exporter{
		outputDir:    outputDir,
		baseFilename: baseFilename,
		logger:       logger.With("component", "exporter"),
	}
}

// Export writes records in the requested format and returns the file
// path. An unsupported format is rejected before any filesystem access.
func (e *Exporter) Export(records []types.Record, format string) (string, error) {
	ext, ok := formatExts[format]
	if !ok {
		return "", &types.ExportError{
			Format: format,
			Err:    fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, format),
		}
	}

	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", &types.ExportError{Format: format, Err: fmt.Errorf("create output dir: %w", err)}
	}

	ts := time.Now().UTC().Format("20060102_150405")
	path := filepath.Join(e.outputDir, fmt.Sprintf("%s_%s.%s", e.baseFilename, ts, ext))

	e.logger.Info("exporting records", "count", len(records), "format", format, "path", path)

	var err error
	switch format {
	case "json":
		err = writeJSON(records, path)
	case "csv":
		err = writeCSV(records, path)
	case "excel":
		err = writeExcel(records, path)
	case "html":
		err = writeHTML(records, path)
	}
	if err != nil {
		e.logger.Error("export failed", "format", format, "path", path, "error", err)
		return "", &types.ExportError{Format: format, Path: path, Err: err}
	}

	return path, nil
}

// writeJSON writes the records as an indented JSON array. Non-ASCII
// characters are preserved verbatim.
func writeJSON(records []types.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if records == nil {
		records = []types.Record{}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return f.Close()
}

func writeCSV(records []types.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(types.Columns()); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for i := range records {
		if err := w.Write(records[i].Row()); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}
	return f.Close()
}

func writeExcel(records []types.Record, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for i, col := range types.Columns() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("write header cell: %w", err)
		}
	}

	for rowIdx := range records {
		for colIdx, val := range records[rowIdx].Row() {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("data cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("write data cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}
