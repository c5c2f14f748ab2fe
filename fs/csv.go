package fs

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/fwojciec/tenderscan"
)

// Ensure CSVWriter implements tenderscan.RecordWriter at compile time.
var _ tenderscan.RecordWriter = (*CSVWriter)(nil)

// CSVWriter writes the output table as a CSV file.
// The table is written to path.tmp and renamed over path once complete, so
// a failed write never leaves a truncated table behind.
type CSVWriter struct {
	path   string
	format tenderscan.RecordFormat
}

// NewCSVWriter creates a CSVWriter for the file at path.
func NewCSVWriter(path string, format tenderscan.RecordFormat) *CSVWriter {
	return &CSVWriter{path: path, format: format}
}

func (w *CSVWriter) tempPath() string {
	return w.path + ".tmp"
}

// WriteRecords writes a header row followed by one row per record.
func (w *CSVWriter) WriteRecords(ctx context.Context, records []*tenderscan.FilingRecord) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(w.tempPath())
	if err != nil {
		return err
	}

	if err := w.write(f, records); err != nil {
		f.Close()
		os.Remove(w.tempPath())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(w.tempPath())
		return err
	}

	return os.Rename(w.tempPath(), w.path)
}

func (w *CSVWriter) write(f *os.File, records []*tenderscan.FilingRecord) error {
	cw := csv.NewWriter(f)
	if err := cw.Write(tenderscan.RecordHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(w.format.Row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
