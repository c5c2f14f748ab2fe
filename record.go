package tenderscan

import (
	"context"
	"time"
)

// FilingRecord is one row of the output table.
type FilingRecord struct {
	Identifier Identifier
	// Date is the zero time when the index page date could not be parsed.
	Date time.Time
	URL  string
}

// HasDate reports whether the record carries a parsed filing date.
func (r *FilingRecord) HasDate() bool {
	return !r.Date.IsZero()
}

// FormattedDate returns the date as YYYY-MM-DD, or "" if it is unknown.
func (r *FilingRecord) FormattedDate() string {
	if !r.HasDate() {
		return ""
	}
	return r.Date.Format(FilingDateLayout)
}

// RecordFormat controls how records are rendered in the output table.
type RecordFormat struct {
	// IdentifierQuote is written on both sides of each identifier.
	IdentifierQuote string
}

// DefaultRecordFormat wraps identifiers in a single pair of double quotes so
// spreadsheet tools keep their leading zeros.
var DefaultRecordFormat = RecordFormat{IdentifierQuote: `"`}

// RecordHeader is the header row of the output table.
var RecordHeader = []string{"cik", "date", "url"}

// Row renders the record as output table cells.
func (f RecordFormat) Row(r *FilingRecord) []string {
	return []string{r.Identifier.Quote(f.IdentifierQuote), r.FormattedDate(), r.URL}
}

// RecordWriter persists the output table. WriteRecords is called once per
// run with every accumulated record and replaces any previous table.
type RecordWriter interface {
	WriteRecords(ctx context.Context, records []*FilingRecord) error
}
