package tenderscan

import (
	"context"
	"strings"
	"time"
)

// FilingDateLayout is the layout of filing dates on EDGAR index pages.
const FilingDateLayout = "2006-01-02"

// filingDateColumn is the position, among the cells following the form type
// cell, of the cell holding the filing date.
const filingDateColumn = 2

// FilingIndexEntry is one matching row of a filing index page.
type FilingIndexEntry struct {
	Identifier Identifier

	// Marker is the table cell whose text equals the requested form type.
	// The row's remaining cells are its following siblings.
	Marker Element
}

// FilingCandidate is a filing found on the index page, not yet checked.
type FilingCandidate struct {
	Identifier Identifier
	DetailURL  string
	Entry      *FilingIndexEntry
}

// SubmissionDocument is the complete submission text of a candidate filing.
type SubmissionDocument struct {
	Candidate *FilingCandidate
	URL       string
	Text      string
}

// IndexResolver finds the filings of one identifier.
type IndexResolver interface {
	// ResolveCandidates queries the filing index for the identifier and
	// returns one candidate per matching row, in index page order.
	// An identifier with no matching rows yields an empty slice and no error.
	// Returns EFETCH if the index cannot be retrieved and EMISMATCH if a
	// matching row has no detail link.
	ResolveCandidates(ctx context.Context, id Identifier) ([]*FilingCandidate, error)
}

// DocumentLocator finds the complete submission text of a filing.
type DocumentLocator interface {
	// LocateSubmissionURL fetches the filing detail page and returns the
	// absolute URL of its complete submission text file.
	// Returns EFETCH if the page cannot be retrieved and EMISMATCH if the
	// page has no submission link.
	LocateSubmissionURL(ctx context.Context, detailURL string) (string, error)
}

// ParseFilingDate parses a YYYY-MM-DD date. Surrounding whitespace is
// ignored. Returns EDATE if s is not a valid date.
func ParseFilingDate(s string) (time.Time, error) {
	t, err := time.Parse(FilingDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, Errorf(EDATE, "invalid filing date %q", s)
	}
	return t, nil
}

// ExtractFilingDate reads the filing date from the entry's row. A date that
// cannot be parsed yields the zero time rather than an error. Returns
// EMISMATCH if the row is too short to hold a date cell.
func ExtractFilingDate(entry *FilingIndexEntry) (time.Time, error) {
	cells := entry.Marker.NextSiblings("td")
	if len(cells) <= filingDateColumn {
		return time.Time{}, Errorf(EMISMATCH, "index row for %s has %d cells after form type, want at least %d",
			entry.Identifier, len(cells), filingDateColumn+1)
	}

	date, err := ParseFilingDate(cells[filingDateColumn].Text())
	if err != nil {
		// Unparseable dates are kept as unknown rather than dropping the filing.
		return time.Time{}, nil
	}
	return date, nil
}
