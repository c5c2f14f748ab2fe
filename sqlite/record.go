package sqlite

import (
	"context"

	"github.com/fwojciec/tenderscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tenderscan.RecordWriter = (*RecordWriter)(nil)

// RecordWriter stores the output table in the filings table.
type RecordWriter struct {
	db     *DB
	format tenderscan.RecordFormat
}

// NewRecordWriter creates a new RecordWriter.
func NewRecordWriter(db *DB, format tenderscan.RecordFormat) *RecordWriter {
	return &RecordWriter{db: db, format: format}
}

// FilingID derives a stable identifier for a filing from its URL, so the
// same filing has the same ID across runs.
func FilingID(url string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url)).String()
}

// WriteRecords replaces the contents of the filings table with records,
// in order, within a single transaction.
func (w *RecordWriter) WriteRecords(ctx context.Context, records []*tenderscan.FilingRecord) error {
	tx, err := w.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM filings`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO filings (position, filing_id, cik, filing_date, url)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		row := w.format.Row(r)
		if _, err := stmt.ExecContext(ctx, i, FilingID(r.URL), row[0], row[1], row[2]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
