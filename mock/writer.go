package mock

import (
	"context"

	"github.com/fwojciec/tenderscan"
)

var _ tenderscan.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of tenderscan.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []*tenderscan.FilingRecord) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []*tenderscan.FilingRecord) error {
	return w.WriteRecordsFn(ctx, records)
}
