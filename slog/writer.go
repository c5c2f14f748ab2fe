package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tenderscan"
)

// Ensure LoggingRecordWriter implements tenderscan.RecordWriter.
var _ tenderscan.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with logging.
type LoggingRecordWriter struct {
	next   tenderscan.RecordWriter
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter.
func NewLoggingRecordWriter(next tenderscan.RecordWriter, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, logger: logger}
}

// WriteRecords delegates to the wrapped writer and logs the operation.
func (w *LoggingRecordWriter) WriteRecords(ctx context.Context, records []*tenderscan.FilingRecord) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecords(ctx, records)
}
