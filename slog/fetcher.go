// Package slog provides logging decorators for tenderscan services.
package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/tenderscan"
)

// Ensure LoggingFetcher implements tenderscan.Fetcher.
var _ tenderscan.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Each fetch logs the body size
// and an xxhash of the body, so runs against unchanged documents can be
// compared line for line.
type LoggingFetcher struct {
	next   tenderscan.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next tenderscan.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body string, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "bytes", len(body), "duration", time.Since(begin)}
		if err != nil {
			f.logger.Info("fetch", append(attrs, "err", err)...)
			return
		}
		f.logger.Info("fetch", append(attrs, "hash", contentHash(body))...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// contentHash returns the hex xxhash of s.
func contentHash(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), 16)
}
