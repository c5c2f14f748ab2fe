package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tenderscan"
)

// Compile-time interface verification.
var (
	_ tenderscan.IndexResolver   = (*LoggingIndexResolver)(nil)
	_ tenderscan.DocumentLocator = (*LoggingDocumentLocator)(nil)
)

// LoggingIndexResolver wraps an IndexResolver with logging.
type LoggingIndexResolver struct {
	next   tenderscan.IndexResolver
	logger *slog.Logger
}

// NewLoggingIndexResolver creates a new LoggingIndexResolver.
func NewLoggingIndexResolver(next tenderscan.IndexResolver, logger *slog.Logger) *LoggingIndexResolver {
	return &LoggingIndexResolver{next: next, logger: logger}
}

// ResolveCandidates delegates to the wrapped resolver and logs the operation.
func (r *LoggingIndexResolver) ResolveCandidates(ctx context.Context, id tenderscan.Identifier) (candidates []*tenderscan.FilingCandidate, err error) {
	defer func(begin time.Time) {
		r.logger.Info("resolve index",
			"cik", string(id),
			"count", len(candidates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveCandidates(ctx, id)
}

// LoggingDocumentLocator wraps a DocumentLocator with logging.
type LoggingDocumentLocator struct {
	next   tenderscan.DocumentLocator
	logger *slog.Logger
}

// NewLoggingDocumentLocator creates a new LoggingDocumentLocator.
func NewLoggingDocumentLocator(next tenderscan.DocumentLocator, logger *slog.Logger) *LoggingDocumentLocator {
	return &LoggingDocumentLocator{next: next, logger: logger}
}

// LocateSubmissionURL delegates to the wrapped locator and logs the operation.
func (l *LoggingDocumentLocator) LocateSubmissionURL(ctx context.Context, detailURL string) (submissionURL string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("locate submission",
			"url", detailURL,
			"submission", submissionURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LocateSubmissionURL(ctx, detailURL)
}
