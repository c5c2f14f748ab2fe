package mock

import (
	"context"

	"github.com/fwojciec/tenderscan"
)

var (
	_ tenderscan.IndexResolver   = (*IndexResolver)(nil)
	_ tenderscan.DocumentLocator = (*DocumentLocator)(nil)
)

// IndexResolver is a mock implementation of tenderscan.IndexResolver.
type IndexResolver struct {
	ResolveCandidatesFn func(ctx context.Context, id tenderscan.Identifier) ([]*tenderscan.FilingCandidate, error)
}

func (r *IndexResolver) ResolveCandidates(ctx context.Context, id tenderscan.Identifier) ([]*tenderscan.FilingCandidate, error) {
	return r.ResolveCandidatesFn(ctx, id)
}

// DocumentLocator is a mock implementation of tenderscan.DocumentLocator.
type DocumentLocator struct {
	LocateSubmissionURLFn func(ctx context.Context, detailURL string) (string, error)
}

func (l *DocumentLocator) LocateSubmissionURL(ctx context.Context, detailURL string) (string, error) {
	return l.LocateSubmissionURLFn(ctx, detailURL)
}
