// Package extract drives the filing pipeline over a batch of identifiers.
// Each identifier is resolved, located, and filtered to completion before
// the next one starts, and a failure is confined to the identifier that
// caused it.
package extract

import (
	"context"

	"github.com/fwojciec/tenderscan"
)

// Extractor runs the filing pipeline for a list of identifiers.
type Extractor struct {
	Resolver tenderscan.IndexResolver
	Locator  tenderscan.DocumentLocator
	Fetcher  tenderscan.Fetcher

	// FilterByOddLot keeps only filings whose complete submission text
	// mentions an odd lot. When false, every resolved filing is accepted and
	// neither Locator nor Fetcher is used.
	FilterByOddLot bool
}

// Outcome is the result of processing one identifier.
type Outcome struct {
	Identifier tenderscan.Identifier
	Records    []*tenderscan.FilingRecord
	// Err is set when the identifier was abandoned. Records is then empty.
	Err error
}

// Result holds the outcome of a batch.
type Result struct {
	// Records holds accepted records in identifier order, then index order.
	Records  []*tenderscan.FilingRecord
	Outcomes []Outcome
	Failed   int
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type       ProgressType
	Completed  int
	Total      int
	Identifier tenderscan.Identifier
	Records    int
	Error      error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Extract processes ids in order. Identifier failures are recorded in the
// returned outcomes and never stop the batch. The only error returned is
// the context's, in which case the result holds everything accumulated
// before cancellation.
func (e *Extractor) Extract(ctx context.Context, ids []tenderscan.Identifier, progress ProgressFunc) (*Result, error) {
	result := &Result{}
	total := len(ids)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outcome := e.ExtractIdentifier(ctx, id)

		// A failure caused by cancellation says nothing about the identifier.
		if outcome.Err != nil && ctx.Err() != nil {
			return result, ctx.Err()
		}

		result.Outcomes = append(result.Outcomes, outcome)
		result.Records = append(result.Records, outcome.Records...)

		if progress != nil {
			event := ProgressEvent{
				Type:       ProgressCompleted,
				Completed:  i + 1,
				Total:      total,
				Identifier: id,
				Records:    len(outcome.Records),
			}
			if outcome.Err != nil {
				event.Type = ProgressFailed
				event.Error = outcome.Err
			}
			progress(event)
		}
		if outcome.Err != nil {
			result.Failed++
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
			Records:   len(result.Records),
		})
	}

	return result, nil
}

// ExtractIdentifier runs the pipeline for a single identifier. On failure
// the outcome carries the error and no records.
func (e *Extractor) ExtractIdentifier(ctx context.Context, id tenderscan.Identifier) Outcome {
	records, err := e.extract(ctx, id)
	if err != nil {
		return Outcome{Identifier: id, Err: err}
	}
	return Outcome{Identifier: id, Records: records}
}

func (e *Extractor) extract(ctx context.Context, id tenderscan.Identifier) ([]*tenderscan.FilingRecord, error) {
	candidates, err := e.Resolver.ResolveCandidates(ctx, id)
	if err != nil {
		return nil, err
	}

	var records []*tenderscan.FilingRecord
	for _, candidate := range candidates {
		if e.FilterByOddLot {
			doc, err := e.fetchSubmission(ctx, candidate)
			if err != nil {
				return nil, err
			}
			if !tenderscan.ContainsOddLotProvision(doc.Text) {
				continue
			}
		}

		date, err := tenderscan.ExtractFilingDate(candidate.Entry)
		if err != nil {
			return nil, err
		}

		records = append(records, &tenderscan.FilingRecord{
			Identifier: id,
			Date:       date,
			URL:        candidate.DetailURL,
		})
	}

	return records, nil
}

// fetchSubmission locates and downloads the candidate's complete submission
// text.
func (e *Extractor) fetchSubmission(ctx context.Context, candidate *tenderscan.FilingCandidate) (*tenderscan.SubmissionDocument, error) {
	url, err := e.Locator.LocateSubmissionURL(ctx, candidate.DetailURL)
	if err != nil {
		return nil, err
	}

	text, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, tenderscan.Wrapf(tenderscan.EFETCH, err, "fetch submission for %s", candidate.Identifier)
	}

	return &tenderscan.SubmissionDocument{
		Candidate: candidate,
		URL:       url,
		Text:      text,
	}, nil
}
