package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/tenderscan"
	"github.com/fwojciec/tenderscan/extract"
	"github.com/fwojciec/tenderscan/fs"
)

// Run executes the extract command. Records found before a cancellation
// are still written.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	ids, err := fs.OpenIdentifiers(c.Input, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Read %d identifiers\n", len(ids))

	progress := func(e extract.ProgressEvent) {
		switch e.Type {
		case extract.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", e.Identifier, tenderscan.ErrorMessage(e.Error))
		case extract.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s: %d filings\n", e.Completed, e.Total, e.Identifier, e.Records)
		}
	}

	result, extractErr := deps.Extractor.Extract(deps.Ctx, ids, progress)
	if extractErr != nil {
		fmt.Fprintf(deps.Stderr, "interrupted: %v; writing %d records found so far\n", extractErr, len(result.Records))
	}

	// Writes must complete even when the batch was cancelled, and every
	// writer gets the records even if an earlier one fails.
	ctx := context.WithoutCancel(deps.Ctx)
	var writeErrs []error
	for _, w := range deps.Writers {
		if err := w.WriteRecords(ctx, result.Records); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing records: %v\n", err)
			writeErrs = append(writeErrs, err)
		}
	}
	if err := errors.Join(writeErrs...); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d records (%d of %d identifiers failed)\n",
		len(result.Records), result.Failed, len(ids))

	return extractErr
}
