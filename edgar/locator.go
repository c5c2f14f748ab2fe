package edgar

import (
	"context"

	"github.com/fwojciec/tenderscan"
)

// Ensure DocumentLocator implements tenderscan.DocumentLocator at compile time.
var _ tenderscan.DocumentLocator = (*DocumentLocator)(nil)

// DocumentLocator finds the complete submission text file on an EDGAR
// filing detail page.
type DocumentLocator struct {
	fetcher tenderscan.Fetcher
	parser  tenderscan.MarkupParser
	config  config
}

// NewDocumentLocator creates a new DocumentLocator. Only WithHost affects
// its behavior.
func NewDocumentLocator(fetcher tenderscan.Fetcher, parser tenderscan.MarkupParser, opts ...Option) *DocumentLocator {
	return &DocumentLocator{
		fetcher: fetcher,
		parser:  parser,
		config:  newConfig(opts),
	}
}

// LocateSubmissionURL fetches the detail page and returns the link that
// follows the SubmissionMarker cell.
func (l *DocumentLocator) LocateSubmissionURL(ctx context.Context, detailURL string) (string, error) {
	body, err := l.fetcher.Fetch(ctx, detailURL)
	if err != nil {
		return "", tenderscan.Wrapf(tenderscan.EFETCH, err, "fetch detail page")
	}

	doc, err := l.parser.Parse(body)
	if err != nil {
		return "", tenderscan.Wrapf(tenderscan.EMISMATCH, err, "parse detail page %s", detailURL)
	}

	markers := doc.FindByTagAndText("td", SubmissionMarker)
	if len(markers) == 0 {
		return "", tenderscan.Errorf(tenderscan.EMISMATCH, "no %q cell on %s", SubmissionMarker, detailURL)
	}

	submissionURL, err := followLink(l.config.host, markers[0])
	if tenderscan.ErrorCode(err) == tenderscan.EMISMATCH {
		return "", tenderscan.Wrapf(tenderscan.EMISMATCH, err, "detail page %s", detailURL)
	} else if err != nil {
		return "", err
	}
	return submissionURL, nil
}
