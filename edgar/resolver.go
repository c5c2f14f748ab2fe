package edgar

import (
	"context"

	"github.com/fwojciec/tenderscan"
)

// Ensure IndexResolver implements tenderscan.IndexResolver at compile time.
var _ tenderscan.IndexResolver = (*IndexResolver)(nil)

// IndexResolver finds filings of one form type on the EDGAR company browse
// page.
type IndexResolver struct {
	fetcher tenderscan.Fetcher
	parser  tenderscan.MarkupParser
	config  config
}

// NewIndexResolver creates a new IndexResolver.
func NewIndexResolver(fetcher tenderscan.Fetcher, parser tenderscan.MarkupParser, opts ...Option) *IndexResolver {
	return &IndexResolver{
		fetcher: fetcher,
		parser:  parser,
		config:  newConfig(opts),
	}
}

// ResolveCandidates fetches the index page for id and returns a candidate
// for each cell whose text is the form type. The candidate's detail URL is
// the first link after that cell.
func (r *IndexResolver) ResolveCandidates(ctx context.Context, id tenderscan.Identifier) ([]*tenderscan.FilingCandidate, error) {
	indexURL := IndexURL(r.config.host, id, r.config.formType, r.config.count)

	body, err := r.fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, tenderscan.Wrapf(tenderscan.EFETCH, err, "fetch index for %s", id)
	}

	doc, err := r.parser.Parse(body)
	if err != nil {
		return nil, tenderscan.Wrapf(tenderscan.EMISMATCH, err, "parse index for %s", id)
	}

	markers := doc.FindByTagAndText("td", r.config.formType)
	candidates := make([]*tenderscan.FilingCandidate, 0, len(markers))
	for i, marker := range markers {
		detailURL, err := followLink(r.config.host, marker)
		if tenderscan.ErrorCode(err) == tenderscan.EMISMATCH {
			return nil, tenderscan.Wrapf(tenderscan.EMISMATCH, err, "index row %d for %s", i+1, id)
		} else if err != nil {
			return nil, err
		}
		candidates = append(candidates, &tenderscan.FilingCandidate{
			Identifier: id,
			DetailURL:  detailURL,
			Entry: &tenderscan.FilingIndexEntry{
				Identifier: id,
				Marker:     marker,
			},
		})
	}

	return candidates, nil
}
