package tenderscan

import "context"

// Fetcher retrieves the raw body of a URL.
type Fetcher interface {
	// Fetch issues a GET for the URL and returns the response body.
	// Network failures and non-2xx responses are reported as EFETCH.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
