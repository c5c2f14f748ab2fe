// Package edgar resolves SEC EDGAR company filing index pages and filing
// detail pages into filing candidates and submission text URLs.
package edgar

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/tenderscan"
)

// DefaultHost is the EDGAR host that relative links are resolved against.
const DefaultHost = "https://www.sec.gov/"

// FormTenderOffer is the form type of issuer tender offer statements.
const FormTenderOffer = "SC TO-I"

// DefaultCount is the maximum number of filings requested per index page.
const DefaultCount = 100

// SubmissionMarker is the text of the detail page cell that precedes the
// link to the complete submission text file.
const SubmissionMarker = "Complete submission text file"

// IndexURL returns the company browse URL listing up to count filings of
// formType for id. A host without a trailing slash is treated as if it had one.
func IndexURL(host string, id tenderscan.Identifier, formType string, count int) string {
	return fmt.Sprintf("%scgi-bin/browse-edgar?action=getcompany&CIK=%s&type=%s&dateb=&owner=exclude&count=%d",
		withTrailingSlash(host), url.QueryEscape(string(id)), url.QueryEscape(formType), count)
}

func withTrailingSlash(host string) string {
	if strings.HasSuffix(host, "/") {
		return host
	}
	return host + "/"
}

// ResolveURL resolves href against host. Absolute hrefs are returned as is.
func ResolveURL(host, href string) (string, error) {
	base, err := url.Parse(host)
	if err != nil {
		return "", tenderscan.Errorf(tenderscan.EINVALID, "invalid host %q: %v", host, err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", tenderscan.Errorf(tenderscan.EMISMATCH, "invalid link %q: %v", href, err)
	}
	return base.ResolveReference(ref).String(), nil
}

// followLink returns the absolute URL of the first anchor after marker.
func followLink(host string, marker tenderscan.Element) (string, error) {
	a, ok := marker.NextMatching("a")
	if !ok {
		return "", tenderscan.Errorf(tenderscan.EMISMATCH, "no link after %q cell", marker.Text())
	}
	href, ok := a.Attr("href")
	if !ok || href == "" {
		return "", tenderscan.Errorf(tenderscan.EMISMATCH, "link after %q cell has no href", marker.Text())
	}
	return ResolveURL(host, href)
}

// Option configures IndexResolver and DocumentLocator.
type Option func(*config)

type config struct {
	host     string
	formType string
	count    int
}

func newConfig(opts []Option) config {
	c := config{
		host:     DefaultHost,
		formType: FormTenderOffer,
		count:    DefaultCount,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithHost sets the host queries are sent to and links are resolved
// against. Defaults to DefaultHost.
func WithHost(host string) Option {
	return func(c *config) {
		c.host = host
	}
}

// WithFormType sets the form type to search for. Defaults to FormTenderOffer.
func WithFormType(formType string) Option {
	return func(c *config) {
		c.formType = formType
	}
}

// WithCount sets the maximum number of index results. Defaults to DefaultCount.
func WithCount(n int) Option {
	return func(c *config) {
		c.count = n
	}
}
