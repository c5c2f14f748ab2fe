package tenderscan

import "strings"

// Identifier names an SEC filer (a CIK). It is an opaque token and is never
// interpreted numerically, so leading zeros are significant.
type Identifier string

// ParseIdentifier trims surrounding whitespace from s and returns it as an
// Identifier. Returns EINVALID if nothing remains.
func ParseIdentifier(s string) (Identifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", Errorf(EINVALID, "identifier required")
	}
	return Identifier(s), nil
}

// Quote wraps the identifier in quote on both sides. An empty quote returns
// the bare identifier.
func (id Identifier) Quote(quote string) string {
	return quote + string(id) + quote
}
