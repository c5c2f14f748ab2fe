package tenderscan

// Element is a single element of a parsed markup document.
type Element interface {
	// Text returns the combined text of the element and its descendants.
	Text() string

	// Attr returns the value of the named attribute.
	Attr(name string) (value string, ok bool)

	// NextSiblings returns the element's following siblings with the given
	// tag name, in document order.
	NextSiblings(tag string) []Element

	// NextMatching returns the first element with the given tag name that
	// follows this element's start tag in document order. Descendants of
	// the element count as following it.
	NextMatching(tag string) (Element, bool)
}

// Markup is a parsed, queryable markup document.
type Markup interface {
	// FindByTagAndText returns all elements with the given tag name whose
	// text equals text exactly, in document order.
	FindByTagAndText(tag, text string) []Element
}

// MarkupParser parses raw HTML into a queryable document.
type MarkupParser interface {
	Parse(html string) (Markup, error)
}
