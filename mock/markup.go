package mock

import "github.com/fwojciec/tenderscan"

var (
	_ tenderscan.Element      = (*Element)(nil)
	_ tenderscan.Markup       = (*Markup)(nil)
	_ tenderscan.MarkupParser = (*MarkupParser)(nil)
)

// Element is a mock implementation of tenderscan.Element.
type Element struct {
	TextFn         func() string
	AttrFn         func(name string) (string, bool)
	NextSiblingsFn func(tag string) []tenderscan.Element
	NextMatchingFn func(tag string) (tenderscan.Element, bool)
}

func (e *Element) Text() string {
	return e.TextFn()
}

func (e *Element) Attr(name string) (string, bool) {
	return e.AttrFn(name)
}

func (e *Element) NextSiblings(tag string) []tenderscan.Element {
	return e.NextSiblingsFn(tag)
}

func (e *Element) NextMatching(tag string) (tenderscan.Element, bool) {
	return e.NextMatchingFn(tag)
}

// Markup is a mock implementation of tenderscan.Markup.
type Markup struct {
	FindByTagAndTextFn func(tag, text string) []tenderscan.Element
}

func (m *Markup) FindByTagAndText(tag, text string) []tenderscan.Element {
	return m.FindByTagAndTextFn(tag, text)
}

// MarkupParser is a mock implementation of tenderscan.MarkupParser.
type MarkupParser struct {
	ParseFn func(html string) (tenderscan.Markup, error)
}

func (p *MarkupParser) Parse(html string) (tenderscan.Markup, error) {
	return p.ParseFn(html)
}
