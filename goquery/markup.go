// Package goquery implements tenderscan.MarkupParser on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tenderscan"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var (
	_ tenderscan.MarkupParser = (*Parser)(nil)
	_ tenderscan.Markup       = (*Document)(nil)
	_ tenderscan.Element      = (*Element)(nil)
)

// Parser parses HTML into goquery-backed documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw HTML. The HTML5 parser recovers from most malformed
// input, so an error here means the input could not be read at all.
func (p *Parser) Parse(s string) (tenderscan.Markup, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil, tenderscan.Errorf(tenderscan.EMISMATCH, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document is a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// FindByTagAndText returns every element named tag whose text is exactly
// text. No whitespace normalization is applied.
func (d *Document) FindByTagAndText(tag, text string) []tenderscan.Element {
	var elems []tenderscan.Element
	d.doc.Find(strings.ToLower(tag)).Each(func(_ int, sel *goquery.Selection) {
		if sel.Text() == text {
			elems = append(elems, &Element{doc: d.doc, sel: sel})
		}
	})
	return elems
}

// Element wraps a single-node selection.
type Element struct {
	doc *goquery.Document
	sel *goquery.Selection
}

// Text returns the text of the element and its descendants.
func (e *Element) Text() string {
	return e.sel.Text()
}

// Attr returns the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// NextSiblings returns the following siblings named tag.
func (e *Element) NextSiblings(tag string) []tenderscan.Element {
	var elems []tenderscan.Element
	e.sel.NextAllFiltered(strings.ToLower(tag)).Each(func(_ int, sel *goquery.Selection) {
		elems = append(elems, &Element{doc: e.doc, sel: sel})
	})
	return elems
}

// NextMatching walks the document in order from the element's start tag and
// returns the first element named tag. The element's own descendants are
// visited before anything after its end tag.
func (e *Element) NextMatching(tag string) (tenderscan.Element, bool) {
	if e.sel.Length() == 0 {
		return nil, false
	}
	tag = strings.ToLower(tag)
	for n := nextNode(e.sel.Get(0)); n != nil; n = nextNode(n) {
		if n.Type == html.ElementNode && n.Data == tag {
			return &Element{doc: e.doc, sel: e.doc.FindNodes(n)}, true
		}
	}
	return nil, false
}

// nextNode returns the node after n in document order.
func nextNode(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}
