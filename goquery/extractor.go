// Package goquery extracts enum listings from HTML documentation using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/enumgen"
	"golang.org/x/net/html"
)

// Ensure Extractor implements enumgen.Extractor at compile time.
var _ enumgen.Extractor = (*Extractor)(nil)

// Extractor finds enum listings in HTML using a CSS selector.
type Extractor struct {
	selector string
	marker   string
}

// NewExtractor creates an Extractor that considers elements matching selector
// whose text contains marker.
func NewExtractor(selector, marker string) *Extractor {
	return &Extractor{selector: selector, marker: marker}
}

// Extract parses HTML and returns the completely parsed allowlisted enums.
// Each child element of a listing names a member; the text trailing the
// child carries its value and description.
func (e *Extractor) Extract(document string, allowed func(name string) bool) (*enumgen.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, enumgen.Errorf(enumgen.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &enumgen.ExtractResult{}
	doc.Find(e.selector).Each(func(_ int, sel *goquery.Selection) {
		text := sel.Text()
		if !strings.Contains(text, e.marker) {
			return
		}
		name, ok := enumgen.ParseEnumHeader(text)
		if !ok || !allowed(name) {
			return
		}

		b := enumgen.NewEnumBuilder(name)
		sel.Children().EachWithBreak(func(_ int, child *goquery.Selection) bool {
			return b.Add(child.Text(), tailText(child.Nodes[0]))
		})
		b.Finish(result)
	})

	return result, nil
}

// tailText returns the text between the end of n and the next node that is
// not text, such as an element or a comment.
func tailText(n *html.Node) string {
	var b strings.Builder
	for s := n.NextSibling; s != nil && s.Type == html.TextNode; s = s.NextSibling {
		b.WriteString(s.Data)
	}
	return b.String()
}
