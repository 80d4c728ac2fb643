// Package etree extracts enum listings from well-formed XHTML documentation.
// etree keeps the character data following an element as its tail, which
// is where generated API docs put member values.
package etree

import (
	"encoding/xml"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/enumgen"
)

// Ensure Extractor implements enumgen.Extractor at compile time.
var _ enumgen.Extractor = (*Extractor)(nil)

// Extractor finds enum listings in XHTML using an etree path.
type Extractor struct {
	path   etree.Path
	marker string
}

// NewExtractor compiles path and creates an Extractor that considers the
// matching elements whose text contains marker.
func NewExtractor(path, marker string) (*Extractor, error) {
	p, err := etree.CompilePath(path)
	if err != nil {
		return nil, enumgen.Errorf(enumgen.EINVALID, "invalid block path %q: %v", path, err)
	}
	return &Extractor{path: p, marker: marker}, nil
}

// Extract parses XHTML and returns the completely parsed allowlisted enums.
func (e *Extractor) Extract(document string, allowed func(name string) bool) (*enumgen.ExtractResult, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	doc.ReadSettings.Entity = xml.HTMLEntity
	if err := doc.ReadFromString(document); err != nil {
		return nil, enumgen.Errorf(enumgen.EINVALID, "failed to parse XHTML: %v", err)
	}

	result := &enumgen.ExtractResult{}
	for _, block := range doc.FindElementsPath(e.path) {
		text := flatten(block)
		if !strings.Contains(text, e.marker) {
			continue
		}
		name, ok := enumgen.ParseEnumHeader(text)
		if !ok || !allowed(name) {
			continue
		}

		b := enumgen.NewEnumBuilder(name)
		for _, child := range block.ChildElements() {
			if !b.Add(flatten(child), child.Tail()) {
				break
			}
		}
		b.Finish(result)
	}

	return result, nil
}

// flatten returns the character data of e and all of its descendants.
func flatten(e *etree.Element) string {
	var b strings.Builder
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, t := range e.Child {
			switch t := t.(type) {
			case *etree.CharData:
				b.WriteString(t.Data)
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(e)
	return b.String()
}
