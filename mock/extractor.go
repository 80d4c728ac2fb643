package mock

import "github.com/fwojciec/enumgen"

var _ enumgen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of enumgen.Extractor.
type Extractor struct {
	ExtractFn func(document string, allowed func(name string) bool) (*enumgen.ExtractResult, error)
}

func (e *Extractor) Extract(document string, allowed func(name string) bool) (*enumgen.ExtractResult, error) {
	return e.ExtractFn(document, allowed)
}
