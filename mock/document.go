package mock

import (
	"context"

	"github.com/fwojciec/enumgen"
)

var _ enumgen.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of enumgen.DocumentSource.
type DocumentSource struct {
	ReadDocumentFn func(ctx context.Context, name string) (string, error)
}

func (s *DocumentSource) ReadDocument(ctx context.Context, name string) (string, error) {
	return s.ReadDocumentFn(ctx, name)
}
