package mock

import (
	"context"

	"github.com/fwojciec/enumgen"
)

var _ enumgen.TargetStore = (*TargetStore)(nil)

// TargetStore is a mock implementation of enumgen.TargetStore.
type TargetStore struct {
	ReadTargetFn  func(ctx context.Context, path string) (string, error)
	WriteTargetFn func(ctx context.Context, path, content string) (bool, error)
}

func (s *TargetStore) ReadTarget(ctx context.Context, path string) (string, error) {
	return s.ReadTargetFn(ctx, path)
}

func (s *TargetStore) WriteTarget(ctx context.Context, path, content string) (bool, error) {
	return s.WriteTargetFn(ctx, path, content)
}
