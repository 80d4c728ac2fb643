package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/enumgen"
)

// Ensure LoggingTargetStore implements enumgen.TargetStore.
var _ enumgen.TargetStore = (*LoggingTargetStore)(nil)

// LoggingTargetStore wraps a TargetStore with debug logging.
type LoggingTargetStore struct {
	next   enumgen.TargetStore
	logger *slog.Logger
}

// NewLoggingTargetStore creates a new LoggingTargetStore.
func NewLoggingTargetStore(next enumgen.TargetStore, logger *slog.Logger) *LoggingTargetStore {
	return &LoggingTargetStore{next: next, logger: logger}
}

// ReadTarget delegates to the wrapped store and logs the operation.
func (s *LoggingTargetStore) ReadTarget(ctx context.Context, path string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read target",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadTarget(ctx, path)
}

// WriteTarget delegates to the wrapped store and logs the operation.
func (s *LoggingTargetStore) WriteTarget(ctx context.Context, path, content string) (written bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("write target",
			"path", path,
			"bytes", len(content),
			"written", written,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteTarget(ctx, path, content)
}
