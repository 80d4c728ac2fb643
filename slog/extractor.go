// Package slog provides logging decorators for enumgen services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/enumgen"
)

// Ensure LoggingExtractor implements enumgen.Extractor.
var _ enumgen.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   enumgen.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next enumgen.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(document string, allowed func(name string) bool) (result *enumgen.ExtractResult, err error) {
	defer func(begin time.Time) {
		var enums, failures int
		if result != nil {
			enums, failures = len(result.Enums), len(result.Failures)
		}
		e.logger.Info("extract enums",
			"bytes", len(document),
			"enums", enums,
			"failures", failures,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(document, allowed)
}
