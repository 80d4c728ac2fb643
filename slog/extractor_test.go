package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/enumgen"
	"github.com/fwojciec/enumgen/mock"
	enumslog "github.com/fwojciec/enumgen/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs enum and failure counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &enumgen.ExtractResult{
			Enums:    []*enumgen.Enum{{Name: "xmlErrorLevel"}, {Name: "xmlErrorDomain"}},
			Failures: []enumgen.ParseFailure{{Enum: "xmlParserErrors", Member: "XML_ERR_OK"}},
		}
		inner := &mock.Extractor{
			ExtractFn: func(document string, allowed func(string) bool) (*enumgen.ExtractResult, error) {
				return want, nil
			},
		}

		e := enumslog.NewLoggingExtractor(inner, logger)
		got, err := e.Extract("<html></html>", func(string) bool { return true })

		require.NoError(t, err)
		assert.Equal(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "extract enums")
		assert.Contains(t, output, "bytes=13")
		assert.Contains(t, output, "enums=2")
		assert.Contains(t, output, "failures=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(document string, allowed func(string) bool) (*enumgen.ExtractResult, error) {
				return nil, errors.New("parse failed")
			},
		}

		e := enumslog.NewLoggingExtractor(inner, logger)
		_, err := e.Extract("<", func(string) bool { return true })

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="parse failed"`)
		assert.Contains(t, buf.String(), "enums=0")
	})
}
