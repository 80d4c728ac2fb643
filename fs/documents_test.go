package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/enumgen"
	"github.com/fwojciec/enumgen/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDocumentDir(t *testing.T) {
	t.Parallel()

	t.Run("opens existing directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		d, err := fs.OpenDocumentDir(dir)

		require.NoError(t, err)
		assert.Equal(t, dir, d.Dir())
	})

	t.Run("returns not found for missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.OpenDocumentDir(filepath.Join(t.TempDir(), "missing"))

		assert.Equal(t, enumgen.ENOTFOUND, enumgen.ErrorCode(err))
	})

	t.Run("returns invalid for a regular file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file.html")
		require.NoError(t, os.WriteFile(path, []byte("<html/>"), 0644))

		_, err := fs.OpenDocumentDir(path)

		assert.Equal(t, enumgen.EINVALID, enumgen.ErrorCode(err))
	})
}

func TestDocumentDir_ReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("reads page contents", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "libxml-xmlerror.html"), []byte("<html>errors</html>"), 0644))
		d, err := fs.OpenDocumentDir(dir)
		require.NoError(t, err)

		got, err := d.ReadDocument(context.Background(), "libxml-xmlerror.html")

		require.NoError(t, err)
		assert.Equal(t, "<html>errors</html>", got)
	})

	t.Run("returns not found for missing page", func(t *testing.T) {
		t.Parallel()

		d, err := fs.OpenDocumentDir(t.TempDir())
		require.NoError(t, err)

		_, err = d.ReadDocument(context.Background(), "libxml-relaxng.html")

		assert.Equal(t, enumgen.ENOTFOUND, enumgen.ErrorCode(err))
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		t.Parallel()

		d, err := fs.OpenDocumentDir(t.TempDir())
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = d.ReadDocument(ctx, "libxml-xmlerror.html")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
