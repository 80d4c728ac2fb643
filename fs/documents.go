// Package fs provides file-based access to documentation pages and
// generated target files.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/enumgen"
)

// Ensure DocumentDir implements enumgen.DocumentSource at compile time.
var _ enumgen.DocumentSource = (*DocumentDir)(nil)

// DocumentDir reads documentation pages from a directory.
type DocumentDir struct {
	dir string
}

// OpenDocumentDir returns a DocumentDir for dir.
// Returns ENOTFOUND if dir does not exist and EINVALID if it is not a directory.
func OpenDocumentDir(dir string) (*DocumentDir, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, enumgen.Errorf(enumgen.ENOTFOUND, "documentation directory %q not found", dir)
	} else if err != nil {
		return nil, fmt.Errorf("stat documentation directory: %w", err)
	}
	if !info.IsDir() {
		return nil, enumgen.Errorf(enumgen.EINVALID, "%q is not a directory", dir)
	}
	return &DocumentDir{dir: dir}, nil
}

// Dir returns the directory pages are read from.
func (d *DocumentDir) Dir() string {
	return d.dir
}

// ReadDocument returns the contents of the named page.
func (d *DocumentDir) ReadDocument(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(filepath.Join(d.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return "", enumgen.Errorf(enumgen.ENOTFOUND, "document %q not found in %s", name, d.dir)
	} else if err != nil {
		return "", fmt.Errorf("reading document %q: %w", name, err)
	}
	return string(b), nil
}
