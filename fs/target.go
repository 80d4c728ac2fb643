package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/enumgen"
)

// Ensure TargetStore implements enumgen.TargetStore at compile time.
var _ enumgen.TargetStore = (*TargetStore)(nil)

// TargetStore reads and atomically replaces target files.
// Relative paths are resolved against the base directory.
type TargetStore struct {
	baseDir string
}

// NewTargetStore creates a TargetStore rooted at baseDir.
func NewTargetStore(baseDir string) *TargetStore {
	return &TargetStore{baseDir: baseDir}
}

func (s *TargetStore) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.baseDir, path)
}

// ReadTarget returns the contents of the target file.
func (s *TargetStore) ReadTarget(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(s.resolve(path))
	if errors.Is(err, os.ErrNotExist) {
		return "", enumgen.Errorf(enumgen.ENOTFOUND, "target file %q not found", path)
	} else if err != nil {
		return "", fmt.Errorf("reading target %q: %w", path, err)
	}
	return string(b), nil
}

// WriteTarget writes content to a temporary file next to the target and
// renames it over the target. Files already holding content are left
// untouched.
func (s *TargetStore) WriteTarget(ctx context.Context, path, content string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fullPath := s.resolve(path)
	mode := os.FileMode(0644)
	if old, err := os.ReadFile(fullPath); err == nil {
		if string(old) == content {
			return false, nil
		}
		if info, err := os.Stat(fullPath); err == nil {
			mode = info.Mode().Perm()
		}
	}

	dir := filepath.Dir(fullPath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return false, fmt.Errorf("creating temporary file for %q: %w", path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once renamed

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return false, fmt.Errorf("writing %q: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return false, fmt.Errorf("syncing %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("closing %q: %w", path, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return false, fmt.Errorf("setting mode of %q: %w", path, err)
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		return false, fmt.Errorf("replacing %q: %w", path, err)
	}
	return true, nil
}
