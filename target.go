package enumgen

import "context"

// TargetStore reads and replaces generated target files.
type TargetStore interface {
	// ReadTarget returns the current file contents.
	// Returns ENOTFOUND if the file does not exist.
	ReadTarget(ctx context.Context, path string) (string, error)

	// WriteTarget replaces the file with content as a single atomic step.
	// It reports false, and leaves the file untouched, when content is
	// identical to what is already stored.
	WriteTarget(ctx context.Context, path, content string) (bool, error)
}
