package enumgen

import "context"

// DocumentSource reads documentation pages by file name.
type DocumentSource interface {
	// ReadDocument returns the page contents.
	// Returns ENOTFOUND if the page does not exist.
	ReadDocument(ctx context.Context, name string) (string, error)
}
