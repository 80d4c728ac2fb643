// Package difflib renders unified diffs of regenerated target files.
package difflib

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a unified diff turning before into after, labelled with
// path. Returns an empty string when the texts are equal.
func Unified(path, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
}
