package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/enumgen"
	"github.com/fwojciec/enumgen/difflib"
	"github.com/fwojciec/enumgen/generate"
)

// ErrStale is returned by --check when a target needs regenerating.
var ErrStale = errors.New("generated targets are out of date")

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	write := !c.Check && !c.DryRun

	result, err := deps.Generator.Run(deps.Ctx, write, printProgress(deps.Stdout))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", enumgen.ErrorMessage(err))
		return err
	}

	for _, t := range result.Targets {
		if !t.Changed() {
			continue
		}
		if !write {
			fmt.Fprintf(deps.Stdout, "Would update file %s (%s -> %s)\n", t.Path, t.BeforeHash, t.AfterHash)
		}
		if c.Diff {
			diff, err := difflib.Unified(t.Path, t.Before, t.After)
			if err != nil {
				return fmt.Errorf("diffing %s: %w", t.Path, err)
			}
			fmt.Fprint(deps.Stdout, diff)
		}
	}

	if c.Check && result.Changed() {
		return ErrStale
	}

	fmt.Fprintln(deps.Stdout, "Done")
	return nil
}

// printProgress returns a ProgressFunc writing one line per event to w.
func printProgress(w io.Writer) generate.ProgressFunc {
	return func(e generate.ProgressEvent) {
		switch e.Type {
		case generate.ProgressReading:
			fmt.Fprintf(w, "Reading %s\n", e.Document)
		case generate.ProgressFoundEnum:
			fmt.Fprintf(w, "Found enum %s\n", e.Enum)
		case generate.ProgressIgnoredEnum:
			fmt.Fprintf(w, "Ignoring enum %s (failed to parse field '%s')\n", e.Enum, e.Member)
		case generate.ProgressSkippedEnum:
			fmt.Fprintf(w, "Skipping enum %s (not found in documentation)\n", e.Enum)
		case generate.ProgressUpdating:
			fmt.Fprintf(w, "Updating file %s\n", e.Path)
		case generate.ProgressUpToDate:
			fmt.Fprintf(w, "File %s is up to date\n", e.Path)
		}
	}
}
