// Package generate runs the enum generation pipeline. It coordinates
// reading documentation pages, extracting enums, rendering both target
// formats and replacing the generated region of each target file.
package generate

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/enumgen"
	"golang.org/x/sync/errgroup"
)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// Generator regenerates the declaration and table targets of a Config.
// Documents are read one at a time unless Concurrency is greater than one.
type Generator struct {
	Config      *enumgen.Config
	Documents   enumgen.DocumentSource
	Extractor   enumgen.Extractor
	Targets     enumgen.TargetStore
	Concurrency int
}

// Result holds the outcome of a generation run.
type Result struct {
	// Enums maps enum names to their last successfully parsed listing.
	Enums map[string]*enumgen.Enum

	// Failures lists the abandoned enums in document order.
	Failures []enumgen.ParseFailure

	// Skipped lists configured enums left out of both targets because no
	// document yielded a complete listing for them.
	Skipped []string

	// Targets holds the declarations target followed by the table target.
	Targets []*Target
}

// Changed reports whether any target differs from its regenerated text.
func (r *Result) Changed() bool {
	for _, t := range r.Targets {
		if t.Changed() {
			return true
		}
	}
	return false
}

// Target is one regenerated file.
type Target struct {
	Path   string
	Before string
	After  string

	// BeforeHash and AfterHash are content hashes of Before and After,
	// reported so a stale target can be matched to the run that checked it.
	BeforeHash string
	AfterHash  string

	// Written is set once After has replaced the file on disk.
	Written bool
}

// Changed reports whether regeneration altered the file contents.
func (t *Target) Changed() bool {
	return t.Before != t.After
}

// ProgressEvent reports progress during a generation run.
type ProgressEvent struct {
	Type     ProgressType
	Document string
	Enum     string
	Member   string
	Path     string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressReading ProgressType = iota
	ProgressFoundEnum
	ProgressIgnoredEnum
	ProgressSkippedEnum
	ProgressUpdating
	ProgressUpToDate
)

// ProgressFunc is a callback for reporting generation progress.
type ProgressFunc func(event ProgressEvent)

// Run extracts, renders and splices every target. When write is false
// nothing is written and the result only describes what would change.
// Targets are written only after both have rendered and spliced cleanly.
func (g *Generator) Run(ctx context.Context, write bool, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	enums, failures, err := g.Extract(ctx, progress)
	if err != nil {
		return nil, err
	}

	skipped := enumgen.MissingEnums(g.Config.Enums, enums)
	for _, name := range skipped {
		progress(ProgressEvent{Type: ProgressSkippedEnum, Enum: name})
	}

	targets, err := g.Render(ctx, enums)
	if err != nil {
		return nil, err
	}

	result := &Result{Enums: enums, Failures: failures, Skipped: skipped, Targets: targets}
	if !write {
		return result, nil
	}

	for _, t := range targets {
		if !t.Changed() {
			progress(ProgressEvent{Type: ProgressUpToDate, Path: t.Path})
			continue
		}
		progress(ProgressEvent{Type: ProgressUpdating, Path: t.Path})
		written, err := g.Targets.WriteTarget(ctx, t.Path, t.After)
		if err != nil {
			return nil, fmt.Errorf("updating %s: %w", t.Path, err)
		}
		t.Written = written
	}

	return result, nil
}

// Extract reads the configured documents and returns the parsed enums by
// name. Documents are merged and reported in configuration order, so an
// enum found in several documents keeps its last parse. A document's
// progress is reported as soon as it and every document before it are done,
// and reporting stops after the first document that fails.
func (g *Generator) Extract(ctx context.Context, progress ProgressFunc) (map[string]*enumgen.Enum, []enumgen.ParseFailure, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	concurrency := g.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	docs := g.Config.Documents
	results := make([]*enumgen.ExtractResult, len(docs))
	done := make([]chan struct{}, len(docs))
	for i := range done {
		done[i] = make(chan struct{})
	}

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	launched := make(chan struct{})
	go func() {
		defer close(launched)
		for i, doc := range docs {
			eg.Go(func() error {
				defer close(done[i])
				content, err := g.Documents.ReadDocument(egctx, doc.File)
				if err != nil {
					return err
				}
				r, err := g.Extractor.Extract(content, g.Config.Allowlist(doc))
				if err != nil {
					return fmt.Errorf("extracting %s: %w", doc.File, err)
				}
				if r == nil {
					r = &enumgen.ExtractResult{}
				}
				results[i] = r
				return nil
			})
		}
	}()

	enums := make(map[string]*enumgen.Enum)
	var failures []enumgen.ParseFailure
	for i, doc := range docs {
		<-done[i]
		progress(ProgressEvent{Type: ProgressReading, Document: doc.File})
		r := results[i]
		if r == nil {
			break
		}
		for _, e := range r.Enums {
			progress(ProgressEvent{Type: ProgressFoundEnum, Document: doc.File, Enum: e.Name})
			enums[e.Name] = e
		}
		for _, f := range r.Failures {
			progress(ProgressEvent{Type: ProgressFoundEnum, Document: doc.File, Enum: f.Enum})
			progress(ProgressEvent{Type: ProgressIgnoredEnum, Document: doc.File, Enum: f.Enum, Member: f.Member})
			failures = append(failures, f)
		}
	}
	<-launched
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	return enums, failures, nil
}

// Render produces the new contents of the declarations and table targets
// without writing them. Configured enums missing from enums are left out
// of both. Returns EMALFORMED if a target lacks a well-formed generated region.
func (g *Generator) Render(ctx context.Context, enums map[string]*enumgen.Enum) ([]*Target, error) {
	cfg := g.Config

	declarations := enumgen.RenderDeclarations(cfg.Declarations.Header, cfg.Enums, enums)
	table := enumgen.RenderTable(cfg.Enums, enums)

	bodies := []struct {
		path  string
		lines []string
	}{
		{cfg.Declarations.Path, declarations},
		{cfg.Table.Path, table},
	}

	notice := enumgen.Notice(cfg.Markers.Comment, cfg.Generator)
	targets := make([]*Target, 0, len(bodies))
	for _, b := range bodies {
		before, err := g.Targets.ReadTarget(ctx, b.path)
		if err != nil {
			return nil, err
		}
		region, err := enumgen.ParseRegion(before, cfg.Markers)
		if err != nil {
			return nil, enumgen.Errorf(enumgen.ErrorCode(err), "%s: %s", b.path, enumgen.ErrorMessage(err))
		}
		after := region.Splice(notice, b.lines)
		targets = append(targets, &Target{
			Path:       b.path,
			Before:     before,
			After:      after,
			BeforeHash: ComputeHash(before),
			AfterHash:  ComputeHash(after),
		})
	}

	return targets, nil
}
