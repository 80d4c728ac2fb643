package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/enumgen"
	"github.com/fwojciec/enumgen/etree"
	"github.com/fwojciec/enumgen/fs"
	"github.com/fwojciec/enumgen/generate"
	"github.com/fwojciec/enumgen/goquery"
	enumslog "github.com/fwojciec/enumgen/slog"
	"github.com/fwojciec/enumgen/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config is used instead of loading one when set. For testing.
	Config *enumgen.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("enumgen"),
		kong.Description("Regenerate enum constant declarations and tables from HTML API documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no documentation path supplied. Run 'enumgen --help' for usage")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := m.loadConfig(cli.Config)
	if err != nil {
		return err
	}

	docs, err := fs.OpenDocumentDir(filepath.Join(cli.DocsPath, cfg.HTMLDir))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: pass the documentation root containing the "+cfg.HTMLDir+"/ directory")
		return err
	}

	extractor, err := newExtractor(cfg)
	if err != nil {
		return err
	}

	var targets enumgen.TargetStore = fs.NewTargetStore(cli.Root)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		extractor = enumslog.NewLoggingExtractor(extractor, logger)
		targets = enumslog.NewLoggingTargetStore(targets, logger)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Generator: &generate.Generator{
			Config:      cfg,
			Documents:   docs,
			Extractor:   extractor,
			Targets:     targets,
			Concurrency: cli.Concurrency,
		},
	}

	cmd := &GenerateCmd{
		Check:  cli.Check,
		Diff:   cli.Diff,
		DryRun: cli.DryRun,
	}

	return cmd.Run(deps)
}

func (m *Main) loadConfig(path string) (*enumgen.Config, error) {
	if m.Config != nil {
		return m.Config, m.Config.Validate()
	}
	if path == "" {
		return enumgen.DefaultConfig(), nil
	}
	return yaml.LoadConfig(path)
}

// newExtractor returns the extractor for the configured parser.
func newExtractor(cfg *enumgen.Config) (enumgen.Extractor, error) {
	switch cfg.Parser {
	case enumgen.ParserXHTML:
		return etree.NewExtractor(cfg.Path, cfg.Marker)
	default:
		return goquery.NewExtractor(cfg.Selector, cfg.Marker), nil
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string `short:"C" help:"YAML configuration file (default: built-in libxml2 error constants)"`
	Root        string `short:"r" default:"." help:"Directory target paths are relative to"`
	Check       bool   `help:"Write nothing and fail if any target is out of date"`
	Diff        bool   `short:"d" help:"Print a unified diff of each changed target"`
	DryRun      bool   `short:"n" name:"dry-run" help:"Render targets without writing them"`
	Verbose     bool   `short:"v" help:"Log extraction and file operations to stderr"`
	Concurrency int    `short:"c" default:"1" help:"Documents parsed concurrently"`
	DocsPath    string `arg:"" name:"docs-dir" help:"Path to the documentation root directory"`
}
