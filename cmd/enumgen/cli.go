package main

import (
	"context"
	"io"

	"github.com/fwojciec/enumgen/generate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Generator *generate.Generator
}

// GenerateCmd regenerates the configured targets.
type GenerateCmd struct {
	Check  bool
	Diff   bool
	DryRun bool
}
