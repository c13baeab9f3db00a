/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate runs the whole pipeline: it locates and parses the token
// document, classifies its tokens, renders the Kotlin artifacts and writes them.
package generate

import (
	"context"
	"fmt"
	"path/filepath"

	"bennypowers.dev/composetokens/config"
	"bennypowers.dev/composetokens/emit"
	"bennypowers.dev/composetokens/emit/color"
	"bennypowers.dev/composetokens/emit/spacing"
	"bennypowers.dev/composetokens/emit/typography"
	"bennypowers.dev/composetokens/fs"
	"bennypowers.dev/composetokens/parser"
	"bennypowers.dev/composetokens/walker"
)

// Options configures a run.
type Options struct {
	// Root is the directory relative paths are resolved against. Defaults to ".".
	Root string

	// Input is the token document path. When empty, the config's input
	// candidates are searched.
	Input string

	// Config supplies output location, package, token set and color handling.
	// Defaults to config.Default().
	Config *config.Config

	// DryRun renders the artifacts without writing them.
	DryRun bool
}

func (o Options) root() string {
	if o.Root == "" {
		return "."
	}
	return o.Root
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}

// Report describes a completed run.
type Report struct {
	// Input is the token document that was read.
	Input string

	// Result holds the classified tokens and warnings.
	Result *walker.Result

	// Artifacts are the rendered files, in color, typography, spacing order.
	Artifacts []emit.Artifact

	// Paths are the destinations of Artifacts, index for index.
	Paths []string

	// Written lists the paths written, empty for a dry run.
	Written []string
}

// Run executes the pipeline once. Every fatal error happens before the first
// file is written; per-token problems are reported in Report.Result.Warnings.
func Run(ctx context.Context, filesystem fs.FileSystem, opts Options) (*Report, error) {
	input, err := ResolveInput(filesystem, opts)
	if err != nil {
		return nil, err
	}

	report, err := Analyze(filesystem, input, opts)
	if err != nil {
		return nil, err
	}

	cfg := opts.config()
	report.Artifacts, err = Render(report.Result, cfg.EmitOptions())
	if err != nil {
		return nil, err
	}

	outputDir := cfg.OutputDir
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(opts.root(), outputDir)
	}
	pkg := cfg.EmitOptions().PackageName()
	for _, artifact := range report.Artifacts {
		report.Paths = append(report.Paths, filepath.Join(outputDir, filepath.FromSlash(artifact.Path(pkg))))
	}

	if opts.DryRun {
		return report, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, artifact := range report.Artifacts {
		path := report.Paths[i]
		if err := filesystem.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return report, fmt.Errorf("error creating directory for %s: %w", path, err)
		}
		if err := filesystem.WriteFile(path, artifact.Content, 0644); err != nil {
			return report, fmt.Errorf("error writing to %s: %w", path, err)
		}
		report.Written = append(report.Written, path)
	}

	return report, nil
}

// ResolveInput returns the explicit input or the first existing config candidate.
func ResolveInput(filesystem fs.FileSystem, opts Options) (string, error) {
	if opts.Input != "" {
		if filepath.IsAbs(opts.Input) {
			return opts.Input, nil
		}
		return filepath.Join(opts.root(), opts.Input), nil
	}
	return Locate(filesystem, opts.root(), opts.config().Input)
}

// Locate returns the first candidate that exists under root. Candidates may
// be doublestar globs, in which case the first match in lexical order wins.
func Locate(filesystem fs.FileSystem, root string, candidates []string) (string, error) {
	cfg := config.Config{Input: candidates}
	return cfg.ResolveInput(filesystem, root)
}

// Analyze parses and walks the document at input without rendering.
func Analyze(filesystem fs.FileSystem, input string, opts Options) (*Report, error) {
	doc, err := parser.ParseFile(filesystem, input)
	if err != nil {
		return nil, err
	}

	result, err := walker.Walk(doc, opts.config().WalkerOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}

	return &Report{Input: input, Result: result}, nil
}

// Render renders all three artifacts.
func Render(result *walker.Result, opts emit.Options) ([]emit.Artifact, error) {
	colors, err := color.Emit(result.Colors, opts)
	if err != nil {
		return nil, err
	}
	types, err := typography.Emit(result.Typography, opts)
	if err != nil {
		return nil, err
	}
	spaces, err := spacing.Emit(result.Spacing, opts)
	if err != nil {
		return nil, err
	}
	return []emit.Artifact{colors, types, spaces}, nil
}
