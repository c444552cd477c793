// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch processes a directory of note files, isolating failures
// per file so one bad input never aborts the run.
package batch

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/meshintel/clinote/internal/parser"
	"github.com/meshintel/clinote/internal/render"
	"github.com/meshintel/clinote/internal/report"
	"github.com/meshintel/clinote/pkg/types"
)

// Options selects the inputs and outputs of a batch run.
type Options struct {
	// InputDir is the directory searched with Glob.
	InputDir string

	// Glob is the file pattern; empty means the configured default.
	Glob string

	Template types.Template

	// OutDir receives one rendered file per input plus the report.
	OutDir string

	OutFormat render.OutputFormat

	BundleMode types.BundleMode
}

// Run processes every file matching the glob, writes rendered outputs,
// and returns the aggregated report. Per-file failures are recorded in
// the report and never abort the run.
func Run(fsys afero.Fs, opts Options, cfg *types.Config, w io.Writer) (*report.Batch, error) {
	start := time.Now()
	rep := report.New("clinote", parser.Version)

	if err := fsys.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	pattern := opts.Glob
	if pattern == "" {
		pattern = cfg.GlobDefault
	}

	matches, err := afero.Glob(fsys, filepath.Join(opts.InputDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}

	for _, path := range matches {
		notes, err := processFile(fsys, path, opts, cfg)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			rep.RecordFailure(path, err)
			continue
		}
		fmt.Fprintf(w, "ok      %s (%d note(s))\n", path, len(notes))
		rep.RecordOK(notes)
	}

	rep.Finalize()
	rep.RuntimeMS = time.Since(start).Milliseconds()
	return rep, nil
}

func processFile(fsys afero.Fs, path string, opts Options, cfg *types.Config) ([]types.StructuredNote, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	notes := parser.ParseNotes(string(data), opts.Template, opts.BundleMode, cfg, path,
		parser.Options{ApplyHeuristics: cfg.EnableFallbackHeuristics})

	rendered, err := render.Notes(notes, opts.OutFormat, cfg.CSV.Layout)
	if err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}

	outPath := filepath.Join(opts.OutDir, FileStem(path)+"."+opts.OutFormat.Extension())
	if err := afero.WriteFile(fsys, outPath, []byte(rendered), 0o644); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}
	return notes, nil
}

// FileStem returns the base name of path without its extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return "output"
	}
	return stem
}
