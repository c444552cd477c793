// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selftest sweeps fixture files through the full pipeline and
// summarizes validation outcomes.
package selftest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/meshintel/clinote/internal/batch"
	"github.com/meshintel/clinote/internal/parser"
	"github.com/meshintel/clinote/internal/render"
	"github.com/meshintel/clinote/internal/validate"
	"github.com/meshintel/clinote/pkg/types"
)

// FileResult is the outcome of one fixture file.
type FileResult struct {
	File         string                  `json:"file" yaml:"file"`
	Notes        int                     `json:"notes" yaml:"notes"`
	Errors       int                     `json:"errors" yaml:"errors"`
	Warnings     int                     `json:"warnings" yaml:"warnings"`
	Issues       []types.ValidationIssue `json:"issues" yaml:"issues"`
	RuntimeError string                  `json:"runtime_error,omitempty" yaml:"runtime_error,omitempty"`
}

// Summary aggregates a selftest sweep.
type Summary struct {
	Fixtures        string         `json:"fixtures" yaml:"fixtures"`
	Template        types.Template `json:"template" yaml:"template"`
	Strict          bool           `json:"strict" yaml:"strict"`
	TotalFiles      int            `json:"total_files" yaml:"total_files"`
	TotalNotes      int            `json:"total_notes" yaml:"total_notes"`
	TotalErrors     int            `json:"total_errors" yaml:"total_errors"`
	TotalWarnings   int            `json:"total_warnings" yaml:"total_warnings"`
	RuntimeFailures int            `json:"runtime_failures" yaml:"runtime_failures"`
	TopFailing      []FileResult   `json:"top_failing" yaml:"top_failing"`
}

// topFailingCount bounds the failing-file list in the summary.
const topFailingCount = 5

// Run sweeps the fixtures (a directory, a glob pattern, or a single
// file), validates every note against the template, and optionally
// renders md/json/csv outputs into outDir.
func Run(fsys afero.Fs, fixtures string, template types.Template, strict bool, outDir string, cfg *types.Config) (Summary, error) {
	files, err := collectFiles(fsys, fixtures)
	if err != nil {
		return Summary{}, err
	}

	results := make([]FileResult, 0, len(files))
	for _, path := range files {
		results = append(results, processFile(fsys, path, template, strict, outDir, cfg))
	}
	return summarize(fixtures, template, strict, results), nil
}

// collectFiles resolves a fixtures argument: directories are walked for
// .txt files, glob metacharacters are expanded, anything else must be an
// existing file.
func collectFiles(fsys afero.Fs, fixtures string) ([]string, error) {
	if info, err := fsys.Stat(fixtures); err == nil && info.IsDir() {
		var files []string
		err := afero.Walk(fsys, fixtures, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(path) == ".txt" {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking fixtures: %w", err)
		}
		sort.Strings(files)
		return files, nil
	}

	if strings.ContainsAny(fixtures, "*?[{") {
		files, err := afero.Glob(fsys, fixtures)
		if err != nil {
			return nil, fmt.Errorf("globbing fixtures: %w", err)
		}
		sort.Strings(files)
		return files, nil
	}

	if exists, _ := afero.Exists(fsys, fixtures); exists {
		return []string{fixtures}, nil
	}
	return nil, fmt.Errorf("fixtures path not found: %s", fixtures)
}

func processFile(fsys afero.Fs, path string, template types.Template, strict bool, outDir string, cfg *types.Config) FileResult {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return FileResult{File: path, RuntimeError: err.Error()}
	}

	notes := parser.ParseNotes(string(data), template, cfg.Bundle.ModeDefault, cfg, path,
		parser.Options{ApplyHeuristics: cfg.EnableFallbackHeuristics})

	var allIssues []types.ValidationIssue
	for i := range notes {
		allIssues = append(allIssues, validate.Note(&notes[i], template, strict)...)
	}

	if outDir != "" {
		writeRendered(fsys, outDir, batch.FileStem(path), notes, cfg)
	}

	errors, warnings := 0, 0
	for _, issue := range allIssues {
		switch issue.Severity {
		case types.SeverityError:
			errors++
		case types.SeverityWarn:
			warnings++
		}
	}

	return FileResult{
		File:     path,
		Notes:    len(notes),
		Errors:   errors,
		Warnings: warnings,
		Issues:   allIssues,
	}
}

// writeRendered emits best-effort md/json/csv outputs; render failures
// do not fail the fixture.
func writeRendered(fsys afero.Fs, outDir, stem string, notes []types.StructuredNote, cfg *types.Config) {
	_ = fsys.MkdirAll(outDir, 0o755)
	for _, format := range []render.OutputFormat{render.FormatMarkdown, render.FormatJSON, render.FormatCSV} {
		rendered, err := render.Notes(notes, format, cfg.CSV.Layout)
		if err != nil {
			continue
		}
		path := filepath.Join(outDir, stem+"."+format.Extension())
		_ = afero.WriteFile(fsys, path, []byte(rendered), 0o644)
	}
}

func summarize(fixtures string, template types.Template, strict bool, results []FileResult) Summary {
	summary := Summary{
		Fixtures: fixtures,
		Template: template,
		Strict:   strict,
	}
	for _, result := range results {
		summary.TotalFiles++
		summary.TotalNotes += result.Notes
		summary.TotalErrors += result.Errors
		summary.TotalWarnings += result.Warnings
		if result.RuntimeError != "" {
			summary.RuntimeFailures++
		}
	}

	top := make([]FileResult, len(results))
	copy(top, results)
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Errors != top[j].Errors {
			return top[i].Errors > top[j].Errors
		}
		return top[i].Warnings > top[j].Warnings
	})
	if len(top) > topFailingCount {
		top = top[:topFailingCount]
	}
	summary.TopFailing = top
	return summary
}

// Text renders the summary for console output.
func Text(summary Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fixtures: %s\n", summary.Fixtures)
	fmt.Fprintf(&b, "Template: %s\n", summary.Template)
	fmt.Fprintf(&b, "Strict: %t\n", summary.Strict)
	fmt.Fprintf(&b, "Total files: %d\n", summary.TotalFiles)
	fmt.Fprintf(&b, "Total notes: %d\n", summary.TotalNotes)
	fmt.Fprintf(&b, "Total errors: %d\n", summary.TotalErrors)
	fmt.Fprintf(&b, "Total warnings: %d\n", summary.TotalWarnings)
	fmt.Fprintf(&b, "Runtime failures: %d\n", summary.RuntimeFailures)
	b.WriteString("Top failing files:\n")
	for _, result := range summary.TopFailing {
		if result.Errors == 0 && result.Warnings == 0 && result.RuntimeError == "" {
			continue
		}
		reason := result.RuntimeError
		if reason == "" {
			reason = fmt.Sprintf("%d errors, %d warnings", result.Errors, result.Warnings)
		}
		fmt.Fprintf(&b, "- %s: %s\n", result.File, reason)
	}
	return b.String()
}
