// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report aggregates batch run outcomes into a machine-readable
// summary.
package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/meshintel/clinote/pkg/types"
)

// Failure records one input that could not be processed.
type Failure struct {
	File  string `json:"file" yaml:"file"`
	Error string `json:"error" yaml:"error"`
}

// Batch summarizes a batch run: per-section counts, warning volume, and
// isolated per-file failures.
type Batch struct {
	ToolName        string         `json:"tool_name" yaml:"tool_name"`
	Version         string         `json:"version" yaml:"version"`
	TotalFiles      int            `json:"total_files" yaml:"total_files"`
	OKFiles         int            `json:"ok_files" yaml:"ok_files"`
	FailedFiles     int            `json:"failed_files" yaml:"failed_files"`
	CountsBySection map[string]int `json:"counts_by_section" yaml:"counts_by_section"`
	WarningsCount   int            `json:"warnings_count" yaml:"warnings_count"`
	Failures        []Failure      `json:"failures" yaml:"failures"`
	RuntimeMS       int64          `json:"runtime_ms" yaml:"runtime_ms"`
}

// New returns an empty batch report for the named tool.
func New(toolName, version string) *Batch {
	return &Batch{
		ToolName:        toolName,
		Version:         version,
		CountsBySection: make(map[string]int),
		Failures:        []Failure{},
	}
}

// RecordOK counts a successfully processed file and its notes.
func (b *Batch) RecordOK(notes []types.StructuredNote) {
	b.OKFiles++
	for _, note := range notes {
		for _, section := range note.Sections {
			b.CountsBySection[section.Name]++
		}
		b.WarningsCount += len(note.Warnings)
	}
}

// RecordFailure counts a file that could not be processed.
func (b *Batch) RecordFailure(file string, err error) {
	b.FailedFiles++
	b.Failures = append(b.Failures, Failure{File: file, Error: err.Error()})
}

// Finalize computes the derived totals.
func (b *Batch) Finalize() {
	b.TotalFiles = b.OKFiles + b.FailedFiles
}

// WriteTo writes the report as indented JSON, creating parent
// directories as needed.
func (b *Batch) WriteTo(fsys afero.Fs, path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	return afero.WriteFile(fsys, path, data, 0o644)
}
