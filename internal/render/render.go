// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats structured notes for output. Renderers never
// re-derive sections; they format what the parser produced.
package render

import (
	"fmt"

	"github.com/meshintel/clinote/pkg/types"
)

// OutputFormat selects the rendering target.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "md"
	FormatJSON     OutputFormat = "json"
	FormatYAML     OutputFormat = "yaml"
	FormatCSV      OutputFormat = "csv"
)

// ParseOutputFormat resolves a format name from CLI input.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch OutputFormat(raw) {
	case FormatMarkdown, FormatJSON, FormatYAML, FormatCSV:
		return OutputFormat(raw), nil
	}
	return "", fmt.Errorf("unknown output format %q (want md, json, yaml, or csv)", raw)
}

// Extension returns the file extension for the format.
func (f OutputFormat) Extension() string {
	return string(f)
}

// Notes renders the notes in the requested format. The CSV layout only
// applies to FormatCSV.
func Notes(notes []types.StructuredNote, format OutputFormat, layout types.CSVLayout) (string, error) {
	switch format {
	case FormatMarkdown:
		return Markdown(notes), nil
	case FormatJSON:
		return JSON(notes)
	case FormatYAML:
		return YAML(notes)
	case FormatCSV:
		return CSV(notes, layout)
	}
	return "", fmt.Errorf("unknown output format %q", format)
}
