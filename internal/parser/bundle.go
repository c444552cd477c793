// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"regexp"
	"strings"

	"github.com/meshintel/clinote/pkg/types"
)

// dateRe anchors a new note at a leading date line, either ISO
// (YYYY-MM-DD) or US (MM/DD/YYYY).
var dateRe = regexp.MustCompile(`^\s*(\d{4}-\d{2}-\d{2}|\d{2}/\d{2}/\d{4})`)

// SplitBundle partitions raw input into one or more note texts. Mode off
// returns the whole text untouched. Modes on and auto try the configured
// delimiter lines first and fall back to date anchors; when neither
// splits, the whole text is one note, and strict mode (on) adds a
// bundle_not_split warning.
func SplitBundle(text string, mode types.BundleMode, cfg *types.Config) ([]string, []types.ParseWarning) {
	switch mode {
	case types.BundleOff:
		return []string{text}, nil
	case types.BundleOn:
		return splitBundle(text, cfg, true)
	default:
		return splitBundle(text, cfg, false)
	}
}

func splitBundle(text string, cfg *types.Config, strict bool) ([]string, []types.ParseWarning) {
	notes := splitOnDelimiters(text, cfg.Bundle.Delimiters)
	if len(notes) <= 1 {
		notes = splitOnDates(text)
	}

	if len(notes) <= 1 {
		var warnings []types.ParseWarning
		if strict {
			lineCount := len(splitLines(text))
			if lineCount < 1 {
				lineCount = 1
			}
			warnings = append(warnings, warning(
				WarnBundleNotSplit,
				"Bundle mode requested but no clear delimiters found",
				1, lineCount, types.WarnWarning,
			))
		}
		return []string{text}, warnings
	}

	return notes, nil
}

// splitOnDelimiters accumulates lines between delimiter lines. A line is
// a delimiter when its trimmed value exactly equals one of the configured
// (trimmed) delimiter strings.
func splitOnDelimiters(text string, delimiters []string) []string {
	var notes []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			notes = append(notes, strings.TrimSpace(strings.Join(current, "\n")))
			current = current[:0]
		}
	}

	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		if isDelimiter(trimmed, delimiters) {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	if len(notes) == 0 {
		notes = append(notes, text)
	}
	return notes
}

func isDelimiter(trimmed string, delimiters []string) bool {
	for _, d := range delimiters {
		if strings.TrimSpace(d) == trimmed {
			return true
		}
	}
	return false
}

// splitOnDates starts a new note at each date-anchored line. Fewer than
// two anchors means the split is not trusted and the whole text stays a
// single note.
func splitOnDates(text string) []string {
	var notes []string
	var current []string
	found := 0

	for _, line := range splitLines(text) {
		if dateRe.MatchString(line) {
			if len(current) > 0 {
				notes = append(notes, strings.TrimSpace(strings.Join(current, "\n")))
				current = current[:0]
			}
			found++
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		notes = append(notes, strings.TrimSpace(strings.Join(current, "\n")))
	}

	if found <= 1 {
		return []string{text}
	}
	return notes
}
