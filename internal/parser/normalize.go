// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parser implements the note structuring core: text
// normalization, heading detection, bundle splitting, and sectionizing.
// Every function is a pure transformation of its inputs; the package
// never performs I/O and never fails — malformed input degrades to
// lower-confidence candidates and warnings.
package parser

import "strings"

// Normalize canonicalizes raw note text before any pattern matching:
// CRLF/CR become LF, tabs become single spaces, trailing whitespace is
// stripped per line, and bullet markers ("•", leading "* ") become "- ".
// Normalize is idempotent and never adds or removes lines.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		line = strings.ReplaceAll(line, "•", "-")
		lines[i] = normalizeBullet(line)
	}
	return strings.Join(lines, "\n")
}

// normalizeBullet rewrites a leading "* " list marker to "- ", keeping
// any indentation.
func normalizeBullet(line string) string {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	rest := line[indent:]
	if strings.HasPrefix(rest, "* ") {
		return line[:indent] + "- " + rest[2:]
	}
	return line
}

// splitLines splits normalized text into lines without a trailing empty
// element for text ending in a newline.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
