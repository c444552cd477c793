// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf to lf", "a\r\nb", "a\nb"},
		{"bare cr to lf", "a\rb", "a\nb"},
		{"tab to space", "a\tb", "a b"},
		{"trailing whitespace stripped", "Plan:   \ncontent  ", "Plan:\ncontent"},
		{"unicode bullet", "• first item", "- first item"},
		{"leading star bullet", "* first item", "- first item"},
		{"indented star bullet", "  * nested", "  - nested"},
		{"interior star untouched", "dose 2 * 5 mg", "dose 2 * 5 mg"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Subjective:\r\n\t• feels well\r\n* second point  ",
		"PLAN\ncontinue meds",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}

func TestNormalizePreservesLineCount(t *testing.T) {
	input := "one\r\ntwo\rthree\nfour"
	got := Normalize(input)
	if lines := strings.Count(got, "\n") + 1; lines != 4 {
		t.Errorf("line count = %d, want 4", lines)
	}
}

func TestSplitLinesDropsTrailingEmpty(t *testing.T) {
	if got := splitLines("a\nb\n"); len(got) != 2 {
		t.Errorf("splitLines = %v, want 2 lines", got)
	}
	if got := splitLines("a\nb"); len(got) != 2 {
		t.Errorf("splitLines = %v, want 2 lines", got)
	}
	if got := splitLines(""); len(got) != 0 {
		t.Errorf("splitLines(\"\") = %v, want empty", got)
	}
}
