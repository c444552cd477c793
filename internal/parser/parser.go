// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/meshintel/clinote/pkg/types"
)

// Version is stamped into note metadata. main overrides it with the
// build-time version.
var Version = "dev"

// Options control a single structuring call.
type Options struct {
	// ApplyHeuristics enables the fallback heading matcher when the
	// strict scan finds nothing.
	ApplyHeuristics bool
}

// ExtractCandidates normalizes one note text, scans it for headings, and
// sectionizes it against the template.
func ExtractCandidates(text string, template types.Template, cfg *types.Config, opts Options) ([]types.SectionCandidate, []types.ParseWarning) {
	lines := splitLines(Normalize(text))
	headings := ScanHeadings(lines, cfg)
	return ExtractSections(lines, headings, template, cfg, opts.ApplyHeuristics)
}

// BuildNote finalizes candidates into an immutable StructuredNote.
// Candidates whose trimmed content is empty are flagged with an
// empty_section warning, not dropped.
func BuildNote(candidates []types.SectionCandidate, template types.Template, sourceFile string, noteIndex int, warnings []types.ParseWarning) types.StructuredNote {
	sections := make([]types.Section, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Content == "" {
			warnings = append(warnings, warning(
				WarnEmptySection,
				fmt.Sprintf("Section %s has no content", candidate.Name),
				candidate.StartLine, candidate.EndLine, types.WarnInfo,
			))
		}
		sections = append(sections, types.Section{
			Name:       candidate.Name,
			Content:    candidate.Content,
			Confidence: candidate.Confidence,
		})
	}

	now := time.Now().UTC()
	return types.StructuredNote{
		ID:         newNoteID(now),
		Template:   template,
		SourceFile: sourceFile,
		NoteIndex:  noteIndex,
		Sections:   sections,
		Warnings:   warnings,
		Metadata: types.Metadata{
			GeneratedAt: now.Format(time.RFC3339),
			ToolVersion: Version,
		},
	}
}

// ParseNote structures a single note text end to end.
func ParseNote(text string, template types.Template, cfg *types.Config, sourceFile string, noteIndex int, opts Options) types.StructuredNote {
	candidates, warnings := ExtractCandidates(text, template, cfg, opts)
	return BuildNote(candidates, template, sourceFile, noteIndex, warnings)
}

// ParseNotes splits a bundle and structures each note. Bundle warnings
// are attached to every resulting note.
func ParseNotes(text string, template types.Template, mode types.BundleMode, cfg *types.Config, sourceFile string, opts Options) []types.StructuredNote {
	noteTexts, bundleWarnings := SplitBundle(text, mode, cfg)

	notes := make([]types.StructuredNote, 0, len(noteTexts))
	for idx, noteText := range noteTexts {
		candidates, warnings := ExtractCandidates(noteText, template, cfg, opts)
		warnings = append(warnings, bundleWarnings...)
		notes = append(notes, BuildNote(candidates, template, sourceFile, idx+1, warnings))
	}
	return notes
}

func newNoteID(now time.Time) string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}
