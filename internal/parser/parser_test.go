// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"testing"

	"github.com/meshintel/clinote/pkg/types"
)

func TestParseNote(t *testing.T) {
	cfg := types.DefaultConfig()
	text := "Subjective: feeling better\nObjective: afebrile\nAssessment: resolving URI\nPlan: supportive care"

	note := ParseNote(text, types.TemplateSOAP, &cfg, "visit.txt", 1, Options{})

	if len(note.Sections) != 4 {
		t.Fatalf("got %d sections, want 4", len(note.Sections))
	}
	if note.Template != types.TemplateSOAP {
		t.Errorf("template = %s", note.Template)
	}
	if note.SourceFile != "visit.txt" || note.NoteIndex != 1 {
		t.Errorf("provenance = (%q, %d)", note.SourceFile, note.NoteIndex)
	}
	if len(note.ID) != 26 {
		t.Errorf("ID = %q, want a 26-char ULID", note.ID)
	}
	if note.Metadata.GeneratedAt == "" || note.Metadata.ToolVersion == "" {
		t.Errorf("metadata incomplete: %+v", note.Metadata)
	}
}

func TestBuildNoteFlagsEmptySections(t *testing.T) {
	candidates := []types.SectionCandidate{
		{Name: "Plan", RawHeading: "Plan", Content: "", StartLine: 1, EndLine: 1, Confidence: types.ConfidenceDirect},
	}

	note := BuildNote(candidates, types.TemplateSOAP, "f.txt", 1, nil)
	if len(note.Sections) != 1 {
		t.Fatal("empty sections must be kept, not dropped")
	}

	found := false
	for _, w := range note.Warnings {
		if w.Code == WarnEmptySection {
			found = true
			if w.Severity != types.WarnInfo {
				t.Errorf("severity = %s, want %s", w.Severity, types.WarnInfo)
			}
		}
	}
	if !found {
		t.Errorf("want %s warning, got %v", WarnEmptySection, note.Warnings)
	}
}

func TestParseNotesBundle(t *testing.T) {
	cfg := types.DefaultConfig()
	text := "Subjective: cough\nPlan: rest\n----- NOTE -----\nSubjective: better\nPlan: back to work"

	notes := ParseNotes(text, types.TemplateSOAP, types.BundleOn, &cfg, "bundle.txt", Options{})
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
	for i, note := range notes {
		if note.NoteIndex != i+1 {
			t.Errorf("note %d index = %d, want %d", i, note.NoteIndex, i+1)
		}
		if note.SourceFile != "bundle.txt" {
			t.Errorf("note %d source = %q", i, note.SourceFile)
		}
	}
	if notes[0].ID == notes[1].ID {
		t.Error("note IDs must be distinct")
	}
}

func TestParseNotesAttachesBundleWarnings(t *testing.T) {
	cfg := types.DefaultConfig()
	text := "Subjective: single note\nPlan: nothing to split"

	notes := ParseNotes(text, types.TemplateSOAP, types.BundleOn, &cfg, "f.txt", Options{})
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1", len(notes))
	}

	found := false
	for _, w := range notes[0].Warnings {
		if w.Code == WarnBundleNotSplit {
			found = true
		}
	}
	if !found {
		t.Errorf("want %s warning on note, got %v", WarnBundleNotSplit, notes[0].Warnings)
	}
}
