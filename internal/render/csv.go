// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/meshintel/clinote/pkg/types"
)

// CSV renders notes in the configured layout: wide (one row per note, a
// column per section) or long (one row per note-section pair).
func CSV(notes []types.StructuredNote, layout types.CSVLayout) (string, error) {
	if layout == types.CSVLong {
		return renderLong(notes)
	}
	return renderWide(notes)
}

func renderWide(notes []types.StructuredNote) (string, error) {
	// Column order is first-seen order across all notes.
	seen := make(map[string]bool)
	var sectionNames []string
	for _, note := range notes {
		for _, section := range note.Sections {
			if !seen[section.Name] {
				seen[section.Name] = true
				sectionNames = append(sectionNames, section.Name)
			}
		}
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)

	header := append([]string{"id", "template", "source_file", "note_index"}, sectionNames...)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}

	for _, note := range notes {
		record := []string{
			note.ID,
			string(note.Template),
			note.SourceFile,
			strconv.Itoa(note.NoteIndex),
		}
		for _, name := range sectionNames {
			record = append(record, sectionContent(note, name))
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("writing CSV record: %w", err)
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}

func renderLong(notes []types.StructuredNote) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	header := []string{"note_id", "template", "source_file", "note_index", "section_name", "content"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}

	for _, note := range notes {
		for _, section := range note.Sections {
			record := []string{
				note.ID,
				string(note.Template),
				note.SourceFile,
				strconv.Itoa(note.NoteIndex),
				section.Name,
				section.Content,
			}
			if err := w.Write(record); err != nil {
				return "", fmt.Errorf("writing CSV record: %w", err)
			}
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}

func sectionContent(note types.StructuredNote, name string) string {
	for _, section := range note.Sections {
		if section.Name == name {
			return section.Content
		}
	}
	return ""
}
