// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sample generates deterministic synthetic notes for demos and
// fixtures, each with a gold-standard structured counterpart.
package sample

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/meshintel/clinote/internal/parser"
	"github.com/meshintel/clinote/pkg/types"
)

// goldConfidence marks sections whose boundaries are known by
// construction rather than detected.
const goldConfidence = 0.95

// bundleDelimiter joins samples into bundle fixtures.
const bundleDelimiter = "----- NOTE -----"

// Generate writes n sample note files (sample_N.txt plus
// sample_N.gold.json) and, when bundles > 0, bundle files concatenating
// consecutive samples.
func Generate(fsys afero.Fs, outDir string, n, bundles int) error {
	if err := fsys.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating sample directory: %w", err)
	}

	templates := types.Templates()
	var texts []string
	for i := 0; i < n; i++ {
		template := templates[i%len(templates)]
		text, note := syntheticNote(template, i+1)

		txtPath := filepath.Join(outDir, fmt.Sprintf("sample_%d.txt", i+1))
		if err := afero.WriteFile(fsys, txtPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing sample: %w", err)
		}

		gold, err := json.MarshalIndent(note, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling gold note: %w", err)
		}
		goldPath := filepath.Join(outDir, fmt.Sprintf("sample_%d.gold.json", i+1))
		if err := afero.WriteFile(fsys, goldPath, gold, 0o644); err != nil {
			return fmt.Errorf("writing gold note: %w", err)
		}
		texts = append(texts, text)
	}

	for b := 0; b < bundles; b++ {
		start := b * 2
		end := start + 3
		if end > len(texts) {
			end = len(texts)
		}
		if start >= end {
			break
		}
		bundleText := strings.Join(texts[start:end], "\n"+bundleDelimiter+"\n")
		bundlePath := filepath.Join(outDir, fmt.Sprintf("bundle_%d.txt", b+1))
		if err := afero.WriteFile(fsys, bundlePath, []byte(bundleText), 0o644); err != nil {
			return fmt.Errorf("writing bundle: %w", err)
		}
	}

	return nil
}

// sectionDef pairs a canonical section with the heading spellings the
// generator rotates through.
type sectionDef struct {
	name     string
	variants []string
}

func sectionDefs(template types.Template) []sectionDef {
	switch template {
	case types.TemplateHP:
		return []sectionDef{
			{"Chief Complaint", []string{"CC:", "Chief Complaint:"}},
			{"HPI", []string{"HPI:", "History of Present Illness:"}},
			{"PMH", []string{"PMH:", "Past Medical History:"}},
			{"Medications", []string{"Meds:", "Medications:"}},
			{"Allergies", []string{"Allergies:", "Allergy:"}},
			{"ROS", []string{"ROS:", "Review of Systems:"}},
			{"Physical Exam", []string{"Physical Exam:", "PE:"}},
			{"Assessment", []string{"Assessment:", "DX:"}},
			{"Plan", []string{"Plan:", "P:"}},
		}
	case types.TemplateDischarge:
		return []sectionDef{
			{"Admission Dx", []string{"Admission Dx:", "Admission Diagnosis:"}},
			{"Discharge Dx", []string{"Discharge Dx:", "Discharge Diagnosis:"}},
			{"Hospital Course", []string{"Hospital Course:", "Course:"}},
			{"Medications", []string{"Medications:", "Meds:"}},
			{"Follow-up", []string{"Follow-up:", "Follow Up:"}},
			{"Disposition", []string{"Disposition:", "Dispo:"}},
			{"Instructions", []string{"Instructions:", "Discharge Instructions:"}},
		}
	default:
		return []sectionDef{
			{"Subjective", []string{"Subjective:", "S:", "SUBJECTIVE"}},
			{"Objective", []string{"Objective:", "OBJECTIVE", "O:"}},
			{"Assessment", []string{"Assessment:", "A:", "DX:"}},
			{"Plan", []string{"Plan:", "P:", "PLAN"}},
		}
	}
}

// syntheticNote builds one sample text and its gold structured form.
// Heading spellings rotate per section so samples exercise the alias
// tables; even-indexed sections put content inline after the heading.
func syntheticNote(template types.Template, index int) (string, types.StructuredNote) {
	var text strings.Builder
	fmt.Fprintf(&text, "Patient: Synthetic Demo %d\n", index)
	text.WriteString("DOB: 1990-01-01\n\n")

	var sections []types.Section
	for idx, def := range sectionDefs(template) {
		heading := def.variants[idx%len(def.variants)]
		content := fmt.Sprintf("Synthetic %s content for note %d.\n- Bullet A\n- Bullet B", def.name, index)
		if idx%2 == 0 {
			fmt.Fprintf(&text, "%s %s\n\n", heading, content)
		} else {
			fmt.Fprintf(&text, "%s\n%s\n\n", heading, content)
		}
		sections = append(sections, types.Section{
			Name:       def.name,
			Content:    content,
			Confidence: goldConfidence,
		})
	}

	note := types.StructuredNote{
		ID:        fmt.Sprintf("sample-%d", index),
		Template:  template,
		NoteIndex: index,
		Sections:  sections,
		Warnings:  []types.ParseWarning{},
		Metadata: types.Metadata{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			ToolVersion: parser.Version,
		},
	}
	return strings.TrimSpace(text.String()), note
}
