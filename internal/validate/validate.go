// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks structured notes against template completeness
// rules. Validation is a pure function over an already-built note; it
// performs no I/O and never mutates the note.
package validate

import (
	"fmt"
	"strings"

	"github.com/meshintel/clinote/pkg/types"
)

// Validation issue codes.
const (
	IssueMissingRequired  = "missing_required"
	IssueDuplicateSection = "duplicate_section"
	IssueUnknownSection   = "unknown_section"
	IssueSectionTooShort  = "section_too_short"
)

// minSectionLen is the shortest trimmed content accepted without a
// section_too_short issue.
const minSectionLen = 20

// requiredGroups returns the template's required alias-groups in order.
// A group is satisfied when any one alias is present in the note.
func requiredGroups(template types.Template) [][]string {
	switch template {
	case types.TemplateHP:
		return [][]string{
			{"HPI", "History of Present Illness"},
			{"PMH", "Past Medical History", "Hx"},
			{"Medications", "Meds"},
			{"Allergies", "Allergy"},
			{"Physical Exam", "Exam", "PE"},
			{"Assessment", "Dx", "Diagnosis"},
			{"Plan", "P"},
		}
	case types.TemplateDischarge:
		return [][]string{
			{"Admission Dx", "Discharge Dx", "Diagnoses", "Diagnosis"},
			{"Hospital Course", "HospitalCourse", "Course"},
			{"Medications", "Discharge Meds", "DischargeMeds"},
			{"Follow-up", "Follow Up", "FollowUp"},
		}
	default:
		return [][]string{
			{"Subjective", "S"},
			{"Objective", "O"},
			{"Assessment", "A", "Diagnosis", "Dx"},
			{"Plan", "P"},
		}
	}
}

// knownSections returns the normalized keys of every section the template
// recognizes: required aliases plus template-specific optional names.
func knownSections(template types.Template) map[string]bool {
	known := make(map[string]bool)
	for _, group := range requiredGroups(template) {
		for _, name := range group {
			known[types.NormalizeKey(name)] = true
		}
	}

	var optional []string
	switch template {
	case types.TemplateHP:
		optional = []string{"Chief Complaint", "ROS", "Review of Systems", "Narrative"}
	case types.TemplateDischarge:
		optional = []string{"Disposition", "Instructions", "Narrative"}
	default:
		optional = []string{"Narrative"}
	}
	for _, name := range optional {
		known[types.NormalizeKey(name)] = true
	}
	return known
}

// Note validates a structured note against a template. Strict mode
// escalates missing_required to Error severity; the other checks are
// unaffected by it.
func Note(note *types.StructuredNote, template types.Template, strict bool) []types.ValidationIssue {
	var issues []types.ValidationIssue
	known := knownSections(template)

	counts := make(map[string]int)
	for _, section := range note.Sections {
		counts[types.NormalizeKey(section.Name)]++
	}

	for _, group := range requiredGroups(template) {
		present := false
		for _, alias := range group {
			if counts[types.NormalizeKey(alias)] > 0 {
				present = true
				break
			}
		}
		if present {
			continue
		}
		severity := types.SeverityWarn
		if strict {
			severity = types.SeverityError
		}
		issues = append(issues, types.ValidationIssue{
			Code:     IssueMissingRequired,
			Message:  fmt.Sprintf("Missing required section (%s)", group[0]),
			Severity: severity,
			Section:  group[0],
		})
	}

	reportedDup := make(map[string]bool)
	for _, section := range note.Sections {
		key := types.NormalizeKey(section.Name)

		if counts[key] > 1 && !reportedDup[key] {
			reportedDup[key] = true
			issues = append(issues, types.ValidationIssue{
				Code:     IssueDuplicateSection,
				Message:  fmt.Sprintf("Duplicate section %q", section.Name),
				Severity: types.SeverityWarn,
				Section:  section.Name,
			})
		}

		if !known[key] {
			issues = append(issues, types.ValidationIssue{
				Code:     IssueUnknownSection,
				Message:  fmt.Sprintf("Unknown section %q", section.Name),
				Severity: types.SeverityInfo,
				Section:  section.Name,
			})
		}

		trimmed := strings.TrimSpace(section.Content)
		if len(trimmed) < minSectionLen {
			issues = append(issues, types.ValidationIssue{
				Code:     IssueSectionTooShort,
				Message:  fmt.Sprintf("Section %q is empty or too short", section.Name),
				Severity: types.SeverityWarn,
				Section:  section.Name,
			})
		}
	}

	return issues
}

// SectionSummary holds per-section size metrics for previews.
type SectionSummary struct {
	Name      string `json:"name" yaml:"name"`
	LineCount int    `json:"line_count" yaml:"line_count"`
	CharCount int    `json:"char_count" yaml:"char_count"`
}

// SummarizeSections returns size metrics for each section of a note.
func SummarizeSections(note *types.StructuredNote) []SectionSummary {
	summaries := make([]SectionSummary, 0, len(note.Sections))
	for _, section := range note.Sections {
		lineCount := len(strings.Split(section.Content, "\n"))
		if section.Content == "" {
			lineCount = 1
		}
		summaries = append(summaries, SectionSummary{
			Name:      section.Name,
			LineCount: lineCount,
			CharCount: len([]rune(section.Content)),
		})
	}
	return summaries
}
