// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"regexp"
	"strings"

	"github.com/meshintel/clinote/pkg/types"
)

// Heading pattern cascade, tried in fixed priority order. This is a
// deterministic decision table: first match that also canonicalizes wins.
var (
	// allCapsRe matches a bare uppercase token line like "ASSESSMENT".
	allCapsRe = regexp.MustCompile(`^[A-Z][A-Z0-9 /&-]{1,40}$`)

	// colonRe matches "Heading:" with nothing after the colon.
	colonRe = regexp.MustCompile(`^([A-Za-z0-9 /&.-]{2,40}):\s*$`)

	// inlineRe matches "Heading: rest of line".
	inlineRe = regexp.MustCompile(`^([A-Za-z0-9 /&.-]{1,40}):\s*(.+)$`)
)

// builtinAliases maps normalized heading keys to canonical sections.
// Keys must already be in types.NormalizeKey form. User-configured
// aliases take precedence over this table.
var builtinAliases = map[string]types.SectionName{
	"SUBJECTIVE":                 types.SectionSubjective,
	"S":                          types.SectionSubjective,
	"OBJECTIVE":                  types.SectionObjective,
	"O":                          types.SectionObjective,
	"ASSESSMENT":                 types.SectionAssessment,
	"DIAGNOSIS":                  types.SectionAssessment,
	"DX":                         types.SectionAssessment,
	"A":                          types.SectionAssessment,
	"PLAN":                       types.SectionPlan,
	"P":                          types.SectionPlan,
	"CHIEF COMPLAINT":            types.SectionChiefComplaint,
	"CC":                         types.SectionChiefComplaint,
	"HPI":                        types.SectionHPI,
	"HISTORY OF PRESENT ILLNESS": types.SectionHPI,
	"PMH":                        types.SectionPMH,
	"PAST MEDICAL HISTORY":       types.SectionPMH,
	"HX":                         types.SectionPMH,
	"MEDS":                       types.SectionMedications,
	"MEDICATIONS":                types.SectionMedications,
	"ALLERGIES":                  types.SectionAllergies,
	"ALLERGY":                    types.SectionAllergies,
	"ROS":                        types.SectionROS,
	"REVIEW OF SYSTEMS":          types.SectionROS,
	"PHYSICAL EXAM":              types.SectionPhysicalExam,
	"PHYSICAL EXAMINATION":       types.SectionPhysicalExam,
	"PE":                         types.SectionPhysicalExam,
	"ADMISSION DX":               types.SectionAdmissionDx,
	"ADMISSION DIAGNOSIS":        types.SectionAdmissionDx,
	"ADMIT DX":                   types.SectionAdmissionDx,
	"DISCHARGE DX":               types.SectionDischargeDx,
	"DISCHARGE DIAGNOSIS":        types.SectionDischargeDx,
	"HOSPITAL COURSE":            types.SectionHospitalCourse,
	"COURSE":                     types.SectionHospitalCourse,
	"FOLLOW UP":                  types.SectionFollowUp,
	"FOLLOWUP":                   types.SectionFollowUp,
	"DISPOSITION":                types.SectionDisposition,
	"DISPO":                      types.SectionDisposition,
	"INSTRUCTIONS":               types.SectionInstructions,
	"DISCHARGE INSTRUCTIONS":     types.SectionInstructions,
}

// ScanHeadings applies the heading detector to every normalized line
// independently. Lines are evaluated exactly once and never consumed by
// earlier matches.
func ScanHeadings(lines []string, cfg *types.Config) []types.HeadingLine {
	var headings []types.HeadingLine
	for idx, line := range lines {
		heading, inline, ok := DetectHeading(line, cfg)
		if !ok {
			continue
		}
		headings = append(headings, types.HeadingLine{
			LineNum:       idx + 1,
			Raw:           line,
			Heading:       heading,
			InlineContent: inline,
		})
	}
	return headings
}

// DetectHeading reports whether line is a heading, returning the
// canonicalized name and any inline content captured after the colon.
// A pattern match that does not resolve to a known section is not a
// heading, so arbitrary capitalized phrases do not falsely trigger.
func DetectHeading(line string, cfg *types.Config) (heading, inline string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", "", false
	}

	if allCapsRe.MatchString(trimmed) {
		if mapped, ok := CanonicalizeHeading(trimmed, cfg); ok {
			return mapped, "", true
		}
	}

	if m := colonRe.FindStringSubmatch(trimmed); m != nil {
		if mapped, ok := CanonicalizeHeading(m[1], cfg); ok {
			return mapped, "", true
		}
	}

	if m := inlineRe.FindStringSubmatch(trimmed); m != nil {
		if mapped, ok := CanonicalizeHeading(m[1], cfg); ok {
			return mapped, strings.TrimSpace(m[2]), true
		}
	}

	return "", "", false
}

// CanonicalizeHeading resolves a raw heading spelling to its canonical
// section name: user-configured aliases first, then the built-in table.
func CanonicalizeHeading(raw string, cfg *types.Config) (string, bool) {
	if mapped, ok := cfg.ResolveAlias(raw); ok {
		return mapped, true
	}
	if section, ok := builtinAliases[types.NormalizeKey(raw)]; ok {
		return section.String(), true
	}
	return "", false
}
