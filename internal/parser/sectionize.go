// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/meshintel/clinote/pkg/types"
)

// fallbackRe is the looser heading matcher used only when the strict scan
// found nothing: a 2-40 char heading, a ':' or '-' separator, then
// content, case-insensitive.
var fallbackRe = regexp.MustCompile(`(?i)^([A-Za-z /&.-]{2,40})\s*[:\-]\s*(.+)$`)

// narrativeName is the catch-all section for content that maps to no
// template-known section.
var narrativeName = types.SectionNarrative.String()

// ExtractSections carves the line range into section candidates from the
// detected headings, scores them by detection method, maps them into the
// template vocabulary, and orders them per template with Narrative
// content last. It never invents placeholders for absent sections.
func ExtractSections(lines []string, headingsFound []types.HeadingLine, template types.Template, cfg *types.Config, applyHeuristics bool) ([]types.SectionCandidate, []types.ParseWarning) {
	var warnings []types.ParseWarning

	headings := make([]types.HeadingLine, len(headingsFound))
	copy(headings, headingsFound)
	usedFallback := false

	docEnd := len(lines)
	if docEnd < 1 {
		docEnd = 1
	}

	if len(headings) == 0 {
		if applyHeuristics {
			headings = fallbackHeadings(lines, cfg)
			if len(headings) > 0 {
				usedFallback = true
				warnings = append(warnings, warning(
					WarnFallbackHeuristics,
					"Fallback heuristics applied to find headings",
					1, docEnd, types.WarnInfo,
				))
			}
		}
		if len(headings) == 0 {
			warnings = append(warnings, warning(
				WarnNoHeadings,
				"No headings detected; content grouped as Narrative",
				1, docEnd, types.WarnWarning,
			))
			candidate := types.SectionCandidate{
				Name:       narrativeName,
				RawHeading: narrativeName,
				Content:    strings.TrimSpace(strings.Join(lines, "\n")),
				StartLine:  1,
				EndLine:    docEnd,
				Confidence: types.ConfidenceFallback,
			}
			return []types.SectionCandidate{candidate}, warnings
		}
	}

	// Stable sort keeps insertion order for same-line occurrences.
	sort.SliceStable(headings, func(i, j int) bool {
		return headings[i].LineNum < headings[j].LineNum
	})

	sectionOrder := cfg.SectionOrder(template)
	confidence := types.ConfidenceDirect
	if usedFallback {
		confidence = types.ConfidenceHeuristic
	}

	var candidates []types.SectionCandidate
	for idx, heading := range headings {
		startLine := heading.LineNum
		endLine := docEnd
		if idx+1 < len(headings) {
			endLine = headings[idx+1].LineNum - 1
		}

		var contentLines []string
		if heading.InlineContent != "" {
			contentLines = append(contentLines, heading.InlineContent)
		}
		for lineIdx := heading.LineNum + 1; lineIdx <= endLine && lineIdx <= len(lines); lineIdx++ {
			contentLines = append(contentLines, lines[lineIdx-1])
		}

		name, mapped := mapHeading(heading.Heading, sectionOrder)
		if !mapped {
			warnings = append(warnings, warning(
				WarnUnmappedHeading,
				fmt.Sprintf("Heading %q not in target template", heading.Heading),
				startLine, endLine, types.WarnInfo,
			))
		}

		candidates = append(candidates, types.SectionCandidate{
			Name:       name,
			RawHeading: heading.Heading,
			Content:    strings.TrimSpace(strings.Join(contentLines, "\n")),
			StartLine:  startLine,
			EndLine:    endLine,
			Confidence: confidence,
		})
	}

	return orderCandidates(candidates, sectionOrder), warnings
}

// orderCandidates groups candidates by the template's declared order,
// preserving relative order within a group, with Narrative content last.
func orderCandidates(candidates []types.SectionCandidate, sectionOrder []string) []types.SectionCandidate {
	ordered := make([]types.SectionCandidate, 0, len(candidates))
	for _, name := range sectionOrder {
		key := types.NormalizeKey(name)
		for _, candidate := range candidates {
			if types.NormalizeKey(candidate.Name) == key {
				ordered = append(ordered, candidate)
			}
		}
	}
	narrativeKey := types.NormalizeKey(narrativeName)
	for _, candidate := range candidates {
		if types.NormalizeKey(candidate.Name) == narrativeKey {
			ordered = append(ordered, candidate)
		}
	}
	return ordered
}

// mapHeading resolves a canonical heading into the template vocabulary.
// Unmapped headings become Narrative; their content is retained.
func mapHeading(heading string, sectionOrder []string) (string, bool) {
	headingKey := types.NormalizeKey(heading)
	for _, name := range sectionOrder {
		if types.NormalizeKey(name) == headingKey {
			return name, true
		}
	}
	return narrativeName, false
}

// fallbackHeadings applies the loose matcher line by line, keeping only
// lines whose heading part canonicalizes through the same alias tables
// as the strict detector.
func fallbackHeadings(lines []string, cfg *types.Config) []types.HeadingLine {
	var headings []types.HeadingLine
	for idx, line := range lines {
		m := fallbackRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		mapped, ok := CanonicalizeHeading(m[1], cfg)
		if !ok {
			continue
		}
		headings = append(headings, types.HeadingLine{
			LineNum:       idx + 1,
			Raw:           line,
			Heading:       mapped,
			InlineContent: strings.TrimSpace(m[2]),
		})
	}
	return headings
}
