// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import "github.com/meshintel/clinote/pkg/types"

// Structural warning codes emitted by the pipeline.
const (
	WarnBundleNotSplit     = "bundle_not_split"
	WarnNoHeadings         = "no_headings"
	WarnFallbackHeuristics = "fallback_heuristics"
	WarnUnmappedHeading    = "unmapped_heading"
	WarnEmptySection       = "empty_section"
)

func warning(code, message string, lineStart, lineEnd int, severity types.WarningSeverity) types.ParseWarning {
	return types.ParseWarning{
		Code:      code,
		Message:   message,
		LineStart: lineStart,
		LineEnd:   lineEnd,
		Severity:  severity,
	}
}
