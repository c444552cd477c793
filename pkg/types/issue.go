// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Severity grades a ValidationIssue.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Span bounds a validation finding, 1-based inclusive.
type Span struct {
	LineStart int `json:"line_start" yaml:"line_start"`
	LineEnd   int `json:"line_end" yaml:"line_end"`
}

// ValidationIssue is a policy-level finding from validating a structured
// note against a template. Issues never abort processing; an Error
// severity marks the note as failing validation.
type ValidationIssue struct {
	// Code is a stable machine-readable tag, e.g. "missing_required".
	Code string `json:"code" yaml:"code"`

	Message string `json:"message" yaml:"message"`

	Severity Severity `json:"severity" yaml:"severity"`

	// Section names the associated section, when the issue has one.
	Section string `json:"section,omitempty" yaml:"section,omitempty"`

	// Span is the affected line range, when known.
	Span *Span `json:"span,omitempty" yaml:"span,omitempty"`
}

// HasError reports whether any issue carries Error severity.
func HasError(issues []ValidationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
