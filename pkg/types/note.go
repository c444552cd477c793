// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Template identifies the target schema a note is structured against.
type Template string

const (
	TemplateSOAP      Template = "soap"
	TemplateHP        Template = "hp"
	TemplateDischarge Template = "discharge"
)

// Templates returns the known templates in fixed order.
func Templates() []Template {
	return []Template{TemplateSOAP, TemplateHP, TemplateDischarge}
}

// ParseTemplate resolves a template name from CLI or config input.
func ParseTemplate(raw string) (Template, bool) {
	switch Template(raw) {
	case TemplateSOAP, TemplateHP, TemplateDischarge:
		return Template(raw), true
	}
	return "", false
}

// BundleMode controls how a raw input blob is split into notes.
type BundleMode string

const (
	BundleAuto BundleMode = "auto"
	BundleOn   BundleMode = "on"
	BundleOff  BundleMode = "off"
)

// WarningSeverity grades a structural ParseWarning.
type WarningSeverity string

const (
	WarnInfo    WarningSeverity = "info"
	WarnWarning WarningSeverity = "warning"
	WarnError   WarningSeverity = "error"
)

// Confidence tiers for section boundary detection. Direct heading matches
// outrank heuristic fallback matches, which outrank the no-heading
// catch-all; the numeric values are part of the output contract.
const (
	ConfidenceDirect    = 0.85
	ConfidenceHeuristic = 0.6
	ConfidenceFallback  = 0.4
)

// HeadingLine is one detected heading occurrence in a normalized note.
type HeadingLine struct {
	// LineNum is the 1-based line number of the heading.
	LineNum int `json:"line_num" yaml:"line_num"`

	// Raw is the source line as scanned.
	Raw string `json:"raw" yaml:"raw"`

	// Heading is the canonicalized section spelling.
	Heading string `json:"heading" yaml:"heading"`

	// InlineContent is trailing content captured on the heading line, if any.
	InlineContent string `json:"inline_content,omitempty" yaml:"inline_content,omitempty"`
}

// SectionCandidate is a provisional section carved out by the sectionizer.
type SectionCandidate struct {
	Name       string  `json:"name" yaml:"name"`
	RawHeading string  `json:"raw_heading" yaml:"raw_heading"`
	Content    string  `json:"content" yaml:"content"`
	StartLine  int     `json:"start_line" yaml:"start_line"`
	EndLine    int     `json:"end_line" yaml:"end_line"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Section is a finalized note section retained in the structured output.
type Section struct {
	Name       string  `json:"name" yaml:"name"`
	Content    string  `json:"content" yaml:"content"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// ParseWarning is a recoverable structural finding attached to a note.
// Warnings never abort processing.
type ParseWarning struct {
	// Code is a stable machine-readable tag, e.g. "no_headings".
	Code string `json:"code" yaml:"code"`

	Message string `json:"message" yaml:"message"`

	// LineStart and LineEnd bound the affected lines, 1-based inclusive.
	LineStart int `json:"line_start" yaml:"line_start"`
	LineEnd   int `json:"line_end" yaml:"line_end"`

	Severity WarningSeverity `json:"severity" yaml:"severity"`
}

// Metadata records how and when a note was generated.
type Metadata struct {
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	ToolVersion string `json:"tool_version" yaml:"tool_version"`
}

// StructuredNote is the durable output of structuring one note text.
// It is never mutated after construction; validation and rendering only
// read it.
type StructuredNote struct {
	// ID is an opaque note identifier (ULID).
	ID string `json:"id" yaml:"id"`

	// Template is the target schema the note was structured against.
	Template Template `json:"template" yaml:"template"`

	// SourceFile locates the input the note came from, when known.
	SourceFile string `json:"source_file,omitempty" yaml:"source_file,omitempty"`

	// NoteIndex is the 1-based position within the source bundle.
	NoteIndex int `json:"note_index" yaml:"note_index"`

	// Sections are in template order with Narrative content last.
	Sections []Section `json:"sections" yaml:"sections"`

	Warnings []ParseWarning `json:"warnings" yaml:"warnings"`

	Metadata Metadata `json:"metadata" yaml:"metadata"`
}
