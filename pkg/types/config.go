// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"sort"
	"strings"
)

// CSVLayout selects the CSV rendering shape.
type CSVLayout string

const (
	// CSVWide emits one row per note with a column per section.
	CSVWide CSVLayout = "wide"

	// CSVLong emits one row per (note, section) pair.
	CSVLong CSVLayout = "long"
)

// Config is the resolved clinote configuration. It is built once per
// invocation and shared read-only by every pipeline stage.
type Config struct {
	// Formats holds the per-template section orders.
	Formats FormatsConfig `mapstructure:"formats" yaml:"formats"`

	// HeadingAliases maps user-supplied raw spellings to canonical section
	// names. Lookups are key-insensitive (NormalizeKey) and consulted
	// before the built-in alias table.
	HeadingAliases map[string]string `mapstructure:"heading_aliases" yaml:"heading_aliases"`

	// EnableFallbackHeuristics turns on the looser heading matcher used
	// when the strict scan finds nothing.
	EnableFallbackHeuristics bool `mapstructure:"enable_fallback_heuristics" yaml:"enable_fallback_heuristics"`

	Bundle BundleConfig `mapstructure:"bundle" yaml:"bundle"`

	CSV CSVConfig `mapstructure:"csv" yaml:"csv"`

	// GlobDefault is the file pattern batch runs use when none is given.
	GlobDefault string `mapstructure:"glob_default" yaml:"glob_default" validate:"required"`
}

// FormatsConfig holds the ordered section vocabulary for each template.
type FormatsConfig struct {
	SOAP      FormatSpec `mapstructure:"soap" yaml:"soap"`
	HP        FormatSpec `mapstructure:"hp" yaml:"hp"`
	Discharge FormatSpec `mapstructure:"discharge" yaml:"discharge"`
}

// FormatSpec is one template's ordered list of canonical section names.
type FormatSpec struct {
	SectionOrder []string `mapstructure:"section_order" yaml:"section_order" validate:"min=1,dive,required"`
}

// BundleConfig controls bundle splitting.
type BundleConfig struct {
	// ModeDefault applies when no --bundle flag is given.
	ModeDefault BundleMode `mapstructure:"mode_default" yaml:"mode_default" validate:"oneof=auto on off"`

	// Delimiters are literal lines that separate notes in a bundle.
	Delimiters []string `mapstructure:"delimiters" yaml:"delimiters" validate:"min=1"`
}

// CSVConfig controls CSV rendering.
type CSVConfig struct {
	Layout CSVLayout `mapstructure:"layout" yaml:"layout" validate:"oneof=wide long"`
}

// DefaultConfig returns the built-in configuration used when no config
// file is present.
func DefaultConfig() Config {
	return Config{
		Formats: FormatsConfig{
			SOAP: FormatSpec{SectionOrder: []string{
				"Subjective", "Objective", "Assessment", "Plan",
			}},
			HP: FormatSpec{SectionOrder: []string{
				"Chief Complaint", "HPI", "PMH", "Medications", "Allergies",
				"ROS", "Physical Exam", "Assessment", "Plan",
			}},
			Discharge: FormatSpec{SectionOrder: []string{
				"Admission Dx", "Discharge Dx", "Hospital Course",
				"Medications", "Follow-up", "Disposition", "Instructions",
			}},
		},
		HeadingAliases:           map[string]string{},
		EnableFallbackHeuristics: true,
		Bundle: BundleConfig{
			ModeDefault: BundleAuto,
			Delimiters:  []string{"----- NOTE -----", "=== VISIT ==="},
		},
		CSV:         CSVConfig{Layout: CSVWide},
		GlobDefault: "*.txt",
	}
}

// SectionOrder returns the template's canonical section names in order.
func (c *Config) SectionOrder(t Template) []string {
	var spec FormatSpec
	switch t {
	case TemplateHP:
		spec = c.Formats.HP
	case TemplateDischarge:
		spec = c.Formats.Discharge
	default:
		spec = c.Formats.SOAP
	}
	order := make([]string, len(spec.SectionOrder))
	copy(order, spec.SectionOrder)
	return order
}

// ResolveAlias looks up raw in the user alias table, key-insensitively.
// Resolution is idempotent: a value that is already canonical maps to
// itself when listed, and callers fall through to the built-in table
// otherwise.
func (c *Config) ResolveAlias(raw string) (string, bool) {
	rawKey := NormalizeKey(raw)
	for alias, canonical := range c.HeadingAliases {
		if NormalizeKey(alias) == rawKey {
			return canonical, true
		}
	}
	return "", false
}

// Summary renders the resolved configuration for display.
func (c *Config) Summary() string {
	var b strings.Builder
	b.WriteString("Resolved section order:\n")
	fmt.Fprintf(&b, "SOAP: %s\n", strings.Join(c.SectionOrder(TemplateSOAP), ", "))
	fmt.Fprintf(&b, "H&P: %s\n", strings.Join(c.SectionOrder(TemplateHP), ", "))
	fmt.Fprintf(&b, "Discharge: %s\n", strings.Join(c.SectionOrder(TemplateDischarge), ", "))

	b.WriteString("\nHeading aliases:\n")
	if len(c.HeadingAliases) == 0 {
		b.WriteString("(none)\n")
	} else {
		aliases := make([]string, 0, len(c.HeadingAliases))
		for alias := range c.HeadingAliases {
			aliases = append(aliases, alias)
		}
		sort.Strings(aliases)
		for _, alias := range aliases {
			fmt.Fprintf(&b, "%s => %s\n", alias, c.HeadingAliases[alias])
		}
	}

	b.WriteString("\nBundle delimiters:\n")
	for _, delim := range c.Bundle.Delimiters {
		fmt.Fprintf(&b, "- %s\n", delim)
	}
	return b.String()
}
