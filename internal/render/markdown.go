// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/meshintel/clinote/pkg/types"
)

// Markdown renders notes as Markdown, one document per note separated by
// horizontal rules.
func Markdown(notes []types.StructuredNote) string {
	var out []string
	for idx, note := range notes {
		out = append(out, fmt.Sprintf("# Structured Note %d", idx+1))
		out = append(out, fmt.Sprintf("Template: %s", note.Template))
		if note.SourceFile != "" {
			out = append(out, fmt.Sprintf("Source: %s", note.SourceFile))
		}
		out = append(out, "")
		for _, section := range note.Sections {
			out = append(out, fmt.Sprintf("## %s", section.Name))
			if section.Content == "" {
				out = append(out, "(empty)")
			} else {
				out = append(out, section.Content)
			}
			out = append(out, "")
		}
		if idx+1 < len(notes) {
			out = append(out, "---", "")
		}
	}
	return strings.Join(out, "\n")
}
