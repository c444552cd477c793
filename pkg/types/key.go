// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// NormalizeKey reduces a heading spelling to its comparison key. Two
// spellings refer to the same section exactly when their keys are equal;
// alias resolution, duplicate detection, and template mapping all go
// through this function.
//
// The key is built by stripping a trailing colon, treating '-', '/', and
// '&' as spaces, uppercasing alphanumerics, collapsing runs of everything
// else to a single space, and trimming.
func NormalizeKey(input string) string {
	cleaned := strings.TrimSuffix(strings.TrimSpace(input), ":")
	cleaned = strings.NewReplacer("-", " ", "/", " ", "&", " ").Replace(cleaned)

	var b strings.Builder
	lastSpace := false
	for _, ch := range cleaned {
		switch {
		case ch >= 'a' && ch <= 'z':
			b.WriteRune(ch - 'a' + 'A')
			lastSpace = false
		case (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9'):
			b.WriteRune(ch)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}
