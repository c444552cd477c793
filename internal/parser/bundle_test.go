// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"strings"
	"testing"

	"github.com/meshintel/clinote/pkg/types"
)

func TestSplitBundleOnDelimiter(t *testing.T) {
	cfg := types.DefaultConfig()
	text := "Note A\n----- NOTE -----\nNote B"

	notes, warnings := SplitBundle(text, types.BundleOn, &cfg)
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
	if notes[0] != "Note A" || notes[1] != "Note B" {
		t.Errorf("notes = %q", notes)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestSplitBundleSecondDelimiter(t *testing.T) {
	cfg := types.DefaultConfig()
	text := "first\n=== VISIT ===\nsecond\n=== VISIT ===\nthird"

	notes, _ := SplitBundle(text, types.BundleAuto, &cfg)
	if len(notes) != 3 {
		t.Fatalf("got %d notes, want 3", len(notes))
	}
}

func TestSplitBundleDelimiterWhitespaceTolerant(t *testing.T) {
	cfg := types.DefaultConfig()
	text := "Note A\n   ----- NOTE -----   \nNote B"

	notes, _ := SplitBundle(text, types.BundleOn, &cfg)
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2: delimiter match should ignore surrounding whitespace", len(notes))
	}
}

func TestSplitBundleOnDates(t *testing.T) {
	cfg := types.DefaultConfig()
	text := "2024-01-05 clinic visit\nfeels well\n2024-02-10 follow up\nstill improving"

	notes, warnings := SplitBundle(text, types.BundleAuto, &cfg)
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
	if !strings.HasPrefix(notes[0], "2024-01-05") || !strings.HasPrefix(notes[1], "2024-02-10") {
		t.Errorf("notes = %q", notes)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestSplitBundleUSDateFormat(t *testing.T) {
	cfg := types.DefaultConfig()
	text := "01/05/2024 visit one\ndetails\n02/10/2024 visit two\ndetails"

	notes, _ := SplitBundle(text, types.BundleAuto, &cfg)
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
}

func TestSplitBundleSingleDateAnchorNotTrusted(t *testing.T) {
	cfg := types.DefaultConfig()
	text := "2024-01-05 clinic visit\nfeels well"

	notes, _ := SplitBundle(text, types.BundleAuto, &cfg)
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1: a single date anchor must not split", len(notes))
	}
}

func TestSplitBundleOffIsVerbatim(t *testing.T) {
	cfg := types.DefaultConfig()
	text := "Note A\n----- NOTE -----\nNote B"

	notes, warnings := SplitBundle(text, types.BundleOff, &cfg)
	if len(notes) != 1 || notes[0] != text {
		t.Fatalf("mode off must return the input untouched, got %q", notes)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestSplitBundleStrictWarnsWhenUnsplit(t *testing.T) {
	cfg := types.DefaultConfig()
	text := "Subjective: feels fine\nPlan: continue meds"

	notes, warnings := SplitBundle(text, types.BundleOn, &cfg)
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1", len(notes))
	}
	if len(warnings) != 1 || warnings[0].Code != WarnBundleNotSplit {
		t.Fatalf("want one %s warning, got %v", WarnBundleNotSplit, warnings)
	}
	if warnings[0].Severity != types.WarnWarning {
		t.Errorf("severity = %s, want %s", warnings[0].Severity, types.WarnWarning)
	}
}

func TestSplitBundleAutoSilentWhenUnsplit(t *testing.T) {
	cfg := types.DefaultConfig()

	notes, warnings := SplitBundle("just one note", types.BundleAuto, &cfg)
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1", len(notes))
	}
	if len(warnings) != 0 {
		t.Errorf("auto mode must not warn on unsplit input: %v", warnings)
	}
}

// Splitting then rejoining must lose no non-delimiter content.
func TestSplitBundleLossless(t *testing.T) {
	cfg := types.DefaultConfig()
	segments := []string{
		"Subjective: cough\nPlan: rest",
		"Subjective: better\nPlan: return to work",
		"CC: follow up\nno complaints",
	}
	text := strings.Join(segments, "\n----- NOTE -----\n")

	notes, _ := SplitBundle(text, types.BundleOn, &cfg)
	if len(notes) != len(segments) {
		t.Fatalf("got %d notes, want %d", len(notes), len(segments))
	}
	for i, want := range segments {
		if notes[i] != want {
			t.Errorf("note %d = %q, want %q", i, notes[i], want)
		}
	}
}
