// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selftest

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/clinote/pkg/types"
)

const completeNote = "Subjective: cough for a week now\nObjective: afebrile, clear lungs\nAssessment: viral upper respiratory infection\nPlan: rest, fluids, return if worse"

func writeFixture(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func TestRunDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFixture(t, fsys, "fixtures/good.txt", completeNote)
	writeFixture(t, fsys, "fixtures/incomplete.txt", "Subjective: just this one line")
	writeFixture(t, fsys, "fixtures/ignored.md", "not a txt fixture")

	cfg := types.DefaultConfig()
	summary, err := Run(fsys, "fixtures", types.TemplateSOAP, true, "", &cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalFiles)
	assert.Equal(t, 2, summary.TotalNotes)
	assert.Equal(t, 3, summary.TotalErrors, "incomplete note misses Objective, Assessment, Plan")
	assert.Equal(t, 0, summary.RuntimeFailures)

	require.NotEmpty(t, summary.TopFailing)
	assert.Equal(t, "fixtures/incomplete.txt", summary.TopFailing[0].File)
}

func TestRunNonStrictHasNoErrors(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFixture(t, fsys, "fixtures/incomplete.txt", "Subjective: just this one line")

	cfg := types.DefaultConfig()
	summary, err := Run(fsys, "fixtures", types.TemplateSOAP, false, "", &cfg)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalErrors)
	assert.Greater(t, summary.TotalWarnings, 0)
}

func TestRunGlobPattern(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFixture(t, fsys, "fixtures/a.txt", completeNote)
	writeFixture(t, fsys, "fixtures/b.txt", completeNote)

	cfg := types.DefaultConfig()
	summary, err := Run(fsys, "fixtures/*.txt", types.TemplateSOAP, false, "", &cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalFiles)
}

func TestRunSingleFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFixture(t, fsys, "note.txt", completeNote)

	cfg := types.DefaultConfig()
	summary, err := Run(fsys, "note.txt", types.TemplateSOAP, false, "", &cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalFiles)
	assert.Equal(t, 1, summary.TotalNotes)
}

func TestRunMissingPath(t *testing.T) {
	cfg := types.DefaultConfig()
	_, err := Run(afero.NewMemMapFs(), "nope", types.TemplateSOAP, false, "", &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixtures path not found")
}

func TestRunWritesRenderedOutputs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFixture(t, fsys, "fixtures/good.txt", completeNote)

	cfg := types.DefaultConfig()
	_, err := Run(fsys, "fixtures", types.TemplateSOAP, false, "rendered", &cfg)
	require.NoError(t, err)

	for _, name := range []string{"rendered/good.md", "rendered/good.json", "rendered/good.csv"} {
		exists, err := afero.Exists(fsys, name)
		require.NoError(t, err)
		assert.True(t, exists, name)
	}
}

func TestText(t *testing.T) {
	summary := Summary{
		Fixtures:   "fixtures",
		Template:   types.TemplateSOAP,
		Strict:     true,
		TotalFiles: 2,
		TotalNotes: 2,
		TopFailing: []FileResult{
			{File: "fixtures/bad.txt", Errors: 3, Warnings: 1},
			{File: "fixtures/clean.txt"},
		},
	}

	out := Text(summary)
	assert.Contains(t, out, "Fixtures: fixtures")
	assert.Contains(t, out, "fixtures/bad.txt: 3 errors, 1 warnings")
	assert.False(t, strings.Contains(out, "clean.txt"), "clean files are omitted from the failing list")
}
