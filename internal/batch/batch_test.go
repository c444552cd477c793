// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/clinote/internal/render"
	"github.com/meshintel/clinote/pkg/types"
)

func writeInput(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func TestRun(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeInput(t, fsys, "in/a.txt", "Subjective: cough for a week\nPlan: rest and fluids")
	writeInput(t, fsys, "in/b.txt", "Subjective: better\nPlan: return to work")
	writeInput(t, fsys, "in/skip.md", "not matched by the glob")

	cfg := types.DefaultConfig()
	var progress bytes.Buffer
	rep, err := Run(fsys, Options{
		InputDir:   "in",
		Glob:       "*.txt",
		Template:   types.TemplateSOAP,
		OutDir:     "out",
		OutFormat:  render.FormatJSON,
		BundleMode: types.BundleAuto,
	}, &cfg, &progress)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.TotalFiles)
	assert.Equal(t, 2, rep.OKFiles)
	assert.Equal(t, 0, rep.FailedFiles)
	assert.Equal(t, 2, rep.CountsBySection["Subjective"])
	assert.Equal(t, 2, rep.CountsBySection["Plan"])

	for _, name := range []string{"out/a.json", "out/b.json"} {
		exists, err := afero.Exists(fsys, name)
		require.NoError(t, err)
		assert.True(t, exists, name)
	}

	out := progress.String()
	assert.Contains(t, out, "ok      in/a.txt")
	assert.Contains(t, out, "ok      in/b.txt")
	assert.NotContains(t, out, "skip.md")
}

func TestRunUsesConfiguredGlobDefault(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeInput(t, fsys, "in/a.txt", "Subjective: fine\nPlan: none")

	cfg := types.DefaultConfig()
	rep, err := Run(fsys, Options{
		InputDir:   "in",
		Template:   types.TemplateSOAP,
		OutDir:     "out",
		OutFormat:  render.FormatMarkdown,
		BundleMode: types.BundleAuto,
	}, &cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.OKFiles)
}

func TestRunEmptyDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("in", 0o755))

	cfg := types.DefaultConfig()
	rep, err := Run(fsys, Options{
		InputDir:   "in",
		Glob:       "*.txt",
		Template:   types.TemplateSOAP,
		OutDir:     "out",
		OutFormat:  render.FormatJSON,
		BundleMode: types.BundleAuto,
	}, &cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 0, rep.TotalFiles)
}

func TestRunSplitsBundles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeInput(t, fsys, "in/bundle.txt",
		"Subjective: cough\nPlan: rest\n----- NOTE -----\nSubjective: better\nPlan: none")

	cfg := types.DefaultConfig()
	var progress bytes.Buffer
	rep, err := Run(fsys, Options{
		InputDir:   "in",
		Glob:       "*.txt",
		Template:   types.TemplateSOAP,
		OutDir:     "out",
		OutFormat:  render.FormatJSON,
		BundleMode: types.BundleOn,
	}, &cfg, &progress)
	require.NoError(t, err)

	assert.Equal(t, 1, rep.OKFiles)
	assert.Equal(t, 2, rep.CountsBySection["Subjective"])
	assert.Contains(t, progress.String(), "(2 note(s))")
}

func TestFileStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"notes/visit.txt", "visit"},
		{"visit.note.txt", "visit.note"},
		{"visit", "visit"},
		{".txt", "output"},
	}
	for _, tt := range tests {
		if got := FileStem(tt.path); got != tt.want {
			t.Errorf("FileStem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
