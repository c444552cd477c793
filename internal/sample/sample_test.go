// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sample

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/clinote/internal/parser"
	"github.com/meshintel/clinote/internal/validate"
	"github.com/meshintel/clinote/pkg/types"
)

func TestGenerateWritesSamplesAndGold(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, Generate(fsys, "samples", 6, 2))

	for i := 1; i <= 6; i++ {
		for _, name := range []string{
			fmt.Sprintf("samples/sample_%d.txt", i),
			fmt.Sprintf("samples/sample_%d.gold.json", i),
		} {
			exists, err := afero.Exists(fsys, name)
			require.NoError(t, err)
			assert.True(t, exists, name)
		}
	}
	for b := 1; b <= 2; b++ {
		exists, err := afero.Exists(fsys, fmt.Sprintf("samples/bundle_%d.txt", b))
		require.NoError(t, err)
		assert.True(t, exists)
	}
}

func TestGoldNoteShape(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, Generate(fsys, "samples", 3, 0))

	data, err := afero.ReadFile(fsys, "samples/sample_1.gold.json")
	require.NoError(t, err)

	var gold types.StructuredNote
	require.NoError(t, json.Unmarshal(data, &gold))
	assert.Equal(t, "sample-1", gold.ID)
	assert.Equal(t, types.TemplateSOAP, gold.Template)
	require.NotEmpty(t, gold.Sections)
	for _, section := range gold.Sections {
		assert.Equal(t, goldConfidence, section.Confidence, section.Name)
		assert.NotEmpty(t, section.Content, section.Name)
	}
}

// Each generated sample must structure cleanly under its own template:
// every gold section recovered, no errors even in strict validation.
func TestSamplesRoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, Generate(fsys, "samples", 3, 0))

	cfg := types.DefaultConfig()
	templates := types.Templates()
	for i := 1; i <= 3; i++ {
		template := templates[(i-1)%len(templates)]

		text, err := afero.ReadFile(fsys, fmt.Sprintf("samples/sample_%d.txt", i))
		require.NoError(t, err)
		goldData, err := afero.ReadFile(fsys, fmt.Sprintf("samples/sample_%d.gold.json", i))
		require.NoError(t, err)
		var gold types.StructuredNote
		require.NoError(t, json.Unmarshal(goldData, &gold))

		note := parser.ParseNote(string(text), template, &cfg, "", i, parser.Options{})

		var parsedNames, goldNames []string
		for _, s := range note.Sections {
			parsedNames = append(parsedNames, s.Name)
		}
		for _, s := range gold.Sections {
			goldNames = append(goldNames, s.Name)
		}
		assert.Equal(t, goldNames, parsedNames, "sample %d (%s)", i, template)

		issues := validate.Note(&note, template, true)
		assert.False(t, types.HasError(issues), "sample %d (%s): %v", i, template, issues)
	}
}

func TestBundleConcatenatesSamples(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, Generate(fsys, "samples", 6, 1))

	data, err := afero.ReadFile(fsys, "samples/bundle_1.txt")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), bundleDelimiter))
}
