// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/clinote/pkg/types"
)

func TestBatchAggregation(t *testing.T) {
	rep := New("clinote", "1.2.3")

	rep.RecordOK([]types.StructuredNote{
		{
			Sections: []types.Section{{Name: "Subjective"}, {Name: "Plan"}},
			Warnings: []types.ParseWarning{{Code: "empty_section"}},
		},
		{
			Sections: []types.Section{{Name: "Plan"}},
		},
	})
	rep.RecordFailure("bad.txt", errors.New("unreadable"))
	rep.Finalize()

	assert.Equal(t, 2, rep.TotalFiles)
	assert.Equal(t, 1, rep.OKFiles)
	assert.Equal(t, 1, rep.FailedFiles)
	assert.Equal(t, 1, rep.CountsBySection["Subjective"])
	assert.Equal(t, 2, rep.CountsBySection["Plan"])
	assert.Equal(t, 1, rep.WarningsCount)
	require.Len(t, rep.Failures, 1)
	assert.Equal(t, "bad.txt", rep.Failures[0].File)
	assert.Equal(t, "unreadable", rep.Failures[0].Error)
}

func TestWriteTo(t *testing.T) {
	fsys := afero.NewMemMapFs()
	rep := New("clinote", "dev")
	rep.Finalize()

	require.NoError(t, rep.WriteTo(fsys, "out/nested/batch_report.json"))

	data, err := afero.ReadFile(fsys, "out/nested/batch_report.json")
	require.NoError(t, err)

	var decoded Batch
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "clinote", decoded.ToolName)
	assert.Equal(t, "dev", decoded.Version)
	assert.NotNil(t, decoded.Failures)
}
