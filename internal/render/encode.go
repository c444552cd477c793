// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/meshintel/clinote/pkg/types"
)

// JSON renders notes as indented JSON. A single note is emitted as an
// object rather than a one-element array.
func JSON(notes []types.StructuredNote) (string, error) {
	var payload any = notes
	if len(notes) == 1 {
		payload = notes[0]
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return string(data), nil
}

// YAML renders notes as a YAML document. A single note is emitted as a
// mapping rather than a one-element sequence.
func YAML(notes []types.StructuredNote) (string, error) {
	var payload any = notes
	if len(notes) == 1 {
		payload = notes[0]
	}
	data, err := yaml.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return string(data), nil
}
