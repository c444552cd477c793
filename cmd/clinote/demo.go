// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/meshintel/clinote/internal/batch"
	"github.com/meshintel/clinote/internal/parser"
	"github.com/meshintel/clinote/internal/render"
	"github.com/meshintel/clinote/internal/sample"
	"github.com/meshintel/clinote/internal/validate"
	"github.com/meshintel/clinote/pkg/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run demo conversion and validation on generated samples",
	Long: `Demo generates sample notes, structures each against a rotating
template, and writes JSON outputs plus validation reports into
OUT-DIR/converted/.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out-dir")
	fsys := afero.NewOsFs()

	if err := sample.Generate(fsys, outDir, 6, 2); err != nil {
		return err
	}

	convertedDir := filepath.Join(outDir, "converted")
	if err := fsys.MkdirAll(convertedDir, 0o755); err != nil {
		return fmt.Errorf("creating demo output directory: %w", err)
	}

	cfg := types.DefaultConfig()
	matches, err := afero.Glob(fsys, filepath.Join(outDir, "sample_*.txt"))
	if err != nil {
		return fmt.Errorf("globbing samples: %w", err)
	}

	templates := types.Templates()
	for i, path := range matches {
		template := templates[i%len(templates)]

		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading sample: %w", err)
		}
		note := parser.ParseNote(string(data), template, &cfg, path, 1,
			parser.Options{ApplyHeuristics: cfg.EnableFallbackHeuristics})

		rendered, err := render.Notes([]types.StructuredNote{note}, render.FormatJSON, cfg.CSV.Layout)
		if err != nil {
			return err
		}
		stem := batch.FileStem(path)
		jsonPath := filepath.Join(convertedDir, stem+".json")
		if err := afero.WriteFile(fsys, jsonPath, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("writing demo output: %w", err)
		}

		issues := validate.Note(&note, template, false)
		issueData, err := json.MarshalIndent(issues, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling issues: %w", err)
		}
		reportPath := filepath.Join(convertedDir, stem+".validation.json")
		if err := afero.WriteFile(fsys, reportPath, issueData, 0o644); err != nil {
			return fmt.Errorf("writing validation report: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Demo outputs written to %s\n", convertedDir)
	return nil
}

func init() {
	demoCmd.Flags().String("out-dir", "demo_outputs", "directory for demo outputs")

	rootCmd.AddCommand(demoCmd)
}
