// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/meshintel/clinote/internal/parser"
	"github.com/meshintel/clinote/internal/render"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Structure a note file and write the rendered output",
	Long: `Parse reads a note file, splits bundles, structures each note against
the chosen template, and writes the result in the requested output format
(md, json, yaml, or csv).`,
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	out, _ := cmd.Flags().GetString("out")
	outFormatRaw, _ := cmd.Flags().GetString("out-format")

	template, err := templateFlag(cmd)
	if err != nil {
		return err
	}
	outFormat, err := render.ParseOutputFormat(outFormatRaw)
	if err != nil {
		return err
	}
	mode, err := bundleModeFlag(cmd, cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	notes := parser.ParseNotes(string(data), template, mode, cfg, input,
		parser.Options{ApplyHeuristics: cfg.EnableFallbackHeuristics})

	rendered, err := render.Notes(notes, outFormat, cfg.CSV.Layout)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d note(s) to %s\n", len(notes), out)
	return nil
}

func init() {
	parseCmd.Flags().String("input", "", "input note file")
	parseCmd.Flags().String("template", "soap", "target template: soap, hp, or discharge")
	parseCmd.Flags().String("out", "", "output file path")
	parseCmd.Flags().String("out-format", "md", "output format: md, json, yaml, or csv")
	parseCmd.Flags().String("bundle", "", "bundle mode: auto, on, or off (default: config)")
	_ = parseCmd.MarkFlagRequired("input")
	_ = parseCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(parseCmd)
}
