// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meshintel/clinote/internal/parser"
	"github.com/meshintel/clinote/internal/validate"
)

var previewCmd = &cobra.Command{
	Use:     "preview INPUT",
	Short:   "Preview detected sections and line counts",
	Example: "  clinote preview notes.txt --template hp",
	Args:    cobra.ExactArgs(1),
	RunE:    runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	template, err := templateFlag(cmd)
	if err != nil {
		return err
	}

	input := args[0]
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	notes := parser.ParseNotes(string(data), template, cfg.Bundle.ModeDefault, cfg, input,
		parser.Options{ApplyHeuristics: cfg.EnableFallbackHeuristics})

	out := cmd.OutOrStdout()
	for i := range notes {
		fmt.Fprintf(out, "Note %d:\n", i+1)
		for _, summary := range validate.SummarizeSections(&notes[i]) {
			fmt.Fprintf(out, "- %s: %d lines, %d chars\n",
				summary.Name, summary.LineCount, summary.CharCount)
		}
		if i+1 < len(notes) {
			fmt.Fprintln(out)
		}
	}
	return nil
}

func init() {
	previewCmd.Flags().String("template", "soap", "target template: soap, hp, or discharge")

	rootCmd.AddCommand(previewCmd)
}
