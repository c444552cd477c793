// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meshintel/clinote/internal/parser"
	"github.com/meshintel/clinote/internal/validate"
	"github.com/meshintel/clinote/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate [INPUT]",
	Short: "Validate a note file against a template, or summarize a config",
	Long: `Validate structures the input file and checks every note against the
template's completeness rules. With --json the issues are printed as JSON.
Error-severity issues set exit code 2.

Without an input file, --config prints the resolved configuration instead.`,
	Example: `  clinote validate notes.txt --template soap --strict
  clinote validate --config clinote.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

// noteReport pairs one note's index with its issues for output.
type noteReport struct {
	NoteIndex int                     `json:"note_index"`
	Issues    []types.ValidationIssue `json:"issues"`
}

// validationSummary is the --json payload.
type validationSummary struct {
	Input    string         `json:"input"`
	Template types.Template `json:"template"`
	Strict   bool           `json:"strict"`
	Reports  []noteReport   `json:"reports"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	asJSON, _ := cmd.Flags().GetBool("json")

	if len(args) == 0 {
		// Config summary mode.
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			return fmt.Errorf("provide an input file to validate or use --config to inspect a config file")
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), cfg.Summary())
		return nil
	}

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

	hasError := false
	reports := make([]noteReport, 0, len(notes))
	for i := range notes {
		issues := validate.Note(&notes[i], template, strict)
		if types.HasError(issues) {
			hasError = true
		}
		reports = append(reports, noteReport{NoteIndex: i + 1, Issues: issues})
	}

	if asJSON {
		payload := validationSummary{
			Input:    input,
			Template: template,
			Strict:   strict,
			Reports:  reports,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling summary: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		printValidationText(cmd, reports)
	}

	if hasError {
		os.Exit(2)
	}
	return nil
}

func printValidationText(cmd *cobra.Command, reports []noteReport) {
	out := cmd.OutOrStdout()
	for _, report := range reports {
		fmt.Fprintf(out, "Note %d:\n", report.NoteIndex)
		if len(report.Issues) == 0 {
			fmt.Fprintln(out, "  No issues detected.")
			continue
		}
		for _, issue := range report.Issues {
			section := ""
			if issue.Section != "" {
				section = fmt.Sprintf(" [%s]", issue.Section)
			}
			fmt.Fprintf(out, "  - %s: %s%s\n", issue.Severity, issue.Message, section)
		}
	}
}

func init() {
	validateCmd.Flags().String("template", "soap", "target template: soap, hp, or discharge")
	validateCmd.Flags().Bool("strict", false, "escalate missing required sections to errors")
	validateCmd.Flags().Bool("json", false, "print issues as JSON")

	rootCmd.AddCommand(validateCmd)
}
