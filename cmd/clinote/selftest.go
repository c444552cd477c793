// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/meshintel/clinote/internal/selftest"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the pipeline over fixture files and summarize outcomes",
	Long: `Selftest sweeps fixture files (a directory, a glob pattern, or a single
file) through structuring and validation, optionally rendering outputs.
Exit code 1 signals runtime failures, 2 signals validation errors.`,
	Example: "  clinote selftest --fixtures tests/fixtures --template soap --strict --json",
	RunE:    runSelftest,
}

func runSelftest(cmd *cobra.Command, args []string) error {
	fixtures, _ := cmd.Flags().GetString("fixtures")
	strict, _ := cmd.Flags().GetBool("strict")
	asJSON, _ := cmd.Flags().GetBool("json")
	outDir, _ := cmd.Flags().GetString("out")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	template, err := templateFlag(cmd)
	if err != nil {
		return err
	}

	summary, err := selftest.Run(afero.NewOsFs(), fixtures, template, strict, outDir, cfg)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling summary: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), selftest.Text(summary))
	}

	if summary.RuntimeFailures > 0 {
		os.Exit(1)
	}
	if summary.TotalErrors > 0 {
		os.Exit(2)
	}
	return nil
}

func init() {
	selftestCmd.Flags().String("fixtures", "", "fixtures directory, glob pattern, or file")
	selftestCmd.Flags().String("template", "soap", "target template: soap, hp, or discharge")
	selftestCmd.Flags().Bool("strict", false, "escalate missing required sections to errors")
	selftestCmd.Flags().Bool("json", false, "print the summary as JSON")
	selftestCmd.Flags().String("out", "", "directory for rendered fixture outputs")
	_ = selftestCmd.MarkFlagRequired("fixtures")

	rootCmd.AddCommand(selftestCmd)
}
