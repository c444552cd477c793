// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/meshintel/clinote/internal/sample"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate synthetic sample notes with gold outputs",
	Long: `Sample writes deterministic synthetic note files (sample_N.txt) with
gold-standard structured counterparts (sample_N.gold.json), and optional
bundle files concatenating consecutive samples.`,
	RunE: runSample,
}

func runSample(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out-dir")
	n, _ := cmd.Flags().GetInt("n")
	bundles, _ := cmd.Flags().GetInt("bundles")

	if err := sample.Generate(afero.NewOsFs(), outDir, n, bundles); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d sample(s) to %s\n", n, outDir)
	return nil
}

func init() {
	sampleCmd.Flags().String("out-dir", "", "directory for sample files")
	sampleCmd.Flags().Int("n", 6, "number of samples to generate")
	sampleCmd.Flags().Int("bundles", 0, "number of bundle files to generate")
	_ = sampleCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(sampleCmd)
}
