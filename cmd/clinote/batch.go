// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/meshintel/clinote/internal/batch"
	"github.com/meshintel/clinote/internal/render"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Structure every matching note file in a directory",
	Long: `Batch processes every file in --input-dir matching the glob pattern,
writes one rendered output per input, and writes batch_report.json with
per-section counts, warning totals, and isolated per-file failures.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	inputDir, _ := cmd.Flags().GetString("input-dir")
	glob, _ := cmd.Flags().GetString("glob")
	outDir, _ := cmd.Flags().GetString("out-dir")
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

	fsys := afero.NewOsFs()
	rep, err := batch.Run(fsys, batch.Options{
		InputDir:   inputDir,
		Glob:       glob,
		Template:   template,
		OutDir:     outDir,
		OutFormat:  outFormat,
		BundleMode: mode,
	}, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	reportPath := filepath.Join(outDir, "batch_report.json")
	if err := rep.WriteTo(fsys, reportPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Processed %d file(s), %d failed; report at %s\n",
		rep.TotalFiles, rep.FailedFiles, reportPath)
	return nil
}

func init() {
	batchCmd.Flags().String("input-dir", "", "directory of input note files")
	batchCmd.Flags().String("glob", "", "file pattern within input-dir (default: config glob_default)")
	batchCmd.Flags().String("template", "soap", "target template: soap, hp, or discharge")
	batchCmd.Flags().String("out-dir", "", "directory for rendered outputs and the report")
	batchCmd.Flags().String("out-format", "md", "output format: md, json, yaml, or csv")
	batchCmd.Flags().String("bundle", "", "bundle mode: auto, on, or off (default: config)")
	_ = batchCmd.MarkFlagRequired("input-dir")
	_ = batchCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(batchCmd)
}
