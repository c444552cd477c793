// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the clinote CLI: deterministic
// structuring and validation of clinical note text.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meshintel/clinote/internal/config"
	"github.com/meshintel/clinote/internal/parser"
	"github.com/meshintel/clinote/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the clinote CLI.
var rootCmd = &cobra.Command{
	Use:   "clinote",
	Short: "Deterministic clinical note structuring",
	Long: `clinote converts unstructured clinical note text into structured,
validated notes organized by a target template (soap, hp, or discharge).

The pipeline is deterministic and fully local: bundle splitting, heading
detection, sectionizing, and validation are pure text transformations with
no model calls and no network access.`,
	Example: `  clinote validate notes.txt --template soap --strict
  clinote preview notes.txt --template hp
  clinote init --path clinote.yaml
  clinote demo`,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./clinote.yaml or ~/.config/clinote/clinote.yaml)")
}

// loadConfig resolves the configuration honoring the --config flag.
func loadConfig(cmd *cobra.Command) (*types.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// templateFlag parses a --template flag value, defaulting to soap.
func templateFlag(cmd *cobra.Command) (types.Template, error) {
	raw, _ := cmd.Flags().GetString("template")
	if raw == "" {
		return types.TemplateSOAP, nil
	}
	template, ok := types.ParseTemplate(raw)
	if !ok {
		return "", fmt.Errorf("unknown template %q (want soap, hp, or discharge)", raw)
	}
	return template, nil
}

// bundleModeFlag parses a --bundle flag value, falling back to the
// configured default when the flag is unset.
func bundleModeFlag(cmd *cobra.Command, cfg *types.Config) (types.BundleMode, error) {
	raw, _ := cmd.Flags().GetString("bundle")
	if raw == "" {
		return cfg.Bundle.ModeDefault, nil
	}
	switch types.BundleMode(raw) {
	case types.BundleAuto, types.BundleOn, types.BundleOff:
		return types.BundleMode(raw), nil
	}
	return "", fmt.Errorf("unknown bundle mode %q (want auto, on, or off)", raw)
}

func main() {
	parser.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
