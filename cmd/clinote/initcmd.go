// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meshintel/clinote/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Init writes a commented default clinote.yaml. It refuses to overwrite.`,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.WriteFile(path, []byte(config.DefaultTemplate), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created default config at %s\n", path)
	return nil
}

func init() {
	initCmd.Flags().String("path", "clinote.yaml", "where to write the config file")

	rootCmd.AddCommand(initCmd)
}
