package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/charcount/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize charcount configuration",
	Long: `Write a default config.yaml to your config directory.

The file holds:
  - theme               (auto, light or dark)
  - exclude_whitespace  (start with "Exclude space" checked)
  - density_rows        (letters shown before "See more")
  - bar_width           (width of the density bars)
  - big_numbers         (draw the counters in block digits)`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return err
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing charcount configuration in %s\n\n", configDir)
	fmt.Fprintf(out, "  Created %s\n\n", config.FileName)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit config.yaml or use the Settings view in the TUI")
	fmt.Fprintln(out, "  2. Run 'charcount' to start counting")

	return nil
}
