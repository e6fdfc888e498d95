package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/f3rmion/charcount/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration charcount would use, after environment
variables (CHARCOUNT_THEME, CHARCOUNT_EXCLUDE_WHITESPACE, ...) and flags
are applied over config.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "# %s\n", filepath.Join(getConfigDir(), config.FileName))
	_, err = w.Write(out)
	return err
}
