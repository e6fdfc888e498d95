// Package cmd contains all CLI commands for charcount.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/charcount/internal/clipboard"
	"github.com/f3rmion/charcount/internal/config"
	"github.com/f3rmion/charcount/internal/logging"
	"github.com/f3rmion/charcount/internal/theme"
	"github.com/f3rmion/charcount/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LogFileName is the log written in the config directory with --verbose.
const LogFileName = "charcount.log"

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "charcount",
	Short: "Character Counter - live text statistics in your terminal",
	Long: `charcount counts the characters, words and sentences of a text and
shows how often each letter A-Z appears.

Type or paste text into the editor and every figure updates as you type:
  - Total characters (optionally without whitespace)
  - Total words and sentences
  - Letter density, most frequent letters first

Running 'charcount' without arguments launches the interactive TUI.
Use 'charcount analyze' to print the same figures for files or stdin.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/charcount)")
	rootCmd.PersistentFlags().Bool("verbose", false, "write a debug log to the config directory")
	rootCmd.PersistentFlags().String("log-file", "", "log file path (implies logging)")
	rootCmd.PersistentFlags().String("theme", "", "colour theme: auto, light or dark")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding config directory:", err)
			os.Exit(1)
		}
		viper.SetDefault("config_dir", dir)
	}

	viper.SetEnvPrefix("CHARCOUNT")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig loads config.yaml from the config directory and layers
// environment variables and flags over it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		return nil, err
	}

	if t := viper.GetString("theme"); t != "" {
		cfg.Theme = t
	}
	if viper.IsSet("exclude_whitespace") {
		cfg.ExcludeWhitespace = viper.GetBool("exclude_whitespace")
	}
	if viper.IsSet("density_rows") {
		cfg.DensityRows = viper.GetInt("density_rows")
	}
	if viper.IsSet("big_numbers") {
		cfg.BigNumbers = viper.GetBool("big_numbers")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logFilePath returns where logs go, or "" when logging is off.
func logFilePath() string {
	if path := viper.GetString("log_file"); path != "" {
		return path
	}
	if viper.GetBool("verbose") {
		return filepath.Join(getConfigDir(), LogFileName)
	}
	return ""
}

// openLogger opens the log file selected by --log-file or --verbose.
func openLogger() (*slog.Logger, func() error, error) {
	path := logFilePath()
	if path != "" {
		if err := config.EnsureConfigDir(filepath.Dir(path)); err != nil {
			return nil, nil, err
		}
	}
	return logging.OpenFile(path)
}

// runTUI launches the TUI with an empty editor.
func runTUI(cmd *cobra.Command, args []string) error {
	return launchTUI("", "")
}

// launchTUI runs the TUI with text preloaded and the file picker in dir.
func launchTUI(text, dir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Probe before bubbletea takes over the terminal input.
	detected := theme.Detect(os.Stdout)
	if !clipboard.Available() {
		logger.Warn("clipboard unavailable, copy is disabled")
	}

	configDir := getConfigDir()
	if err := config.EnsureConfigDir(configDir); err != nil {
		logger.Warn("config directory unavailable", "dir", configDir, "error", err)
	}

	p := tea.NewProgram(
		tui.NewApp(tui.Options{
			Config:     cfg,
			ConfigPath: filepath.Join(configDir, config.FileName),
			Detected:   detected,
			Text:       text,
			StartDir:   dir,
			Logger:     logger,
		}),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logger.Error("tui failed", "error", err)
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
