package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/f3rmion/charcount/internal/metrics"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of the analyze command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const stdinName = "-"

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file...]",
	Short: "Print text statistics for files or stdin",
	Long: `Print the character, word and sentence counts and the letter density
of each file. With no file, or when the file is -, read standard input.

Examples:
  charcount analyze essay.txt
  charcount analyze --exclude-whitespace --format json a.md b.md
  echo "Hello world. Nice day!" | charcount analyze --all`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().Bool("exclude-whitespace", false, "leave whitespace out of the character count")
	analyzeCmd.Flags().StringP("format", "f", FormatText, "output format: text, json or yaml")
	analyzeCmd.Flags().Bool("all", false, "list every letter in text output")
	analyzeCmd.Flags().Int("top", 0, "letters listed in text output (default from config)")
}

// fileReport is the report of one input.
type fileReport struct {
	Source         string `json:"source" yaml:"source"`
	metrics.Report `yaml:",inline"`
}

// input is the text of one file or stdin.
type input struct {
	Source string
	Text   string
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	format = strings.ToLower(format)
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}

	opts := metrics.Options{ExcludeWhitespace: cfg.ExcludeWhitespace}
	if cmd.Flags().Changed("exclude-whitespace") {
		opts.ExcludeWhitespace, _ = cmd.Flags().GetBool("exclude-whitespace")
	}

	top := cfg.DensityRows
	if cmd.Flags().Changed("top") {
		top, _ = cmd.Flags().GetInt("top")
	}
	if all, _ := cmd.Flags().GetBool("all"); all {
		top = 0
	}

	inputs, err := readInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	reports := make([]fileReport, 0, len(inputs))
	for _, in := range inputs {
		reports = append(reports, fileReport{
			Source: in.Source,
			Report: metrics.Analyze(in.Text, opts),
		})
	}

	return writeReports(cmd.OutOrStdout(), reports, format, top)
}

// readInputs reads every named file, or stdin when names is empty.
func readInputs(stdin io.Reader, names []string) ([]input, error) {
	if len(names) == 0 {
		names = []string{stdinName}
	}

	inputs := make([]input, 0, len(names))
	for _, name := range names {
		var (
			data []byte
			err  error
		)
		if name == stdinName {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		inputs = append(inputs, input{Source: name, Text: string(data)})
	}

	return inputs, nil
}

// writeReports prints reports in format. Text output lists at most top
// letters per report; a non-positive top lists all of them.
func writeReports(w io.Writer, reports []fileReport, format string, top int) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		var v any = reports
		if len(reports) == 1 {
			v = reports[0]
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		var v any = reports
		if len(reports) == 1 {
			v = reports[0]
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	for i, r := range reports {
		if len(reports) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", r.Source)
		}
		if _, err := io.WriteString(w, r.Text(top)); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
