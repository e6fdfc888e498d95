package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/charcount/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// resetFlags restores every flag of c and its children to its default.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

// execute runs the CLI with args against a fresh config directory.
func execute(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	cfgDir = ""

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeStdin(t *testing.T) {
	out, err := execute(t, t.TempDir(), "Hello world. Nice day!", "analyze")
	require.NoError(t, err)

	assert.Contains(t, out, "Total Characters: 22")
	assert.Contains(t, out, "Total Words:      4")
	assert.Contains(t, out, "Total Sentences:  2")
	assert.Contains(t, out, "Total Letters:    17")
	assert.Contains(t, out, "L  3 (17.65%)")
	assert.Contains(t, out, "... 7 more")
}

func TestAnalyzeFlags(t *testing.T) {
	out, err := execute(t, t.TempDir(), "Hello world. Nice day!", "analyze", "--exclude-whitespace", "--all")
	require.NoError(t, err)

	assert.Contains(t, out, "Total Characters: 19")
	assert.Contains(t, out, "Y  1 (5.88%)")
	assert.NotContains(t, out, "more")

	out, err = execute(t, t.TempDir(), "abcabc", "analyze", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "A  2 (33.33%)")
	assert.Contains(t, out, "... 2 more")
}

func TestAnalyzeJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "It rains. It pours.")

	out, err := execute(t, t.TempDir(), "", "analyze", "--format", "json", path)
	require.NoError(t, err)

	var got struct {
		Source     string `json:"source"`
		Characters int    `json:"characters"`
		Words      int    `json:"words"`
		Sentences  int    `json:"sentences"`
		Density    []struct {
			Letter  string  `json:"letter"`
			Count   int     `json:"count"`
			Percent float64 `json:"percent"`
		} `json:"density"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, path, got.Source)
	assert.Equal(t, 19, got.Characters)
	assert.Equal(t, 4, got.Words)
	assert.Equal(t, 2, got.Sentences)
	require.NotEmpty(t, got.Density)
	assert.Equal(t, "I", got.Density[0].Letter)
}

func TestAnalyzeYAMLMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "one")
	b := writeFile(t, dir, "b.txt", "two words")

	out, err := execute(t, t.TempDir(), "", "analyze", "-f", "yaml", a, b)
	require.NoError(t, err)

	var got []fileReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0].Source)
	assert.Equal(t, 1, got[0].Words)
	assert.Equal(t, 2, got[1].Words)
}

func TestAnalyzeTextMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "one")
	b := writeFile(t, dir, "b.txt", "")

	out, err := execute(t, t.TempDir(), "", "analyze", a, b)
	require.NoError(t, err)

	assert.Contains(t, out, "==> "+a+" <==")
	assert.Contains(t, out, "==> "+b+" <==")
	assert.Contains(t, out, "Letter Density\n-\n")
}

func TestAnalyzeErrors(t *testing.T) {
	_, err := execute(t, t.TempDir(), "", "analyze", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, t.TempDir(), "", "analyze", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "missing.txt")
}

func TestAnalyzeUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.ExcludeWhitespace = true
	cfg.DensityRows = 2
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	out, err := execute(t, dir, "a b c", "analyze")
	require.NoError(t, err)

	assert.Contains(t, out, "Total Characters: 3")
	assert.Contains(t, out, "... 1 more")
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charcount")

	out, err := execute(t, dir, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created config.yaml")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = execute(t, dir, "", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, dir, "", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHARCOUNT_THEME", "dark")

	out, err := execute(t, dir, "", "config")
	require.NoError(t, err)

	assert.Contains(t, out, "# "+filepath.Join(dir, config.FileName))

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, config.ThemeDark, got.Theme)
	assert.Equal(t, config.DefaultDensityRows, got.DensityRows)
}

func TestConfigCommandThemeFlag(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "config", "--theme", "Light")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: light")

	_, err = execute(t, t.TempDir(), "", "config", "--theme", "sepia")
	assert.Error(t, err)
}

func TestReadInputs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "f.txt", "file text")

	inputs, err := readInputs(strings.NewReader("piped"), nil)
	require.NoError(t, err)
	assert.Equal(t, []input{{Source: "-", Text: "piped"}}, inputs)

	inputs, err = readInputs(strings.NewReader("piped"), []string{path, "-"})
	require.NoError(t, err)
	assert.Equal(t, []input{{Source: path, Text: "file text"}, {Source: "-", Text: "piped"}}, inputs)
}
