// Package theme detects the terminal's light/dark colour scheme.
//
// Detection runs once at startup. Whenever the scheme cannot be determined
// (output is not a terminal, colour is disabled, the terminal does not answer
// the background query) the scheme is Light.
package theme

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Scheme is a colour scheme.
type Scheme int

const (
	Light Scheme = iota
	Dark
)

// String returns "light" or "dark".
func (s Scheme) String() string {
	if s == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite scheme.
func (s Scheme) Toggle() Scheme {
	if s == Dark {
		return Light
	}
	return Dark
}

// Environment is everything the probe reads from the outside world.
type Environment struct {
	IsTerminal bool
	Getenv     func(string) string
	Background func() termenv.Color
}

// Scheme inspects the environment and reports the colour scheme.
func (e Environment) Scheme() Scheme {
	if !e.IsTerminal || e.Background == nil {
		return Light
	}

	getenv := e.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return Light
	}

	bg := e.Background()
	if bg == nil {
		return Light
	}
	if _, ok := bg.(termenv.NoColor); ok {
		return Light
	}

	// termenv falls back to ANSI black when the terminal ignores the OSC 11
	// query and COLORFGBG is unset.
	if c, ok := bg.(termenv.ANSIColor); ok && c == termenv.ANSIBlack && !strings.Contains(getenv("COLORFGBG"), ";") {
		return Light
	}

	_, _, l := termenv.ConvertToRGB(bg).Hsl()
	if l < 0.5 {
		return Dark
	}
	return Light
}

// Detect probes the terminal attached to f.
func Detect(f *os.File) Scheme {
	if f == nil {
		return Light
	}

	fd := f.Fd()
	out := termenv.NewOutput(f)
	env := Environment{
		IsTerminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Getenv:     os.Getenv,
		Background: out.BackgroundColor,
	}
	return env.Scheme()
}

// Resolve applies a configured theme ("auto", "light" or "dark"). Anything
// other than light or dark defers to probe; a nil probe means Light.
func Resolve(setting string, probe func() Scheme) Scheme {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "light":
		return Light
	case "dark":
		return Dark
	}
	if probe == nil {
		return Light
	}
	return probe()
}
