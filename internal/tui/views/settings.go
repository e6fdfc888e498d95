package views

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/charcount/internal/config"
	"github.com/f3rmion/charcount/internal/tui/styles"
)

// SettingsChangedMsg is sent whenever a setting is edited.
type SettingsChangedMsg struct {
	Config config.Config
}

// SettingsSavedMsg reports the result of writing the config file.
type SettingsSavedMsg struct {
	Path string
	Err  error
}

const (
	settingTheme = iota
	settingExcludeWhitespace
	settingDensityRows
	settingBarWidth
	settingBigNumbers
	settingCount
)

var themeCycle = []string{config.ThemeAuto, config.ThemeLight, config.ThemeDark}

// SettingsModel is the settings view model.
type SettingsModel struct {
	styles *styles.Styles
	config config.Config
	path   string

	selected int
	status   string
	err      error

	width  int
	height int
}

// NewSettingsModel creates a settings view editing cfg, saved to path.
func NewSettingsModel(st *styles.Styles, cfg *config.Config, path string) SettingsModel {
	if cfg == nil {
		cfg = config.Default()
	}
	return SettingsModel{
		styles: st,
		config: *cfg,
		path:   path,
	}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetStyles restyles the view.
func (m *SettingsModel) SetStyles(st *styles.Styles) {
	m.styles = st
}

// Config returns a copy of the edited configuration.
func (m SettingsModel) Config() config.Config {
	return m.config
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.selected = (m.selected + 1) % settingCount
			return m, nil
		case "k", "up":
			m.selected = (m.selected + settingCount - 1) % settingCount
			return m, nil
		case "enter", " ", "l", "right", "+":
			m.adjust(1)
			return m, m.changed()
		case "h", "left", "-":
			m.adjust(-1)
			return m, m.changed()
		case "w", "ctrl+s":
			return m, m.save()
		}

	case SettingsSavedMsg:
		m.err = msg.Err
		m.status = ""
		if msg.Err == nil {
			m.status = "Saved to " + msg.Path
		}
		return m, nil
	}

	return m, nil
}

// adjust moves the selected setting one step in direction dir.
func (m *SettingsModel) adjust(dir int) {
	m.status = ""
	switch m.selected {
	case settingTheme:
		i := 0
		for j, t := range themeCycle {
			if t == m.config.Theme {
				i = j
			}
		}
		i = (i + dir + len(themeCycle)) % len(themeCycle)
		m.config.Theme = themeCycle[i]
	case settingExcludeWhitespace:
		m.config.ExcludeWhitespace = !m.config.ExcludeWhitespace
	case settingDensityRows:
		m.config.DensityRows = max(m.config.DensityRows+dir, 1)
	case settingBarWidth:
		m.config.BarWidth = max(m.config.BarWidth+5*dir, 5)
	case settingBigNumbers:
		m.config.BigNumbers = !m.config.BigNumbers
	}
}

func (m SettingsModel) changed() tea.Cmd {
	cfg := m.config
	return func() tea.Msg {
		return SettingsChangedMsg{Config: cfg}
	}
}

func (m SettingsModel) save() tea.Cmd {
	cfg := m.config
	path := m.path
	return func() tea.Msg {
		if path == "" {
			return SettingsSavedMsg{Err: fmt.Errorf("no config path")}
		}
		return SettingsSavedMsg{Path: path, Err: config.Save(path, &cfg)}
	}
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder
	st := m.styles

	b.WriteString(st.Title.Render("Settings"))
	b.WriteString("\n")
	b.WriteString(st.Path.Render("Config: " + m.path))
	b.WriteString("\n")
	b.WriteString(st.Divider.Render(strings.Repeat("─", max(min(m.width-4, 60), 10))))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Theme", m.config.Theme},
		{"Exclude space", checkbox(m.config.ExcludeWhitespace)},
		{"Letters before more", strconv.Itoa(m.config.DensityRows)},
		{"Bar width", strconv.Itoa(m.config.BarWidth)},
		{"Big numbers", checkbox(m.config.BigNumbers)},
	}

	for i, row := range rows {
		prefix := "  "
		value := st.Value.Render(row.value)
		if i == m.selected {
			prefix = "> "
			value = st.ListItemSelected.Render(row.value)
		}
		b.WriteString(prefix)
		b.WriteString(st.Label.Render(row.label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(st.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(st.Copied.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(st.Help.Render("j/k: select • enter/←→: change • w: save • esc: menu"))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
