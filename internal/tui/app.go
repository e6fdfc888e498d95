// Package tui provides the interactive terminal UI for charcount.
package tui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/charcount/internal/config"
	"github.com/f3rmion/charcount/internal/logging"
	"github.com/f3rmion/charcount/internal/theme"
	"github.com/f3rmion/charcount/internal/tui/bignum"
	"github.com/f3rmion/charcount/internal/tui/styles"
	"github.com/f3rmion/charcount/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewAnalyze ViewType = iota
	ViewOpen
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// FileLoadedMsg is sent when a text file has been read
type FileLoadedMsg struct {
	Path string
	Text string
	Err  error
}

// Options configures a new AppModel.
type Options struct {
	Config     *config.Config
	ConfigPath string
	Detected   theme.Scheme // Result of the startup colour scheme probe
	Text       string       // Initial editor contents
	StartDir   string       // Initial file picker directory
	Logger     *slog.Logger
	Renderer   *bignum.Renderer
	Copy       func(string) error
}

// AppModel is the main TUI model
type AppModel struct {
	config     *config.Config
	configPath string
	logger     *slog.Logger

	detected theme.Scheme
	scheme   theme.Scheme
	styles   *styles.Styles

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	analyzeView    views.AnalyzeModel
	filePickerView views.FilePickerModel
	settingsView   views.SettingsModel

	loadErr error

	// Help overlay
	showHelp bool
}

// NewApp creates a new TUI application
func NewApp(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	detected := opts.Detected
	scheme := theme.Resolve(cfg.Theme, func() theme.Scheme { return detected })
	st := styles.New(scheme)

	renderer := opts.Renderer
	if renderer == nil {
		renderer = bignum.New()
	}

	menuItems := []MenuItem{
		{Label: "Analyze", View: ViewAnalyze, Shortcut: "1"},
		{Label: "Open File", View: ViewOpen, Shortcut: "2"},
		{Label: "Settings", View: ViewSettings, Shortcut: "3"},
	}

	app := AppModel{
		config:       cfg,
		configPath:   opts.ConfigPath,
		logger:       logger,
		detected:     detected,
		scheme:       scheme,
		styles:       st,
		sidebarWidth: 18,
		currentView:  ViewAnalyze,
		menuItems:    menuItems,

		analyzeView: views.NewAnalyzeModel(st, views.AnalyzeOptions{
			ExcludeWhitespace: cfg.ExcludeWhitespace,
			DensityRows:       cfg.DensityRows,
			BarWidth:          cfg.BarWidth,
			BigNumbers:        cfg.BigNumbers,
			Renderer:          renderer,
			Copy:              opts.Copy,
		}),
		filePickerView: views.NewFilePickerModel(st, opts.StartDir),
		settingsView:   views.NewSettingsModel(st, cfg, opts.ConfigPath),
	}

	if opts.Text != "" {
		app.analyzeView.SetText(opts.Text)
	}

	logger.Debug("tui started", "scheme", scheme.String(), "detected", detected.String())
	return app
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textarea.Blink
}

// Scheme returns the active colour scheme.
func (m AppModel) Scheme() theme.Scheme {
	return m.scheme
}

// CurrentView returns the view shown in the content area.
func (m AppModel) CurrentView() ViewType {
	return m.currentView
}

// SidebarActive reports whether the sidebar has keyboard focus.
func (m AppModel) SidebarActive() bool {
	return m.sidebarActive
}

// Analyze returns the analyze view.
func (m AppModel) Analyze() views.AnalyzeModel {
	return m.analyzeView
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Global keys
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.setScheme(m.scheme.Toggle())
			return m, nil
		case "esc":
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.focusSidebar()
			return m, nil
		case "tab":
			if m.sidebarActive {
				return m, m.switchView(m.currentView)
			}
			m.focusSidebar()
			return m, nil
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right":
				return m, m.switchView(m.menuItems[m.selectedMenu].View)
			}
			for _, item := range m.menuItems {
				if msg.String() == item.Shortcut {
					return m, m.switchView(item.View)
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.contentWidth()
		contentHeight := m.height - 2

		m.analyzeView.SetSize(contentWidth, contentHeight)
		m.filePickerView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)
		return m, nil

	case views.FileSelectedMsg:
		return m, loadFile(msg.Path)

	case FileLoadedMsg:
		if msg.Err != nil {
			m.loadErr = msg.Err
			m.logger.Error("loading file failed", "path", msg.Path, "error", msg.Err)
			return m, nil
		}
		m.loadErr = nil
		m.analyzeView.SetText(msg.Text)
		m.logger.Info("file loaded", "path", msg.Path, "characters", m.analyzeView.Report().Characters)
		return m, m.switchView(ViewAnalyze)

	case views.SettingsChangedMsg:
		cfg := msg.Config
		prev := m.config
		m.config = &cfg
		m.analyzeView.ApplyConfig(&cfg)
		// Live toggles only follow the settings that were edited.
		if cfg.ExcludeWhitespace != prev.ExcludeWhitespace {
			m.analyzeView.SetExcludeWhitespace(cfg.ExcludeWhitespace)
		}
		if cfg.Theme != prev.Theme {
			m.setScheme(theme.Resolve(cfg.Theme, func() theme.Scheme { return m.detected }))
		}
		m.logger.Debug("settings changed", "theme", cfg.Theme, "exclude_whitespace", cfg.ExcludeWhitespace)
		return m, nil

	case views.SettingsSavedMsg:
		if msg.Err != nil {
			m.logger.Error("saving config failed", "path", msg.Path, "error", msg.Err)
		} else {
			m.logger.Info("config saved", "path", msg.Path)
		}
		var cmd tea.Cmd
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, cmd

	default:
		// Timers and cursor blinks belong to the editor whichever view is shown.
		if m.currentView != ViewAnalyze {
			var cmd tea.Cmd
			m.analyzeView, cmd = m.analyzeView.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	// Delegate to active view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewAnalyze:
		m.analyzeView, cmd = m.analyzeView.Update(msg)
	case ViewOpen:
		m.filePickerView, cmd = m.filePickerView.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// setScheme switches the colour scheme and restyles every view.
func (m *AppModel) setScheme(s theme.Scheme) {
	if s == m.scheme && m.styles != nil {
		return
	}
	m.scheme = s
	m.styles = styles.New(s)
	m.analyzeView.SetStyles(m.styles)
	m.filePickerView.SetStyles(m.styles)
	m.settingsView.SetStyles(m.styles)
	m.logger.Debug("theme toggled", "scheme", s.String())
}

func (m *AppModel) focusSidebar() {
	m.sidebarActive = true
	m.analyzeView.Blur()
}

// switchView shows v and gives it keyboard focus.
func (m *AppModel) switchView(v ViewType) tea.Cmd {
	m.currentView = v
	m.sidebarActive = false
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	if v == ViewAnalyze {
		return m.analyzeView.Focus()
	}
	m.analyzeView.Blur()
	return nil
}

func (m AppModel) contentWidth() int {
	return max(m.width-m.sidebarWidth-4, 20)
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewAnalyze:
		content = m.analyzeView.View()
	case ViewOpen:
		content = m.filePickerView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}

	if m.loadErr != nil {
		content = m.styles.Error.Render("Error: "+m.loadErr.Error()) + "\n" + content
	}

	mainContent := m.styles.Content.
		Width(m.contentWidth()).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, m.styles.SidebarTitle.Render(" charcount "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		style := m.styles.SidebarItem
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = m.styles.SidebarItemActive
			} else {
				style = m.styles.SidebarItemFocus
			}
		}
		items = append(items, style.Render(label))
	}

	// Spacer
	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	help := "tab Menu"
	if m.sidebarActive {
		help = "? Help  q Quit"
	}
	items = append(items, m.styles.Muted.Padding(0, 1).Render(help))

	return m.styles.Sidebar.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	st := m.styles
	row := func(k, desc string) string {
		return st.HelpKey.Render(k) + st.Text.Render(desc) + "\n"
	}

	var b strings.Builder
	b.WriteString(st.Title.Render("charcount - Character Counter"))
	b.WriteString("\n\n")

	b.WriteString(st.Heading.Render("Global Keys"))
	b.WriteString("\n")
	b.WriteString(row("tab/esc", "Toggle sidebar focus"))
	b.WriteString(row("1-3", "Switch views (sidebar)"))
	b.WriteString(row("ctrl+t", "Toggle light/dark theme"))
	b.WriteString(row("?", "Show this help (sidebar)"))
	b.WriteString(row("q/ctrl+c", "Quit"))

	b.WriteString("\n")
	b.WriteString(st.Heading.Render("Analyze View"))
	b.WriteString("\n")
	b.WriteString(row("ctrl+x", "Exclude space from characters"))
	b.WriteString(row("ctrl+o", "See more / see less letters"))
	b.WriteString(row("ctrl+l", "Clear text"))
	b.WriteString(row("ctrl+y", "Copy report to clipboard"))

	b.WriteString("\n")
	b.WriteString(st.Heading.Render("Open File"))
	b.WriteString("\n")
	b.WriteString(row("enter", "Open file / enter dir"))
	b.WriteString(row("backspace", "Go to parent dir"))
	b.WriteString(row("~", "Go to home dir"))

	b.WriteString("\n")
	b.WriteString(st.Path.Render("Press any key to close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, st.HelpBox.Render(b.String()))
}

// loadFile reads a text file asynchronously
func loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return FileLoadedMsg{Path: path, Err: fmt.Errorf("reading %s: %w", path, err)}
		}
		return FileLoadedMsg{Path: path, Text: string(data)}
	}
}
