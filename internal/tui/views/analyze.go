package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/charcount/internal/clipboard"
	"github.com/f3rmion/charcount/internal/config"
	"github.com/f3rmion/charcount/internal/metrics"
	"github.com/f3rmion/charcount/internal/theme"
	"github.com/f3rmion/charcount/internal/tui/bignum"
	"github.com/f3rmion/charcount/internal/tui/components"
	"github.com/f3rmion/charcount/internal/tui/styles"
)

const (
	editorRows   = 6
	countWidth   = 11 // "123 (12.50%)" column
	minBarWidth  = 5
	minCardWidth = 18
	bigDigitCols = 3
	bigDigitRows = 2
)

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// AnalyzeOptions configures a new AnalyzeModel.
type AnalyzeOptions struct {
	ExcludeWhitespace bool
	DensityRows       int
	BarWidth          int
	BigNumbers        bool
	Renderer          *bignum.Renderer   // Used when BigNumbers is set
	Copy              func(string) error // Defaults to clipboard.Write
}

// AnalyzeModel is the text analysis view: an editor, the exclude-space
// checkbox, the three count cards and the letter density list.
type AnalyzeModel struct {
	editor textarea.Model
	keys   AnalyzeKeyMap
	help   help.Model
	styles *styles.Styles

	// source is the text as loaded or pasted. While loaded is set it is
	// measured instead of the editor value, which the textarea normalises.
	source string
	loaded bool
	notice string

	report            metrics.Report
	excludeWhitespace bool
	showAllLetters    bool

	densityRows int
	barWidth    int
	bigNumbers  bool
	renderer    *bignum.Renderer
	copy        func(string) error

	copied  bool
	copyErr error

	width  int
	height int
}

// NewAnalyzeModel creates a new analyze view model.
func NewAnalyzeModel(st *styles.Styles, opts AnalyzeOptions) AnalyzeModel {
	ta := textarea.New()
	ta.Placeholder = "Start typing or paste text here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(editorRows)
	ta.Focus()

	if opts.DensityRows < 1 {
		opts.DensityRows = config.DefaultDensityRows
	}
	if opts.BarWidth < 1 {
		opts.BarWidth = config.DefaultBarWidth
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.Write
	}

	m := AnalyzeModel{
		editor:            ta,
		keys:              DefaultAnalyzeKeyMap(),
		help:              help.New(),
		excludeWhitespace: opts.ExcludeWhitespace,
		densityRows:       opts.DensityRows,
		barWidth:          opts.BarWidth,
		bigNumbers:        opts.BigNumbers,
		renderer:          opts.Renderer,
		copy:              opts.Copy,
	}
	m.SetStyles(st)
	m.recompute()
	return m
}

// SetSize updates the view dimensions.
func (m *AnalyzeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.editor.SetWidth(max(width-2, 10))
	m.help.Width = width
}

// SetStyles restyles the view, e.g. after a theme change.
func (m *AnalyzeModel) SetStyles(st *styles.Styles) {
	m.styles = st

	focused, blurred := textarea.DefaultStyles()
	focused.Text = st.Text
	focused.Placeholder = st.Muted
	focused.CursorLine = lipgloss.NewStyle().Background(st.Palette.BgAlt).Foreground(st.Palette.Text)
	blurred.Text = st.Muted
	blurred.Placeholder = st.Muted
	m.editor.FocusedStyle = focused
	m.editor.BlurredStyle = blurred

	m.help.Styles.ShortKey = st.Subtitle
	m.help.Styles.ShortDesc = st.Muted
	m.help.Styles.ShortSeparator = st.Muted
	m.help.Styles.FullKey = st.Subtitle
	m.help.Styles.FullDesc = st.Muted
	m.help.Styles.FullSeparator = st.Muted
}

// ApplyConfig updates the display options from cfg. The exclude-space
// flag is left alone; see SetExcludeWhitespace.
func (m *AnalyzeModel) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.densityRows = cfg.DensityRows
	m.barWidth = cfg.BarWidth
	m.bigNumbers = cfg.BigNumbers
	if len(m.report.Density) <= m.densityRows {
		m.showAllLetters = false
	}
}

// SetExcludeWhitespace sets whether whitespace is left out of the
// character count.
func (m *AnalyzeModel) SetExcludeWhitespace(exclude bool) {
	m.excludeWhitespace = exclude
	m.recompute()
}

// Focus gives the editor keyboard focus.
func (m *AnalyzeModel) Focus() tea.Cmd {
	return m.editor.Focus()
}

// Blur removes keyboard focus from the editor.
func (m *AnalyzeModel) Blur() {
	m.editor.Blur()
}

// SetText replaces the text. Counts cover text exactly even when the
// editor can only show a normalised or truncated copy of it.
func (m *AnalyzeModel) SetText(text string) {
	m.editor.SetValue(text)
	m.source = text
	m.loaded = true
	m.notice = editorNotice(text, m.editor.Value())
	m.recompute()
}

// Text returns the text being measured.
func (m AnalyzeModel) Text() string {
	if m.loaded {
		return m.source
	}
	return m.editor.Value()
}

// Notice returns the message shown when the editor differs from the
// measured text, or "".
func (m AnalyzeModel) Notice() string {
	return m.notice
}

// editorNotice explains how shown differs from text.
func editorNotice(text, shown string) string {
	if shown == text {
		return ""
	}
	if lines, shownLines := strings.Count(text, "\n")+1, strings.Count(shown, "\n")+1; shownLines < lines {
		return fmt.Sprintf("Editor shows the first %d of %d lines; counts cover the whole text.", shownLines, lines)
	}
	return "Editor shows a cleaned-up copy (tabs expanded, control characters removed); counts cover the original text."
}

// Report returns the metrics of the current text.
func (m AnalyzeModel) Report() metrics.Report {
	return m.report
}

// ExcludeWhitespace reports whether whitespace is left out of the character count.
func (m AnalyzeModel) ExcludeWhitespace() bool {
	return m.excludeWhitespace
}

// ShowAllLetters reports whether every density row is visible.
func (m AnalyzeModel) ShowAllLetters() bool {
	return m.showAllLetters
}

// recompute derives every metric from the current text.
func (m *AnalyzeModel) recompute() {
	m.report = metrics.Analyze(m.Text(), metrics.Options{
		ExcludeWhitespace: m.excludeWhitespace,
	})
}

// Update handles messages.
func (m AnalyzeModel) Update(msg tea.Msg) (AnalyzeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// A paste into an empty editor keeps its exact text.
		if msg.Paste && m.editor.Value() == "" {
			m.SetText(string(msg.Runes))
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.ExcludeSpace):
			m.excludeWhitespace = !m.excludeWhitespace
			m.recompute()
			return m, nil
		case key.Matches(msg, m.keys.SeeMore):
			if len(m.report.Density) > m.densityRows {
				m.showAllLetters = !m.showAllLetters
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.SetText("")
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyErr = m.copy(m.report.Text(0))
			if m.copyErr != nil {
				m.copied = false
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.loaded && m.editor.Value() != before {
		// Edited: from now on the editor holds the text.
		m.source = ""
		m.loaded = false
		m.notice = ""
	}
	m.recompute()
	return m, cmd
}

// View renders the analyze view.
func (m AnalyzeModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Title.Render("Analyze your text."))
	b.WriteString("\n")

	editorStyle := m.styles.Editor
	if m.editor.Focused() {
		editorStyle = m.styles.EditorFocused
	}
	b.WriteString(editorStyle.Render(m.editor.View()))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(m.styles.Muted.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.renderCheckbox())
	b.WriteString("\n\n")

	b.WriteString(m.renderCards())
	b.WriteString("\n\n")

	b.WriteString(m.renderDensity())

	if m.copied {
		b.WriteString("\n")
		b.WriteString(m.styles.Copied.Render("Copied!"))
	} else if m.copyErr != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("Error: " + m.copyErr.Error()))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return b.String()
}

func (m AnalyzeModel) renderHeader() string {
	title := m.styles.Heading.Render("Character Counter")

	label := "☀ Light"
	if m.styles.Scheme == theme.Dark {
		label = "☾ Dark"
	}
	button := m.styles.ThemeButton.Render(label)

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(button)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + button
}

func (m AnalyzeModel) renderCheckbox() string {
	if m.excludeWhitespace {
		return m.styles.CheckboxChecked.Render("[x]") + " " + m.styles.Text.Render("Exclude space")
	}
	return m.styles.Checkbox.Render("[ ]") + " " + m.styles.Text.Render("Exclude space")
}

func (m AnalyzeModel) renderCards() string {
	stacked := m.width < 3*minCardWidth+2
	cardWidth := max((m.width-2)/3, minCardWidth)
	if stacked {
		cardWidth = max(m.width, minCardWidth)
	}

	cards := []string{
		m.renderCard(m.styles.CardChars, m.report.Characters, "Total Characters", cardWidth),
		m.renderCard(m.styles.CardWords, m.report.Words, "Total Words", cardWidth),
		m.renderCard(m.styles.CardSentences, m.report.Sentences, "Total Sentences", cardWidth),
	}

	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1], " ", cards[2])
}

func (m AnalyzeModel) renderCard(style lipgloss.Style, value int, label string, width int) string {
	num := strconv.Itoa(value)
	valueView := m.styles.CardValue.Render(num)

	if m.bigNumbers && m.renderer != nil {
		big := m.renderer.Render(num, bigDigitCols, bigDigitRows)
		if big != "" && lipgloss.Width(big) <= width-style.GetHorizontalPadding() {
			valueView = big
		}
	}

	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, valueView, m.styles.CardLabel.Render(label)))
}

func (m AnalyzeModel) renderDensity() string {
	var b strings.Builder

	b.WriteString(m.styles.Heading.Render("Letter Density"))
	b.WriteString("\n")

	if len(m.report.Density) == 0 {
		b.WriteString(m.styles.Muted.Render("-"))
		return b.String()
	}

	rows := m.report.Density
	if !m.showAllLetters {
		rows = m.report.Top(m.densityRows)
	}

	// letter(2) + spaces(2) + count column
	barWidth := min(m.barWidth, m.width-4-countWidth)
	barWidth = max(barWidth, minBarWidth)

	for _, row := range rows {
		count := components.PadLeft(fmt.Sprintf("%d (%s)", row.Count, row.Display), countWidth)
		b.WriteString(m.styles.Letter.Render(row.Letter))
		b.WriteString(" ")
		b.WriteString(components.Bar(barWidth, row.Percent, m.styles.BarFill, m.styles.BarTrack))
		b.WriteString(" ")
		b.WriteString(m.styles.Count.Render(count))
		b.WriteString("\n")
	}

	if len(m.report.Density) > m.densityRows {
		label := "See more"
		if m.showAllLetters {
			label = "See less"
		}
		b.WriteString(m.styles.Disclosure.Render(label))
		b.WriteString("\n")
	}

	return b.String()
}
