// Package styles defines the light and dark lipgloss styles of the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/charcount/internal/theme"
)

// Palette is the set of colours one scheme uses.
type Palette struct {
	Primary   lipgloss.Color // Titles
	Secondary lipgloss.Color // Headings, focused sidebar entry
	Accent    lipgloss.Color // Selection
	Muted     lipgloss.Color // Help text
	Success   lipgloss.Color // Checked boxes, copied notices
	Error     lipgloss.Color
	Text      lipgloss.Color
	Bg        lipgloss.Color
	BgAlt     lipgloss.Color
	Border    lipgloss.Color

	CardText      lipgloss.Color
	CardChars     lipgloss.Color
	CardWords     lipgloss.Color
	CardSentences lipgloss.Color

	BarFill  lipgloss.Color
	BarTrack lipgloss.Color
}

// LightPalette mirrors the light widget: pale grey page, slate text.
var LightPalette = Palette{
	Primary:       lipgloss.Color("#1e293b"),
	Secondary:     lipgloss.Color("#4338ca"),
	Accent:        lipgloss.Color("#c2410c"),
	Muted:         lipgloss.Color("#64748b"),
	Success:       lipgloss.Color("#15803d"),
	Error:         lipgloss.Color("#dc2626"),
	Text:          lipgloss.Color("#1e293b"),
	Bg:            lipgloss.Color("#f1f1f1"),
	BgAlt:         lipgloss.Color("#d1d1d1"),
	Border:        lipgloss.Color("#3c3c3c"),
	CardText:      lipgloss.Color("#0e0e0e"),
	CardChars:     lipgloss.Color("#6366f1"),
	CardWords:     lipgloss.Color("#fb923c"),
	CardSentences: lipgloss.Color("#ef4444"),
	BarFill:       lipgloss.Color("#60a5fa"),
	BarTrack:      lipgloss.Color("#d1d1d1"),
}

// DarkPalette mirrors the dark widget: near-black page, light grey text.
var DarkPalette = Palette{
	Primary:       lipgloss.Color("#f1faee"),
	Secondary:     lipgloss.Color("#a5b4fc"),
	Accent:        lipgloss.Color("#ffe66d"),
	Muted:         lipgloss.Color("#6b7280"),
	Success:       lipgloss.Color("#4ade80"),
	Error:         lipgloss.Color("#ff6b6b"),
	Text:          lipgloss.Color("#d1d5db"),
	Bg:            lipgloss.Color("#0e0e0e"),
	BgAlt:         lipgloss.Color("#282828"),
	Border:        lipgloss.Color("#3c3c3c"),
	CardText:      lipgloss.Color("#0e0e0e"),
	CardChars:     lipgloss.Color("#6366f1"),
	CardWords:     lipgloss.Color("#fb923c"),
	CardSentences: lipgloss.Color("#ef4444"),
	BarFill:       lipgloss.Color("#60a5fa"),
	BarTrack:      lipgloss.Color("#141414"),
}

// PaletteFor returns the palette of a scheme.
func PaletteFor(s theme.Scheme) Palette {
	if s == theme.Dark {
		return DarkPalette
	}
	return LightPalette
}

// Styles holds every style the views render with.
type Styles struct {
	Scheme  theme.Scheme
	Palette Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Heading  lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Copied   lipgloss.Style
	Divider  lipgloss.Style
	Content  lipgloss.Style

	Sidebar           lipgloss.Style
	SidebarTitle      lipgloss.Style
	SidebarItem       lipgloss.Style
	SidebarItemActive lipgloss.Style
	SidebarItemFocus  lipgloss.Style

	Editor        lipgloss.Style
	EditorFocused lipgloss.Style

	Checkbox        lipgloss.Style
	CheckboxChecked lipgloss.Style
	ThemeButton     lipgloss.Style

	CardChars     lipgloss.Style
	CardWords     lipgloss.Style
	CardSentences lipgloss.Style
	CardValue     lipgloss.Style
	CardLabel     lipgloss.Style

	Letter     lipgloss.Style
	BarFill    lipgloss.Style
	BarTrack   lipgloss.Style
	Count      lipgloss.Style
	Disclosure lipgloss.Style

	ListItem         lipgloss.Style
	ListDir          lipgloss.Style
	ListItemSelected lipgloss.Style
	Path             lipgloss.Style
	Label            lipgloss.Style
	Value            lipgloss.Style

	HelpBox lipgloss.Style
	HelpKey lipgloss.Style
}

// New builds the styles of a scheme.
func New(s theme.Scheme) *Styles {
	p := PaletteFor(s)

	card := lipgloss.NewStyle().
		Foreground(p.CardText).
		Padding(0, 2)

	return &Styles{
		Scheme:  s,
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Secondary),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		Text: lipgloss.NewStyle().
			Foreground(p.Text),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		Copied: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		Divider: lipgloss.NewStyle().
			Foreground(p.Border),
		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderRight(true).
			BorderForeground(p.Border).
			Padding(1, 1),
		SidebarTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Bg).
			Background(p.Primary).
			Padding(0, 1).
			MarginBottom(1),
		SidebarItem: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		SidebarItemActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			Background(p.BgAlt).
			Padding(0, 1),
		SidebarItemFocus: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary).
			Padding(0, 1),

		Editor: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		EditorFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Secondary),

		Checkbox: lipgloss.NewStyle().
			Foreground(p.Muted),
		CheckboxChecked: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		ThemeButton: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.BgAlt).
			Padding(0, 1),

		CardChars:     card.Background(p.CardChars),
		CardWords:     card.Background(p.CardWords),
		CardSentences: card.Background(p.CardSentences),
		CardValue: lipgloss.NewStyle().
			Bold(true),
		CardLabel: lipgloss.NewStyle(),

		Letter: lipgloss.NewStyle().
			Foreground(p.Text).
			Width(2),
		BarFill: lipgloss.NewStyle().
			Foreground(p.BarFill),
		BarTrack: lipgloss.NewStyle().
			Foreground(p.BarTrack),
		Count: lipgloss.NewStyle().
			Foreground(p.Text),
		Disclosure: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Underline(true),

		ListItem: lipgloss.NewStyle().
			Foreground(p.Text),
		ListDir: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),
		ListItemSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			Background(p.BgAlt),
		Path: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Label: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true).
			Width(22),
		Value: lipgloss.NewStyle().
			Foreground(p.Text),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Secondary).
			Padding(1, 2).
			Width(56),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Accent).
			Width(12),
	}
}
