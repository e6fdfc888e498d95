package views

import "github.com/charmbracelet/bubbles/key"

// AnalyzeKeyMap defines the keys of the analyze view. Plain letters go to
// the editor, so every action sits on a control chord.
type AnalyzeKeyMap struct {
	ExcludeSpace key.Binding
	SeeMore      key.Binding
	Clear        key.Binding
	Copy         key.Binding
	Theme        key.Binding
	Sidebar      key.Binding
	Quit         key.Binding
}

// DefaultAnalyzeKeyMap returns the default analyze bindings.
func DefaultAnalyzeKeyMap() AnalyzeKeyMap {
	return AnalyzeKeyMap{
		ExcludeSpace: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "exclude space"),
		),
		SeeMore: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "see more/less"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy report"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Sidebar: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k AnalyzeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ExcludeSpace, k.SeeMore, k.Theme, k.Copy, k.Sidebar}
}

// FullHelp implements help.KeyMap.
func (k AnalyzeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ExcludeSpace, k.SeeMore, k.Clear},
		{k.Copy, k.Theme, k.Sidebar, k.Quit},
	}
}
