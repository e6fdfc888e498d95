package views

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/charcount/internal/tui/components"
	"github.com/f3rmion/charcount/internal/tui/styles"
)

// TextExtensions are the file types offered by the file picker.
var TextExtensions = []string{".txt", ".md", ".markdown", ".rst", ".text", ".csv", ".log"}

// FileSelectedMsg is sent when a file is selected
type FileSelectedMsg struct {
	Path string
}

// FileEntry represents a file or directory
type FileEntry struct {
	Name  string
	IsDir bool
	Path  string
}

// FilePickerModel is the file picker view model.
type FilePickerModel struct {
	styles *styles.Styles

	currentDir string
	entries    []FileEntry
	selected   int
	offset     int // For scrolling

	extensions []string // Filter to these extensions

	err error

	width  int
	height int
}

// NewFilePickerModel creates a file picker starting in dir. An empty dir
// starts in the working directory.
func NewFilePickerModel(st *styles.Styles, dir string) FilePickerModel {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if dir == "" {
		dir, _ = os.UserHomeDir()
	}
	if dir == "" {
		dir = "/"
	}

	m := FilePickerModel{
		styles:     st,
		currentDir: dir,
		extensions: TextExtensions,
	}
	m.loadDir()
	return m
}

// SetSize updates the view dimensions.
func (m *FilePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetStyles restyles the view.
func (m *FilePickerModel) SetStyles(st *styles.Styles) {
	m.styles = st
}

// Dir returns the directory being listed.
func (m FilePickerModel) Dir() string {
	return m.currentDir
}

// Entries returns the listed entries, directories first.
func (m FilePickerModel) Entries() []FileEntry {
	return m.entries
}

// loadDir lists currentDir: the parent link, then visible
// subdirectories, then text files.
func (m *FilePickerModel) loadDir() {
	m.entries = nil
	m.selected = 0
	m.offset = 0
	m.err = nil

	entries, err := os.ReadDir(m.currentDir)
	if err != nil {
		m.err = err
		return
	}

	if parent := filepath.Dir(m.currentDir); parent != m.currentDir {
		m.entries = append(m.entries, FileEntry{
			Name:  "..",
			IsDir: true,
			Path:  parent,
		})
	}

	var dirs, files []FileEntry
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		fe := FileEntry{
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
			Path:  filepath.Join(m.currentDir, entry.Name()),
		}

		// Symlinks are listed by what they point to; broken ones are skipped.
		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(fe.Path)
			if err != nil {
				continue
			}
			fe.IsDir = info.IsDir()
		}

		if fe.IsDir {
			dirs = append(dirs, fe)
		} else if m.isText(entry.Name()) {
			files = append(files, fe)
		}
	}

	slices.SortFunc(dirs, byName)
	slices.SortFunc(files, byName)

	// Dirs first, then files
	m.entries = slices.Concat(m.entries, dirs, files)
}

func byName(a, b FileEntry) int {
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

// isText reports whether name has one of the picker's extensions.
func (m *FilePickerModel) isText(name string) bool {
	return len(m.extensions) == 0 || slices.Contains(m.extensions, strings.ToLower(filepath.Ext(name)))
}

// Update handles messages.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.selected < len(m.entries)-1 {
				m.selected++
				m.scrollToSelected()
			}
			return m, nil
		case "k", "up":
			if m.selected > 0 {
				m.selected--
				m.scrollToSelected()
			}
			return m, nil
		case "enter", "l", "right":
			if m.selected < len(m.entries) {
				entry := m.entries[m.selected]
				if entry.IsDir {
					m.currentDir = entry.Path
					m.loadDir()
					return m, nil
				}
				return m, func() tea.Msg {
					return FileSelectedMsg{Path: entry.Path}
				}
			}
			return m, nil
		case "backspace", "h":
			parent := filepath.Dir(m.currentDir)
			if parent != m.currentDir {
				m.currentDir = parent
				m.loadDir()
			}
			return m, nil
		case "~":
			if home, _ := os.UserHomeDir(); home != "" {
				m.currentDir = home
				m.loadDir()
			}
			return m, nil
		case "g":
			m.selected = 0
			m.offset = 0
			return m, nil
		case "G":
			m.selected = max(len(m.entries)-1, 0)
			m.scrollToSelected()
			return m, nil
		case "ctrl+d":
			m.selected = min(m.selected+m.visibleRows()/2, max(len(m.entries)-1, 0))
			m.scrollToSelected()
			return m, nil
		case "ctrl+u":
			m.selected = max(m.selected-m.visibleRows()/2, 0)
			m.scrollToSelected()
			return m, nil
		}
	}

	return m, nil
}

func (m *FilePickerModel) visibleRows() int {
	return max(m.height-8, 5) // header, path, help
}

func (m *FilePickerModel) scrollToSelected() {
	visibleHeight := m.visibleRows()

	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visibleHeight {
		m.offset = m.selected - visibleHeight + 1
	}
}

// View renders the file picker.
func (m FilePickerModel) View() string {
	var b strings.Builder
	st := m.styles

	b.WriteString(st.Title.Render("Open Text File"))
	b.WriteString("\n")
	b.WriteString(st.Path.Render(m.currentDir))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(st.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	divider := st.Divider.Render(strings.Repeat("─", max(min(m.width-4, 60), 10)))
	b.WriteString(divider)
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(st.Muted.Render("  (no text files found)"))
		b.WriteString("\n")
	}

	visibleHeight := m.visibleRows()
	end := min(m.offset+visibleHeight, len(m.entries))
	nameWidth := max(m.width-12, 20)

	for i := m.offset; i < end; i++ {
		entry := m.entries[i]

		icon := "[FILE] "
		style := st.ListItem
		if entry.IsDir {
			icon = "[DIR]  "
			style = st.ListDir
		}

		prefix := "  "
		if i == m.selected {
			prefix = "> "
			style = st.ListItemSelected
		}

		b.WriteString(prefix)
		b.WriteString(style.Render(icon + components.PadRight(entry.Name, nameWidth)))
		b.WriteString("\n")
	}

	if len(m.entries) > visibleHeight {
		b.WriteString(st.Muted.Render("↕ scroll"))
		b.WriteString("\n")
	}

	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(st.Help.Render("enter: open • backspace: parent • ~: home • esc: menu"))

	return b.String()
}
