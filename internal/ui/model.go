package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// previewModel shows one converted file at a time: a tab bar of file names, a
// viewport over the rendered LaTeX and a status footer
type previewModel struct {
	files    []File
	visible  []int // indices into files matching the filter
	selected int   // index into visible

	vp        viewport.Model
	search    textinput.Model
	searching bool

	width  int
	height int
	ready  bool
}

func newPreviewModel(files []File) previewModel {
	ti := textinput.New()
	ti.Placeholder = "filter files"
	ti.Prompt = "/"
	ti.CharLimit = 64

	m := previewModel{
		files:  files,
		search: ti,
	}
	m.visible = filterFiles(files, "")
	return m
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 3 // tab bar, divider, footer
		if contentHeight < 1 {
			contentHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, contentHeight)
			m.ready = true
			m.setContent()
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = contentHeight
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m previewModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refilter()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *previewModel) refilter() {
	m.visible = filterFiles(m.files, m.search.Value())
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
	m.setContent()
}

func (m previewModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.searching = true
		return m, m.search.Focus()

	case "tab", "l", "right":
		if len(m.visible) > 0 {
			m.selected = (m.selected + 1) % len(m.visible)
			m.setContent()
		}
		return m, nil

	case "shift+tab", "h", "left":
		if len(m.visible) > 0 {
			m.selected = (m.selected + len(m.visible) - 1) % len(m.visible)
			m.setContent()
		}
		return m, nil

	case "g":
		m.vp.GotoTop()
		return m, nil

	case "G":
		m.vp.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// setContent loads the selected file into the viewport
func (m *previewModel) setContent() {
	if !m.ready {
		return
	}
	if len(m.visible) == 0 {
		m.vp.SetContent(styles.Dim.Render("no files match the filter"))
		return
	}
	file := m.files[m.visible[m.selected]]
	m.vp.SetContent(colorize(file.LaTeX, styles))
	m.vp.GotoTop()
}

func (m previewModel) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", m.width)))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// tabBar renders the file names with the selected one highlighted
func (m previewModel) tabBar() string {
	if len(m.visible) == 0 {
		return styles.Dim.Render("(none)")
	}
	var tabs []string
	for pos, idx := range m.visible {
		name := filepath.Base(m.files[idx].Path)
		if pos == m.selected {
			tabs = append(tabs, styles.Active.Render(name))
		} else {
			tabs = append(tabs, styles.Header.Render(name))
		}
	}
	bar := strings.Join(tabs, styles.Dim.Render("  "))
	return lipgloss.NewStyle().MaxWidth(m.width).Render(bar)
}

func (m previewModel) footer() string {
	if m.searching {
		return m.search.View()
	}

	left := fmt.Sprintf("%d/%d files", m.selected+1, len(m.visible))
	if q := m.search.Value(); q != "" {
		left += fmt.Sprintf(" · /%s", q)
	}
	right := fmt.Sprintf("%3.0f%% · tab next · / filter · q quit", m.vp.ScrollPercent()*100)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return styles.Dim.Render(left + strings.Repeat(" ", gap) + right)
}
