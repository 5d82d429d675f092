package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/storage"
	"github.com/vovakirdan/tui-sketch/internal/widget"
)

// Gallery layout constants
const (
	minWidthForPreview = 80 // Minimum width to show the preview pane
	previewWidth       = 32 // Width of the preview pane
	previewHeight      = 12 // Height of the preview pane
)

// GalleryStore lists, loads and removes stored sketches.
type GalleryStore interface {
	Catalog
	LoadSketch(name string) (*core.Canvas, error)
}

// GalleryKeyMap defines the key bindings for the gallery.
type GalleryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GalleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GalleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Open, k.Delete, k.Quit},
	}
}

// DefaultGalleryKeyMap returns default key bindings.
func DefaultGalleryKeyMap() GalleryKeyMap {
	return GalleryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// GalleryModel is the Bubble Tea model browsing stored sketches in a table
// with a preview of the highlighted one.
type GalleryModel struct {
	store       GalleryStore
	sketches    []storage.SketchInfo
	table       table.Model
	help        help.Model
	keys        GalleryKeyMap
	theme       Theme
	renderer    *lipgloss.Renderer
	preview     *core.Canvas
	err         error
	width       int
	height      int
	opened      string
	quitting    bool
	showPreview bool
}

// NewGalleryModel creates a new gallery over store.
func NewGalleryModel(store GalleryStore, width, height int, r *lipgloss.Renderer) GalleryModel {
	h := help.New()
	h.ShowAll = false

	m := GalleryModel{
		store:       store,
		keys:        DefaultGalleryKeyMap(),
		help:        h,
		theme:       NewTheme(r),
		renderer:    r,
		width:       width,
		height:      height,
		showPreview: width >= minWidthForPreview,
	}

	m.table = m.createTable()
	m.loadSketches()

	return m
}

// createTable creates a new table sized for the window.
func (m *GalleryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Size", Width: 9},
		{Title: "Updated", Width: 16},
	}

	tableWidth := m.width - 4 // Margins
	if m.showPreview {
		tableWidth -= previewWidth + 4 // Preview + border + gap
	}
	if tableWidth > 45 {
		columns[0].Width = tableWidth - 25
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 1)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSketches refreshes the rows from the store.
func (m *GalleryModel) loadSketches() {
	m.sketches = nil
	m.err = nil
	if m.store != nil {
		sketches, err := m.store.ListSketches()
		if err != nil {
			m.err = err
		}
		m.sketches = sketches
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current sketches.
func (m *GalleryModel) updateTableRows() {
	rows := make([]table.Row, len(m.sketches))
	for i, s := range m.sketches {
		rows[i] = table.Row{
			s.Name,
			fmt.Sprintf("%dx%d", s.Width, s.Height),
			s.UpdatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(core.Max(len(rows)-1, 0))
	}
	m.loadPreview()
}

// loadPreview loads the sketch under the cursor.
func (m *GalleryModel) loadPreview() {
	m.preview = nil
	name := m.current()
	if name == "" || m.store == nil || !m.showPreview {
		return
	}
	canvas, err := m.store.LoadSketch(name)
	if err != nil {
		m.err = err
		return
	}
	m.preview = canvas
}

// current returns the name of the highlighted sketch, or "" when empty.
func (m GalleryModel) current() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sketches) {
		return ""
	}
	return m.sketches[i].Name
}

// Init initializes the gallery model.
func (m GalleryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the gallery.
func (m GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			if name := m.current(); name != "" {
				m.opened = name
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if name := m.current(); name != "" && m.store != nil {
				if err := m.store.DeleteSketch(name); err != nil {
					m.err = err
					return m, nil
				}
				m.loadSketches()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			m.loadPreview()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// View renders the gallery.
func (m GalleryModel) View() string {
	if m.quitting || m.opened != "" {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("SKETCHES (%d)", len(m.sketches))
	b.WriteString(m.theme.MenuTitle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	border := m.theme.Panel
	tableRendered := border.Render(m.renderTableContent())
	if m.showPreview {
		previewRendered := border.Render(m.renderPreview())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", previewRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.theme.Error.Render(truncate(m.err.Error(), m.width)))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.MenuDescription.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m GalleryModel) renderTableContent() string {
	if len(m.sketches) == 0 {
		return m.theme.MenuDescription.Italic(true).Padding(2, 4).
			Render("No sketches saved yet.\nRun 'sketch edit' to draw one!")
	}
	return m.table.View()
}

// renderPreview draws the top-left corner of the highlighted sketch.
func (m GalleryModel) renderPreview() string {
	frame := core.NewCanvas(previewWidth, previewHeight)
	if m.preview != nil {
		widget.NewCanvasView(m.preview).Render(frame, frame.Bounds())
	}
	return RenderCanvas(m.renderer, frame)
}

// Opened returns the sketch chosen with enter, or "".
func (m GalleryModel) Opened() string {
	return m.opened
}

// IsQuitting returns true if user wants to quit.
func (m GalleryModel) IsQuitting() bool {
	return m.quitting
}

// RunGallery runs the gallery and returns the sketch to open, or "" on quit.
func RunGallery(store GalleryStore, width, height int) (string, error) {
	model := NewGalleryModel(store, width, height, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInputSource, err)
	}

	m, ok := finalModel.(GalleryModel)
	if !ok {
		return "", nil
	}

	return m.Opened(), nil
}
