package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sketch/internal/storage"
)

// Catalog lists and removes stored sketches.
type Catalog interface {
	ListSketches() ([]storage.SketchInfo, error)
	DeleteSketch(name string) error
}

// PickerItem represents a selectable entry in the picker.
// The zero Name stands for "new sketch".
type PickerItem struct {
	Name   string
	Detail string
}

// PickerModel is the Bubble Tea model for choosing a sketch to edit.
type PickerModel struct {
	items     []PickerItem
	cursor    int
	width     int
	height    int
	catalog   Catalog
	keyMapper *KeyMapper
	theme     Theme
	err       error
	quitting  bool
	selected  *PickerItem // Set when user selects an item
}

// NewPickerModel creates a new picker listing the sketches in catalog.
// A nil catalog offers only a new sketch.
func NewPickerModel(catalog Catalog, width, height int, r *lipgloss.Renderer) PickerModel {
	m := PickerModel{
		width:     width,
		height:    height,
		catalog:   catalog,
		keyMapper: NewKeyMapper(),
		theme:     NewTheme(r),
	}
	m.reload()
	return m
}

// reload rebuilds the item list from the catalog.
func (m *PickerModel) reload() {
	m.items = []PickerItem{{Detail: "start a blank canvas"}}
	m.err = nil

	if m.catalog != nil {
		infos, err := m.catalog.ListSketches()
		if err != nil {
			m.err = err
		}
		for _, info := range infos {
			m.items = append(m.items, PickerItem{
				Name:   info.Name,
				Detail: fmt.Sprintf("%dx%d, %s", info.Width, info.Height, info.UpdatedAt.Format("2006-01-02 15:04")),
			})
		}
	}

	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for picker navigation.
func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit // Exit picker to start editing

	case MenuActionDelete:
		item := m.items[m.cursor]
		if item.Name != "" && m.catalog != nil {
			if err := m.catalog.DeleteSketch(item.Name); err != nil {
				m.err = err
				return m, nil
			}
			m.reload()
		}
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("  S K E T C H  "), m.width))
	b.WriteString("\n\n")

	// Subtitle
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a sketch"), m.width))
	b.WriteString("\n\n")

	// Sketch list
	for i, item := range m.items {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		title := item.Name
		if title == "" {
			title = "+ New sketch"
		}

		line := style.Render(cursor+title) + "  " + m.theme.MenuDescription.Render(item.Detail)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(centerText(m.theme.Error.Render(m.err.Error()), m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Open  |  D: Delete  |  Q: Quit"
	b.WriteString(centerText(m.theme.MenuDescription.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected item, or nil if none selected.
func (m PickerModel) Selected() *PickerItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// Size returns the terminal size last seen by the picker.
func (m PickerModel) Size() (width, height int) {
	return m.width, m.height
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// PickerResult holds the result of running the picker.
type PickerResult struct {
	Name   string // Empty for a new sketch
	Width  int
	Height int
	Quit   bool
}

// RunPicker runs the picker and returns the selection result.
func RunPicker(catalog Catalog, width, height int) (PickerResult, error) {
	model := NewPickerModel(catalog, width, height, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{Width: width, Height: height}, fmt.Errorf("%w: %v", ErrInputSource, err)
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return PickerResult{Width: width, Height: height, Quit: true}, nil
	}

	result := PickerResult{}
	result.Width, result.Height = m.Size()

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Name = m.Selected().Name
	return result, nil
}
