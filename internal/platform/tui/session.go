package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/editor"
)

// SketchStore is the storage used by a session: listing, loading and saving.
type SketchStore interface {
	Catalog
	Saver
	LoadSketch(name string) (*core.Canvas, error)
}

// SessionModel manages the full session flow: picker -> editor -> picker.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store    SketchStore
	config   config.Config
	logger   *log.Logger
	renderer *lipgloss.Renderer
	width    int
	height   int
	picker   PickerModel
	editor   *Model
	quitting bool
}

// NewSessionModel creates a new session model. A nil store offers only
// new, unsaved sketches.
func NewSessionModel(store SketchStore, cfg config.Config, logger *log.Logger, r *lipgloss.Renderer, width, height int) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := SessionModel{
		store:    store,
		config:   cfg,
		logger:   logger,
		renderer: r,
		width:    width,
		height:   height,
	}
	m.picker = m.newPicker()
	return m
}

func (m SessionModel) newPicker() PickerModel {
	var catalog Catalog
	if m.store != nil {
		catalog = m.store
	}
	return NewPickerModel(catalog, m.width, m.height, m.renderer)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.editor != nil {
		return m.updateEditor(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates while choosing a sketch.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(PickerModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.picker.Selected()
	if selected == nil {
		return m, cmd
	}

	ed, err := m.openEditor(selected.Name)
	if err != nil {
		m.logger.Error("cannot open sketch", "sketch", selected.Name, "error", err)
		m.picker = m.newPicker()
		m.picker.err = err
		return m, nil
	}
	m.editor = &ed
	return m, m.editor.Init()
}

// openEditor loads the named sketch, or starts a new one for an empty name.
func (m SessionModel) openEditor(name string) (Model, error) {
	var err error
	var session *editor.Session
	if name == "" || m.store == nil {
		session, err = NewSession(name, nil, m.config)
	} else {
		canvas, loadErr := m.store.LoadSketch(name)
		if loadErr != nil {
			return Model{}, loadErr
		}
		session, err = NewSession(name, canvas, m.config)
	}
	if err != nil {
		return Model{}, err
	}

	var saver Saver
	if m.store != nil {
		saver = m.store
	}
	model := NewModel(session, saver, Options{
		ExportDir: m.config.Storage.ExportDir,
		Logger:    m.logger,
		Renderer:  m.renderer,
	})
	sized, _ := model.handleResize(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.logger.Info("editing sketch", "sketch", session.Name())
	return sized.(Model), nil
}

// updateEditor handles updates while editing. Quitting the editor returns to the picker.
func (m SessionModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.editor.Update(msg)
	if model, ok := newModel.(Model); ok {
		m.editor = &model
	}

	if m.editor.IsQuitting() {
		m.editor = nil
		m.picker = m.newPicker()
		return m, m.picker.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.editor != nil {
		return m.editor.View()
	}

	return m.picker.View()
}
