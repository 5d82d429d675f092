// Package tui provides the Bubble Tea integration for the sketch editor.
// It handles the terminal UI loop, input mapping, rendering and SSH serving.
package tui

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sketch/internal/codec"
	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/editor"
)

// ErrInputSource is returned when the terminal input or output fails.
// The session cannot continue; the terminal has been restored.
var ErrInputSource = errors.New("tui: input source failed")

// Saver persists a canvas under a name.
type Saver interface {
	SaveSketch(name string, canvas *core.Canvas) error
}

// Options configure the editor model.
type Options struct {
	ExportDir string             // Directory for ctrl+e text snapshots
	Logger    *log.Logger        // Nil discards log output
	Renderer  *lipgloss.Renderer // Nil uses the default renderer
}

// Model is the Bubble Tea model for editing one sketch.
type Model struct {
	session   *editor.Session
	saver     Saver
	keyMapper *KeyMapper
	help      help.Model
	theme     Theme
	renderer  *lipgloss.Renderer
	logger    *log.Logger
	exportDir string
	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model editing session.
// A nil saver disables ctrl+s.
func NewModel(session *editor.Session, saver Saver, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	theme := NewTheme(opts.Renderer)
	h.Styles.ShortKey = theme.MenuItemNormal
	h.Styles.ShortDesc = theme.MenuDescription
	h.Styles.ShortSeparator = theme.MenuDescription

	return Model{
		session:   session,
		saver:     saver,
		keyMapper: NewKeyMapper(),
		help:      h,
		theme:     theme,
		renderer:  opts.Renderer,
		logger:    logger,
		exportDir: opts.ExportDir,
		width:     80,
		height:    24,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey maps a key to editor inputs and carries out their effects.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, in := range m.keyMapper.MapKey(msg, m.session.Mode()) {
		switch m.session.Apply(in) {
		case editor.EffectQuit:
			m.quitting = true
			m.logger.Info("session ended", "sketch", m.session.Name(), "unsaved", m.session.Dirty())
			return m, tea.Quit
		case editor.EffectSave:
			m.save()
		case editor.EffectExport:
			m.export()
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// save persists the canvas through the saver.
func (m *Model) save() {
	if m.saver == nil {
		m.setStatus("saving is not available", true)
		return
	}
	if err := m.saver.SaveSketch(m.session.Name(), m.session.Canvas()); err != nil {
		m.logger.Error("save failed", "sketch", m.session.Name(), "error", err)
		m.setStatus("save failed: "+err.Error(), true)
		return
	}
	m.session.MarkSaved()
	m.logger.Info("sketch saved", "sketch", m.session.Name())
	m.setStatus("saved "+m.session.Name(), false)
}

// export writes a plain text snapshot into the export directory.
func (m *Model) export() {
	dir, err := config.ExpandPath(m.exportDir)
	if err == nil && dir == "" {
		err = errors.New("no export directory configured")
	}
	if err != nil {
		m.setStatus("export failed: "+err.Error(), true)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Name(), timestamp))

	if err := codec.WriteFile(path, m.session.Canvas()); err != nil {
		m.logger.Error("export failed", "sketch", m.session.Name(), "error", err)
		m.setStatus("export failed: "+err.Error(), true)
		return
	}
	m.logger.Info("sketch exported", "sketch", m.session.Name(), "path", path)
	m.setStatus("exported "+path, false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// View renders the current state to a string for display.
// The last line shows the latest status or the key help when there is room.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	height := m.height
	footer := ""
	if m.session.Tree().SizePreferred().Fits(m.width, m.height-1) {
		height--
		footer = m.footer()
	}

	frame := RenderCanvas(m.renderer, m.session.Compose(m.width, height))
	if footer == "" {
		return frame
	}
	return frame + "\n" + footer
}

func (m Model) footer() string {
	if m.status != "" {
		style := m.theme.Status
		if m.statusErr {
			style = m.theme.Error
		}
		return style.Render(truncate(m.status, m.width))
	}
	return m.help.View(m.keyMapper.Keys())
}

// Session returns the edited session.
func (m Model) Session() *editor.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program editing session.
// Input or terminal failures are returned as ErrInputSource.
func Run(session *editor.Session, saver Saver, opts Options, programOpts ...tea.ProgramOption) error {
	model := NewModel(session, saver, opts)

	p := tea.NewProgram(
		model,
		append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)...,
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrInputSource, err)
	}
	return nil
}

// truncate cuts s to at most width runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return strings.TrimSpace(string(runes[:width]))
}
