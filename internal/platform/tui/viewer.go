package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/vovakirdan/tui-sketch/internal/codec"
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/layout"
	"github.com/vovakirdan/tui-sketch/internal/widget"
)

// FileChangedMsg is sent when the viewed file is written, created or replaced.
type FileChangedMsg struct{}

// WatchErrorMsg carries an error reported by the file watcher.
type WatchErrorMsg struct {
	Err error
}

// ViewerModel shows a sketch file read-only and reloads it when it changes.
type ViewerModel struct {
	path     string
	canvas   *core.Canvas
	events   <-chan fsnotify.Event
	errors   <-chan error
	renderer *lipgloss.Renderer
	theme    Theme
	err      error
	reloads  int
	width    int
	height   int
	quitting bool
}

// NewViewerModel creates a viewer for path fed by a watcher's channels.
// Nil channels disable live reloading.
func NewViewerModel(path string, events <-chan fsnotify.Event, errs <-chan error, r *lipgloss.Renderer) ViewerModel {
	m := ViewerModel{
		path:     filepath.Clean(path),
		events:   events,
		errors:   errs,
		renderer: r,
		theme:    NewTheme(r),
		width:    80,
		height:   24,
	}
	m.reload()
	return m
}

func (m *ViewerModel) reload() {
	canvas, err := codec.ReadFile(m.path)
	if err != nil {
		// Keep showing the last good version
		m.err = err
		return
	}
	m.canvas = canvas
	m.err = nil
}

// Init starts waiting for file changes.
func (m ViewerModel) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange blocks until an event concerns the viewed file.
func (m ViewerModel) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-m.events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != m.path {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					return FileChangedMsg{}
				}
			case err, ok := <-m.errors:
				if !ok {
					return nil
				}
				return WatchErrorMsg{Err: err}
			}
		}
	}
}

// Update handles messages.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.reload()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FileChangedMsg:
		m.reload()
		m.reloads++
		return m, m.waitForChange()

	case WatchErrorMsg:
		m.err = msg.Err
		return m, m.waitForChange()
	}

	return m, nil
}

// View renders the canvas with a one-line footer naming the file.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	frame := core.NewCanvas(m.width, core.Max(m.height-1, 0))
	if m.canvas != nil {
		view := widget.NewCanvasView(m.canvas)
		root := layout.New(layout.Vertical, 0, view)
		if root.SizePreferred().Fits(frame.Width(), frame.Height()) {
			root.Render(frame, frame.Bounds())
		} else {
			p := root.SizePreferred()
			widget.NewSizeError(p.Horizontal.Size, p.Vertical.Size).Render(frame, frame.Bounds())
		}
	}

	footer := m.theme.MenuDescription.Render(truncate(fmt.Sprintf("%s  (reloaded %d times, q to quit)", m.path, m.reloads), m.width))
	if m.err != nil {
		footer = m.theme.Error.Render(truncate(m.err.Error(), m.width))
	}

	return RenderCanvas(m.renderer, frame) + "\n" + footer
}

// RunViewer shows path and follows changes to it until the user quits.
func RunViewer(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("tui: cannot create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace files instead of writing them
	if err := watcher.Add(filepath.Dir(filepath.Clean(path))); err != nil {
		return fmt.Errorf("tui: cannot watch %s: %w", path, err)
	}

	model := NewViewerModel(path, watcher.Events, watcher.Errors, nil)
	if model.canvas == nil {
		return model.err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrInputSource, err)
	}
	return nil
}
