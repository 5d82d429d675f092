package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/codec"
	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/platform/tui"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

var (
	flagFile   string
	flagWidth  int
	flagHeight int
)

var editCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Edit a sketch",
	Long: `Open a sketch in the editor.

Without a name, a picker lists the stored sketches. After the editor
closes you return to the picker. With --file the sketch is read from and
saved to that file instead of the database; its extension selects the
format (see 'sketch formats').

Controls:
  Arrows/hjkl  - Move cursor (Normal mode)
  Tab          - Switch Normal/Replace mode
  Space        - Paint brush style (Normal mode)
  X/Backspace  - Erase (Normal mode)
  C/B/I        - Next color, bold, italic
  Any key      - Type (Replace mode)
  Ctrl+S       - Save
  Ctrl+E       - Export a text snapshot
  Esc/Ctrl+C   - Quit

Examples:
  sketch edit
  sketch edit logo
  sketch edit logo --width 40 --height 10
  sketch edit --file ./banner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Edit a sketch file instead of the database")
	editCmd.Flags().IntVar(&flagWidth, "width", 0, "Width of a new canvas (overrides config)")
	editCmd.Flags().IntVar(&flagHeight, "height", 0, "Height of a new canvas (overrides config)")
}

// fileSaver saves sketches to a single file.
type fileSaver struct {
	path string
}

func (s fileSaver) SaveSketch(_ string, canvas *core.Canvas) error {
	return codec.WriteFile(s.path, canvas)
}

func runEdit(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagWidth > 0 {
		cfg.Canvas.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Canvas.Height = flagHeight
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	logger, closeLog := newFileLogger(cfg)
	defer closeLog()

	if flagFile != "" {
		if err := editFile(flagFile, cfg, logger); err != nil {
			fail("%v", err)
		}
		return
	}

	store := openStore(cfg)
	defer store.Close()

	if len(args) == 1 {
		if err := editStored(store, args[0], cfg, logger); err != nil {
			fail("%v", err)
		}
		return
	}

	// Picker loop
	width, height := terminalSize()
	for {
		result, err := tui.RunPicker(store, width, height)
		if err != nil {
			fail("%v", err)
		}
		if result.Quit {
			return
		}
		width, height = result.Width, result.Height

		if err := editStored(store, result.Name, cfg, logger); err != nil {
			if errors.Is(err, tui.ErrInputSource) {
				fail("%v", err)
			}
			logger.Error("cannot open sketch", "sketch", result.Name, "error", err)
		}
		// Loop back to picker
	}
}

// editStored edits a sketch from the database. Unknown names start a new
// sketch saved under that name.
func editStored(store *storage.Store, name string, cfg config.Config, logger *log.Logger) error {
	var canvas *core.Canvas
	if name != "" {
		loaded, err := store.LoadSketch(name)
		switch {
		case err == nil:
			canvas = loaded
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}
	}

	session, err := tui.NewSession(name, canvas, cfg)
	if err != nil {
		return err
	}
	return tui.Run(session, store, tui.Options{
		ExportDir: cfg.Storage.ExportDir,
		Logger:    logger,
	})
}

// editFile edits a sketch file. A missing file starts a new sketch that is
// created on the first save.
func editFile(path string, cfg config.Config, logger *log.Logger) error {
	if _, err := codec.ForPath(path); err != nil {
		return err
	}

	var canvas *core.Canvas
	loaded, err := codec.ReadFile(path)
	switch {
	case err == nil:
		canvas = loaded
	case !errors.Is(err, os.ErrNotExist):
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	session, err := tui.NewSession(name, canvas, cfg)
	if err != nil {
		return err
	}
	return tui.Run(session, fileSaver{path: path}, tui.Options{
		ExportDir: cfg.Storage.ExportDir,
		Logger:    logger,
	})
}
