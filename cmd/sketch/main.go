// sketch is a terminal drawing editor for styled character art.
//
// Usage:
//
//	sketch edit [name]            - Edit a stored sketch (picker when no name)
//	sketch edit --file art.yaml   - Edit a sketch file directly
//	sketch list                   - List stored sketches
//	sketch import <path> [name]   - Store a sketch file in the database
//	sketch export <name> <path>   - Write a stored sketch to a file
//	sketch delete <name>          - Remove a stored sketch
//	sketch formats                - List supported file formats
//	sketch view <path>            - Show a sketch file and follow changes
//	sketch serve                  - Start SSH server for remote drawing
//
// Global flags:
//
//	--config <path>     - Config file (YAML or TOML)
//	--db <path>         - Override the sketch database path
//	--log-level <level> - Override the log level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sketch",
	Short: "Sketch - Draw styled character art in your terminal",
	Long: `Sketch is a terminal editor for character art with colors and
emphasis. Sketches are kept in a local database or in plain files.

Available commands:
  edit     - Edit a sketch interactively
  list     - Show stored sketches
  import   - Store a sketch file
  export   - Write a stored sketch to a file
  delete   - Remove a stored sketch
  formats  - Show supported file formats
  view     - Watch a sketch file
  serve    - Start SSH server for remote drawing

Examples:
  sketch edit
  sketch edit logo
  sketch edit --file ./banner.yaml
  sketch export logo ./logo.txt
  sketch serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to sketch database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("loading config: %v", err)
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// openStore opens the sketch database named by cfg, exiting on failure.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fail("opening sketch database: %v", err)
	}
	return store
}

// newFileLogger returns a logger writing to the configured log file, or a
// discarding logger when the file cannot be opened. Interactive commands
// own the terminal and never log to stderr. The returned func closes the file.
func newFileLogger(cfg config.Config) (*log.Logger, func()) {
	path, err := config.ExpandPath(cfg.Log.File)
	if err != nil || path == "" {
		return log.New(io.Discard), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "sketch",
	})
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger, func() { f.Close() }
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
