package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/codec"
)

var importCmd = &cobra.Command{
	Use:   "import <path> [name]",
	Short: "Store a sketch file in the database",
	Long: `Read a sketch file and store it in the database. The name defaults
to the file name without its extension. An existing sketch with the same
name is replaced.

Examples:
  sketch import ./banner.txt
  sketch import ./banner.yaml logo`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <name> <path>",
	Short: "Write a stored sketch to a file",
	Long: `Write a stored sketch to a file. The extension selects the format:
.txt keeps only the characters, .yaml and .skb keep colors and emphasis.

Examples:
  sketch export logo ./logo.txt
  sketch export logo ./logo.yaml`,
	Args: cobra.ExactArgs(2),
	Run:  runExport,
}

func runImport(_ *cobra.Command, args []string) {
	path := args[0]
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if len(args) == 2 {
		name = args[1]
	}

	canvas, err := codec.ReadFile(path)
	if err != nil {
		fail("%v", err)
	}

	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	if err := store.SaveSketch(name, canvas); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Imported %s as %q (%dx%d)\n", path, name, canvas.Width(), canvas.Height())
}

func runExport(_ *cobra.Command, args []string) {
	name, path := args[0], args[1]

	if _, err := codec.ForPath(path); err != nil {
		fail("%v", err)
	}

	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	canvas, err := store.LoadSketch(name)
	if err != nil {
		fail("%v", err)
	}
	if err := codec.WriteFile(path, canvas); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Exported %q to %s\n", name, path)
}
