package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/platform/tui"
)

var flagInteractive bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sketches",
	Long: `Shows the sketches in the database, most recently changed first.

With --interactive a gallery shows the sketches in a table with a
preview. Enter opens the highlighted sketch in the editor, D deletes it.

Examples:
  sketch list
  sketch list -i`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse sketches in a gallery")
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	if flagInteractive {
		logger, closeLog := newFileLogger(cfg)
		defer closeLog()

		// Gallery loop
		for {
			width, height := terminalSize()
			name, err := tui.RunGallery(store, width, height)
			if err != nil {
				fail("%v", err)
			}
			if name == "" {
				return
			}
			if err := editStored(store, name, cfg, logger); err != nil {
				fail("%v", err)
			}
		}
	}

	sketches, err := store.ListSketches()
	if err != nil {
		fail("listing sketches: %v", err)
	}

	if len(sketches) == 0 {
		fmt.Println("No sketches stored.")
		fmt.Println()
		fmt.Println("Run 'sketch edit' to draw one.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range sketches {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "Name", "Size", "Updated")
	fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "----", "----", "-------")

	// Print sketches
	for _, s := range sketches {
		size := fmt.Sprintf("%dx%d", s.Width, s.Height)
		fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, s.Name, size, s.UpdatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'sketch edit <name>' to edit a sketch.")
}
