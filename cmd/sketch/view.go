package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <path>",
	Short: "Show a sketch file and follow changes",
	Long: `Show a sketch file read-only and reload it whenever it changes on
disk. Useful next to an editor or a script that writes the file.

Controls:
  R          - Reload now
  Q/Esc      - Quit

Examples:
  sketch view ./banner.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func runView(_ *cobra.Command, args []string) {
	if err := tui.RunViewer(args[0]); err != nil {
		fail("%v", err)
	}
}
