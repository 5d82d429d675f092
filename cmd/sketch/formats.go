package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/codec"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported file formats",
	Long:  `Shows the file formats sketches can be imported from and exported to.`,
	Args:  cobra.NoArgs,
	Run:   runFormats,
}

func runFormats(_ *cobra.Command, _ []string) {
	formats := codec.List()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range formats {
		if len(f.Name) > maxNameLen {
			maxNameLen = len(f.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-12s  %s\n", maxNameLen, "Name", "Extensions", "Description")
	fmt.Printf("  %-*s  %-12s  %s\n", maxNameLen, "----", "----------", "-----------")

	for _, f := range formats {
		fmt.Printf("  %-*s  %-12s  %s\n", maxNameLen, f.Name, strings.Join(f.Extensions, " "), f.Description)
	}
}
