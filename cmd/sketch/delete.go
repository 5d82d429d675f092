package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a stored sketch",
	Long: `Remove a sketch from the database.

Examples:
  sketch delete logo`,
	Args: cobra.ExactArgs(1),
	Run:  runDelete,
}

func runDelete(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	if err := store.DeleteSketch(args[0]); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Deleted %q\n", args[0])
}
