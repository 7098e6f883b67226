package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pico/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available cartridges",
	Long:  `Shows a list of all cartridges registered in the console.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	carts := registry.List()

	if len(carts) == 0 {
		fmt.Println("No cartridges available.")
		return
	}

	fmt.Println("Available cartridges:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, c := range carts {
		maxIDLen = max(maxIDLen, len(c.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, c := range carts {
		fmt.Printf("  %-*s  %s\n", maxIDLen, c.ID, c.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pico run <id>' to play a cartridge.")
}
