package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/registry"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List available paddle drivers",
	Long:  `Shows who can control a paddle. Use the IDs with 'pong play --left/--right'.`,
	Args:  cobra.NoArgs,
	Run:   runDrivers,
}

func runDrivers(cmd *cobra.Command, args []string) {
	drivers := registry.List()

	if len(drivers) == 0 {
		fmt.Println("No drivers available.")
		return
	}

	fmt.Println("Available drivers:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range drivers {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, d := range drivers {
		fmt.Printf("  %-*s  %s\n", maxIDLen, d.ID, d.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pong play --left <id> --right <id>' to pick drivers.")
}
