package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacefill/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available curve kinds",
	Long:  `Shows a list of all curve kinds registered with sfc and their order ranges.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	kinds := registry.List()

	if len(kinds) == 0 {
		fmt.Println("No curve kinds available.")
		return
	}

	fmt.Println("Available curves:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, k := range kinds {
		if len(k.ID) > maxIDLen {
			maxIDLen = len(k.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Orders", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "------", "-----")

	for _, k := range kinds {
		orders := fmt.Sprintf("%d..%d", k.MinOrder, k.MaxOrder)
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, k.ID, orders, k.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sfc show --kind <id> --order <n>' to plot a curve.")
}
