package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-games/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the minigames",
	Long:  `Shows the minigames reachable from the title screen and the key that starts each.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Minigames:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "Key", maxIDLen, "ID", "Title")
	fmt.Printf("  %-3s  %-*s  %s\n", "---", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-3s  %-*s  %s\n", strings.ToLower(g.SelectKey.String()), maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'blockgames play' and press the key on the title screen.")
}
