package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/splitlands/internal/maps"
	"github.com/vovakirdan/splitlands/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List variants and maps",
	Long:  `Shows every registered variant, the built-in maps and the maps found in maps_dir.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	s, err := newSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No variants available.")
		return nil
	}

	fmt.Println("Variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	builtins, err := maps.Builtins()
	if err != nil {
		return err
	}
	all := append(builtins, s.extraMaps()...)

	fmt.Println()
	fmt.Println("Maps:")
	fmt.Println()

	maxMapLen := 2
	for _, m := range all {
		maxMapLen = max(maxMapLen, len(m.ID))
	}
	fmt.Printf("  %-*s  %-8s  %s\n", maxMapLen, "ID", "Variant", "Source")
	fmt.Printf("  %-*s  %-8s  %s\n", maxMapLen, "--", "-------", "------")
	for _, m := range all {
		fmt.Printf("  %-*s  %-8s  %s\n", maxMapLen, m.ID, m.Variant, m.FilePath)
	}

	fmt.Println()
	fmt.Println("Run 'splitlands play <variant>' to play.")
	return nil
}
