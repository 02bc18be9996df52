package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all solved hands",
	Long: `Remove every stored result for the configured history key.

Examples:
  riipai clear
  riipai clear --db ./riipai.db`,
	Args: cobra.NoArgs,
	Run:  runClear,
}

func runClear(_ *cobra.Command, _ []string) {
	store, db, err := openHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	n := len(store.List())
	store.Clear()
	fmt.Printf("Cleared %d results from %s\n", n, store.Key())
}
