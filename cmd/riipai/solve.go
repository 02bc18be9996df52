package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/riipai/internal/solver"
	"github.com/vovakirdan/riipai/internal/tiles"
)

var solveCmd = &cobra.Command{
	Use:   "solve <codes...>",
	Short: "Print the fewest moves that sort a hand",
	Long: `Parse a hand from tile codes and print its par (the fewest moves that
sort it), the suit order of the target arrangement and one shortest
sequence of moves.

Tile codes are rank followed by suit: m (characters), p (dots),
s (bamboo), z (honors 1-7). Positions in the output are 1-based.

Examples:
  riipai solve 3m 1m 2m 1z
  riipai solve 2p 1m 1p 5z 9s`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSolve,
}

func runSolve(_ *cobra.Command, args []string) {
	hand, err := tiles.ParseHand(args...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sol := solver.MinMoves(hand)
	fmt.Printf("Hand:  %s\n", hand)
	fmt.Printf("Par:   %d\n", sol.Moves)
	if sol.Moves == 0 {
		fmt.Println("Already sorted.")
		return
	}
	fmt.Printf("Order: %s\n", sol.Order)
	fmt.Println()

	cur := hand
	for i, m := range solver.Steps(hand) {
		tile := cur[m.From]
		cur, _ = cur.Apply(m)
		fmt.Printf("  %2d. move %s from %d to %d  ->  %s\n", i+1, tile.Code(), m.From+1, m.To+1, cur)
	}
}
