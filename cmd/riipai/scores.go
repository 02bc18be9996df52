package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/riipai/internal/history"
	"github.com/vovakirdan/riipai/internal/platform/tui"
	"github.com/vovakirdan/riipai/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagAllUsers    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show solved hands",
	Long: `Display solved hands, most recent first, with the best score and
averages. Scores are moves multiplied by seconds; lower is better.

Examples:
  riipai scores
  riipai scores --limit 5
  riipai scores --interactive
  riipai scores --all-users --db ./server.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show (0 = all)")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a table")
	scoresCmd.Flags().BoolVar(&flagAllUsers, "all-users", false, "Summarize every player's history (local and SSH users)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, db, err := openHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if flagAllUsers {
		printAllUsers(db)
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	results := store.List()

	fmt.Println("riipai - solved hands")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No solved hands yet.")
		fmt.Println()
		fmt.Println("Play 'riipai play' to set the first score!")
		return
	}

	best, _ := store.Best()
	shown := results
	if flagLimit > 0 && len(shown) > flagLimit {
		shown = shown[:flagLimit]
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-8s  %-8s  %s\n", "#", "Moves", "Time", "Score", "When")
	fmt.Printf("  %-4s  %-5s  %-8s  %-8s  %s\n", "-", "-----", "----", "-----", "----")

	now := time.Now()
	for i, r := range shown {
		rank := fmt.Sprintf("%d", i+1)
		if r.ID == best.ID {
			rank += "*"
		}
		fmt.Printf("  %-4s  %-5d  %-8s  %-8.2f  %s\n",
			rank, r.Moves, fmt.Sprintf("%.2fs", r.Time), r.Score,
			humanize.RelTime(r.Date, now, "ago", "from now"))
	}
	if len(shown) < len(results) {
		fmt.Printf("  ... and %d more\n", len(results)-len(shown))
	}

	stats := store.Stats()
	fmt.Println()
	fmt.Printf("Best: %.2f (%d moves, %.2fs, %s)\n",
		best.Score, best.Moves, best.Time, humanize.Time(best.Date))
	fmt.Printf("Solved: %s   Avg moves: %.1f   Avg time: %.1fs\n",
		humanize.Comma(int64(stats.Count)), stats.AvgMoves, stats.AvgElapsed)
}

// printAllUsers lists one line per history key: the local player and each
// SSH user that has played on this database.
func printAllUsers(db *storage.Store) {
	entries, err := db.List(cfg.History.Key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("riipai - players")
	fmt.Println()

	fmt.Printf("  %-16s  %-6s  %-8s  %-9s  %s\n", "Player", "Solved", "Best", "Avg moves", "Last played")
	fmt.Printf("  %-16s  %-6s  %-8s  %-9s  %s\n", "------", "------", "----", "---------", "-----------")

	shown := 0
	for _, e := range entries {
		user, ok := history.UserFromKey(cfg.History.Key, e.Key)
		if !ok {
			continue
		}
		if user == "" {
			user = "(local)"
		}
		stats := history.New(db, history.Options{
			Key:        e.Key,
			MaxResults: cfg.History.MaxResults,
			Logger:     newLogger(os.Stderr),
		}).Stats()
		if stats.Count == 0 {
			continue
		}
		fmt.Printf("  %-16s  %-6d  %-8.2f  %-9.1f  %s\n",
			user, stats.Count, stats.BestScore, stats.AvgMoves, humanize.Time(e.UpdatedAt))
		shown++
	}

	if shown == 0 {
		fmt.Println("  No solved hands yet.")
	}
}
