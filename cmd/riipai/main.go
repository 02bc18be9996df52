// riipai is a mahjong tile-sorting puzzle for the terminal.
//
// Usage:
//
//	riipai play               - Sort a freshly dealt hand
//	riipai scores             - Show solved hands, best and averages
//	riipai solve <codes...>   - Print the fewest moves that sort a hand
//	riipai clear              - Forget all solved hands
//	riipai serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.riipai/config.yaml)
//	--db <path>         - Results database (default: ~/.riipai/riipai.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Log destination during interactive play
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/riipai/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// cfg is loaded before any subcommand runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riipai",
	Short: "riipai - sort a mahjong hand in as few moves as you can",
	Long: `riipai deals a hand of mahjong tiles. Move tiles one at a time until
each suit sits together in ascending rank. Fewer moves and less time give
a lower, better score.

Available commands:
  play     - Sort a freshly dealt hand
  scores   - Show solved hands
  solve    - Print the optimal moves for a hand
  clear    - Forget all solved hands
  serve    - Start SSH server for remote play

Examples:
  riipai play
  riipai play --input tap --hand-size 8
  riipai solve 3m 1m 2m 1z
  riipai scores --limit 5
  riipai serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used during interactive play")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads .env, the config file and environment, then applies
// flags set on the command line.
func loadConfig(cmd *cobra.Command) error {
	// .env is optional
	_ = godotenv.Load()

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		loaded.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		loaded.Log.File = flagLogFile
	}

	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	return nil
}
