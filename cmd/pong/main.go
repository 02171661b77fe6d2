// pong is a terminal Pong game: play locally, host matches over SSH and
// review the history of finished matches.
//
// Usage:
//
//	pong play                - Play a match (Player vs CPU by default)
//	pong serve               - Start SSH server for remote play
//	pong results             - Show recent matches and win totals
//	pong drivers             - List available paddle drivers
//	pong config              - Print the default match configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible CPU play
//	--db <path>          - Set database path (default: ~/.pong/pong.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log file used while playing (default: ~/.pong/pong.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import drivers to register them
	_ "github.com/vovakirdan/tui-pong/internal/drivers"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - the classic paddle game in your terminal",
	Long: `Pong is a terminal version of the classic two-paddle game.
First player to reach the winning score takes the match.

Available commands:
  play     - Play a match
  serve    - Start SSH server for remote play
  results  - View finished matches
  drivers  - List who can control a paddle
  config   - Print the default configuration

Examples:
  pong play
  pong play --right human
  pong play --left cpu --right cpu --seed 42
  pong serve --ssh :2222
  pong results --limit 5`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/pong.db", "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.pong/pong.log", "Log file used during play (empty disables)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(driversCmd)
	rootCmd.AddCommand(configCmd)
}
