package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagLimit int
	flagTUI   bool
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show finished matches",
	Long: `Display the most recent matches and how many each side has won.

Examples:
  pong results
  pong results --limit 5
  pong results --tui
  pong results --clear`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to show")
	resultsCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse the history in an interactive table")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored matches")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	if flagTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	results, err := store.RecentResults(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Println("Recent Matches")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pong play' and finish a match to see it here!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-8s  %-8s  %-5s  %-6s  %s\n", "Date", "P1", "P2", "Score", "Winner", "Time")
	fmt.Printf("  %-16s  %-8s  %-8s  %-5s  %-6s  %s\n", "----", "--", "--", "-----", "------", "----")

	for _, r := range results {
		fmt.Printf("  %-16s  %-8s  %-8s  %-5s  %-6s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.LeftDriver,
			r.RightDriver,
			fmt.Sprintf("%d-%d", r.LeftScore, r.RightScore),
			fmt.Sprintf("P%d", r.Winner),
			r.Duration.Round(time.Second),
		)
	}

	totals, err := store.WinTotals()
	if err == nil {
		fmt.Println()
		fmt.Printf("Matches: %d  |  P1 wins: %d  |  P2 wins: %d\n", totals.Matches, totals.LeftWins, totals.RightWins)
	}
}
