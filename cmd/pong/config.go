package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default match configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.pong/configs/pong.yaml or ./configs/pong.yaml and edit it to change
the field, paddles, ball, match rules and CPU difficulty.

Example:
  pong config > ~/.pong/configs/pong.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		//nolint:errcheck // Best-effort write to stdout
		os.Stdout.Write(config.DefaultYAML())
	},
}
