// cavedash is a TUI cave-digging game played in the terminal.
//
// Usage:
//
//	cavedash list              - List available modes
//	cavedash play <mode>       - Play a mode
//	cavedash menu              - Start menu to pick modes interactively
//	cavedash serve             - Start SSH server for remote play
//	cavedash scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible caves
//	--db <path>     - Set database path (default: ~/.cavedash/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/cavedash/internal/games/cave"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cavedash",
	Short: "Cave Dash - Dig for diamonds in your terminal",
	Long: `Cave Dash is a terminal game of digging, falling boulders and a
ticking clock. Collect the diamond quota, find the exit, get out alive.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  cavedash list
  cavedash play cave
  cavedash menu
  cavedash serve --ssh :2222
  cavedash scores cave`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cavedash/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
