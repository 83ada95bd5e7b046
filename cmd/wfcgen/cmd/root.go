package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "wfcgen",
	Short: "Wavefunction-collapse crossword solver CLI",
	Long: `wfcgen fills crossword grids using wavefunction collapse: each cell
starts with every dictionary-admissible letter, the lowest-entropy cell is
collapsed first, and a chronological backtracking search resolves any
contradiction constraint propagation produces.

It can solve a single grid from the command line, or serve the solver
over HTTP/WebSocket for interactive use.`,
	Version: version,
}

// Execute runs the root command; child commands add themselves to it in
// their own init functions. Called once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info, 2=debug)")
}

func logf(format string, args ...interface{}) {
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
