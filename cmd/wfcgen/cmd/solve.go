package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/crossplay/wfc/internal/puzzle"
	"github.com/crossplay/wfc/pkg/layout"
	"github.com/crossplay/wfc/pkg/wfc"
	"github.com/spf13/cobra"
)

var (
	solveWidth     int
	solveHeight    int
	solveAlphabet  string
	solveWordlist  string
	solveSeed      int64
	solveSymmetric bool
	solveDensity   float64
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Fill a grid with a single wavefunction-collapse run",
	Long: `solve builds a width x height crossword, optionally seeds a
symmetric block pattern, and runs the solver to completion, printing
the resulting grid to stdout. If the grid could not be filled, the
reason is reported on stderr and the command exits non-zero.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().IntVar(&solveWidth, "width", 5, "grid width")
	solveCmd.Flags().IntVar(&solveHeight, "height", 5, "grid height")
	solveCmd.Flags().StringVar(&solveAlphabet, "alphabet", wfc.EnglishAlphabet, "admissible letters")
	solveCmd.Flags().StringVar(&solveWordlist, "wordlist", "", "path to a newline-delimited word file (defaults to the built-in word list)")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "RNG seed (0 picks one from the current time)")
	solveCmd.Flags().BoolVar(&solveSymmetric, "symmetric", false, "seed a 180-degree rotationally symmetric block pattern before solving")
	solveCmd.Flags().Float64Var(&solveDensity, "density", 0.16, "fraction of cells blocked when --symmetric is set")
}

func runSolve(cmd *cobra.Command, args []string) error {
	words, err := loadWords(solveWordlist)
	if err != nil {
		return fmt.Errorf("failed to load wordlist: %w", err)
	}
	logf("loaded %d words", len(words))

	dict := wfc.NewDictionary(words, wfc.DictionaryConfig{Alphabet: solveAlphabet})
	crossword := wfc.NewCrossword(solveWidth, solveHeight, dict)

	seed := solveSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if solveSymmetric {
		mask := layout.Seed(layout.Config{Width: solveWidth, Height: solveHeight, Density: solveDensity}, rng)
		for y := 0; y < solveHeight; y++ {
			for x := 0; x < solveWidth; x++ {
				if mask[y][x] {
					cell := crossword.Grid.Get(wfc.Coord{X: x, Y: y})
					cell.SetLetter(wfc.Block)
					cell.Mask = true
				}
			}
		}
		crossword.UpdateOptions()
	}

	solver := wfc.NewSolver(crossword, rng)
	logf("solving %dx%d grid (seed %d)", solveWidth, solveHeight, seed)

	outcome := solver.Solve(nil)
	printGrid(solver.Current())

	switch outcome {
	case wfc.Solved:
		fmt.Fprintf(os.Stderr, "solved in %d iterations\n", solver.Iterations)
	case wfc.Exhausted:
		return fmt.Errorf("search space exhausted after %d iterations: no solution exists for this grid and dictionary", solver.Iterations)
	case wfc.Cancelled:
		return fmt.Errorf("solve cancelled")
	}
	return nil
}

func printGrid(cw *wfc.Crossword) {
	for y := 0; y < cw.Grid.Height; y++ {
		var row strings.Builder
		for x := 0; x < cw.Grid.Width; x++ {
			cell := cw.Grid.Get(wfc.Coord{X: x, Y: y})
			if cell.IsDefined() {
				row.WriteRune(soleAdmissibleLetter(cell))
			} else {
				row.WriteRune('.')
			}
		}
		fmt.Println(row.String())
	}
}

func soleAdmissibleLetter(c *wfc.Cell) rune {
	for letter := range c.Options {
		return letter
	}
	return '?'
}

func loadWords(path string) ([]string, error) {
	if path == "" {
		return puzzle.NewWordListService().AllWords(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	return words, scanner.Err()
}
