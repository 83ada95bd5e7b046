package wfc

import (
	"math/rand"
	"testing"
)

// Scenario 1: Dictionary = {cat, car, cot}, 3x1 grid, all cells free.
// Solve must terminate and yield one of the three words.
func TestSolverScenario1SmallThreeWayChoice(t *testing.T) {
	dict := NewDictionary([]string{"cat", "car", "cot"}, DictionaryConfig{Alphabet: "catro"})
	cw := NewCrossword(3, 1, dict)
	s := NewSolver(cw, rand.New(rand.NewSource(1)))

	outcome := s.Solve(nil)
	if outcome != Solved {
		t.Fatalf("outcome = %v, want Solved", outcome)
	}

	word := ""
	for x := 0; x < 3; x++ {
		cell := s.Current().Grid.Get(Coord{X: x, Y: 0})
		word += string(soleAdmissibleLetter(cell))
	}
	if word != "cat" && word != "car" && word != "cot" {
		t.Errorf("solved word = %q, want one of cat/car/cot", word)
	}
}

// Scenario 3: Dictionary = {aaa}, 3x3 grid, must produce the all-a grid
// without ever backtracking (there is only one admissible letter
// anywhere, so no deadend is possible).
func TestSolverScenario3SingleWordNoBacktrack(t *testing.T) {
	// Alphabet restricted to 'a' alone: with only one admissible letter
	// anywhere, every descend succeeds and the solve must reach Solved
	// without ever popping a frame.
	dict := NewDictionary([]string{"aaa"}, DictionaryConfig{Alphabet: "a"})
	cw := NewCrossword(3, 3, dict)
	s := NewSolver(cw, rand.New(rand.NewSource(7)))

	backtracked := false
	outcome := s.Solve(func() bool {
		if s.Depth() == 0 && s.Iterations > 0 {
			// Depth returned to 0 after iterations already ran: only
			// possible if a backtrack popped all the way back.
			backtracked = true
		}
		return false
	})

	if outcome != Solved {
		t.Fatalf("outcome = %v, want Solved", outcome)
	}
	if backtracked {
		t.Error("solving a single-letter alphabet should never need to backtrack")
	}
	s.Current().Grid.Each(func(c *Cell) {
		if l := soleAdmissibleLetter(c); l != 'a' {
			t.Errorf("cell %v = %c, want a", c.Coord, l)
		}
	})
}

// Scenario 5: a masked cell pinned to a letter absent from the only
// dictionary word must exhaust: the first descent deadends, the
// backtrack returns to the root, and the root's own propagation then
// deadends, so the search ends on the root frame.
func TestSolverScenario5MaskedWrongLetterExhausts(t *testing.T) {
	dict := NewDictionary([]string{"cat"}, DictionaryConfig{Alphabet: "catd"})
	cw := NewCrossword(3, 1, dict)
	masked := cw.Grid.Get(Coord{X: 0, Y: 0})
	masked.SetLetter('d')
	masked.Mask = true

	s := NewSolver(cw, rand.New(rand.NewSource(3)))
	outcome := s.Solve(nil)

	if outcome != Exhausted {
		t.Fatalf("outcome = %v, want Exhausted", outcome)
	}
	if s.Depth() != 0 {
		t.Errorf("depth = %d, want 0 (exhaustion detected at root)", s.Depth())
	}
}

func TestSolverCancelledByStopFunc(t *testing.T) {
	dict := NewDictionary([]string{"cat", "car", "cot"}, DictionaryConfig{Alphabet: "catro"})
	cw := NewCrossword(3, 1, dict)
	s := NewSolver(cw, rand.New(rand.NewSource(1)))

	calls := 0
	outcome := s.Solve(func() bool {
		calls++
		return true
	})

	if outcome != Cancelled {
		t.Fatalf("outcome = %v, want Cancelled", outcome)
	}
	if calls == 0 {
		t.Error("stop func should have been polled at least once")
	}
}

func TestSolverDeterministicUnderSameSeed(t *testing.T) {
	dict := NewDictionary([]string{"cat", "car", "cot", "dog", "dig", "dot"}, DictionaryConfig{Alphabet: "catrodgi"})

	run := func() string {
		cw := NewCrossword(3, 1, dict)
		s := NewSolver(cw, rand.New(rand.NewSource(99)))
		s.Solve(nil)
		word := ""
		for x := 0; x < 3; x++ {
			word += string(soleAdmissibleLetter(s.Current().Grid.Get(Coord{X: x, Y: 0})))
		}
		return word
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different results: %q vs %q", a, b)
	}
}

func TestSolverResetReseedsAndClearsCounters(t *testing.T) {
	dict := NewDictionary([]string{"cat", "car", "cot"}, DictionaryConfig{Alphabet: "catro"})
	cw := NewCrossword(3, 1, dict)
	s := NewSolver(cw, rand.New(rand.NewSource(1)))
	s.Solve(nil)

	s.Reset(nil)

	if s.Iterations != 0 || s.TotalPasses != 0 {
		t.Errorf("Reset should zero counters, got Iterations=%d TotalPasses=%d", s.Iterations, s.TotalPasses)
	}
	if s.Depth() != 0 {
		t.Errorf("Reset should return to root depth, got %d", s.Depth())
	}
	if s.Current().Grid.IsFullyDefined() {
		t.Error("Reset should undefine the grid")
	}
}

func TestSolverBacktrackBlacklistsFailedLetter(t *testing.T) {
	// Dictionary only contains "cat". Pinning the first cell to 'd' (a
	// letter "cat" never starts with) leaves no word able to match once
	// a second cell is defined, forcing a one-level-deep deadend on the
	// next descent. The backtrack must pop that frame and blacklist
	// whichever letter was chosen there, at the parent's cell.
	dict := NewDictionary([]string{"cat"}, DictionaryConfig{Alphabet: "cdat"})
	cw := NewCrossword(3, 1, dict)
	s := NewSolver(cw, rand.New(rand.NewSource(5)))

	root := s.Current().Grid.Get(Coord{X: 0, Y: 0})
	root.SetLetterCount('c', 0)
	root.SetLetterCount('a', 0)
	root.SetLetterCount('t', 0)
	if !root.IsDefined() {
		t.Fatalf("root cell should be pinned to d")
	}

	s.Iterate() // descend: defines the middle cell, then deadends the last via propagation
	if s.Depth() != 1 {
		t.Fatalf("depth after descend = %d, want 1", s.Depth())
	}
	// Propagation has already emptied the deadended cells, so the chosen
	// letter is read from the move frame rather than from the grid.
	failedLetter := s.stack.top().letter

	s.Iterate() // backtrack: deadend detected, pops back to root
	if s.Depth() != 0 {
		t.Fatalf("depth after backtrack = %d, want 0", s.Depth())
	}

	rootAfter := s.stack.frames[0].crossword.Grid.Get(Coord{X: 1, Y: 0})
	if !rootAfter.IsBlacklisted(failedLetter) {
		t.Errorf("root cell (1,0) blacklist = %v, want %c present", rootAfter.Blacklist, failedLetter)
	}
}
