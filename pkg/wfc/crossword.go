package wfc

// Crossword pairs a grid with a dictionary. It owns no other state; its
// operations are constraint propagation and full-word validity.
type Crossword struct {
	Grid       *Grid
	Dictionary *Dictionary
}

// NewCrossword builds a crossword for a grid of the given size, with
// every cell initialized to the dictionary's full alphabet.
func NewCrossword(width, height int, dict *Dictionary) *Crossword {
	return &Crossword{
		Grid:       NewGrid(GridConfig{Width: width, Height: height, Alphabet: alphabetString(dict)}),
		Dictionary: dict,
	}
}

func alphabetString(dict *Dictionary) string {
	letters := make([]rune, 0, len(dict.alphabet))
	for l := range dict.alphabet {
		letters = append(letters, l)
	}
	// Deterministic order so two crosswords built from the same
	// dictionary allocate identical cells.
	for i := 1; i < len(letters); i++ {
		for j := i; j > 0 && letters[j-1] > letters[j]; j-- {
			letters[j-1], letters[j] = letters[j], letters[j-1]
		}
	}
	return string(letters)
}

// Reset restores every cell to its freshly-allocated state.
func (cw *Crossword) Reset() {
	cw.Grid.Each(func(c *Cell) { c.Reset() })
}

// UpdateOptions is the hot path: it iteratively tightens every cell's
// options until no further tightening is possible or a deadend is
// detected. It returns the number of passes it ran, mirroring the
// original implementation's pass counter.
func (cw *Crossword) UpdateOptions() int {
	oldTotal := cw.Grid.TotalOptions()
	passes := 0

	for {
		passes++

		cw.Grid.Each(func(c *Cell) {
			for _, l := range c.Blacklist {
				c.SetLetterCount(l, 0)
			}
		})

		if cw.Grid.IsDeadend() {
			break
		}

		horizUpdated := make([][]bool, cw.Grid.Height)
		vertUpdated := make([][]bool, cw.Grid.Height)
		for y := range horizUpdated {
			horizUpdated[y] = make([]bool, cw.Grid.Width)
			vertUpdated[y] = make([]bool, cw.Grid.Width)
		}

		deadend := false
		for y := 0; y < cw.Grid.Height && !deadend; y++ {
			for x := 0; x < cw.Grid.Width && !deadend; x++ {
				coord := Coord{X: x, Y: y}
				cell := cw.Grid.Get(coord)
				if cell.IsDefined() || cell.Mask {
					continue
				}

				if !horizUpdated[y][x] {
					extent := cw.Grid.FindHorizontalWord(coord)
					if len(extent) >= 3 {
						cw.updateWordOptions(extent)
					}
					for _, c := range extent {
						horizUpdated[c.Y][c.X] = true
					}
				}
				if cw.Grid.IsDeadend() {
					deadend = true
					break
				}

				if !vertUpdated[y][x] {
					extent := cw.Grid.FindVerticalWord(coord)
					if len(extent) >= 3 {
						cw.updateWordOptions(extent)
					}
					for _, c := range extent {
						vertUpdated[c.Y][c.X] = true
					}
				}
				if cw.Grid.IsDeadend() {
					deadend = true
					break
				}
			}
		}

		newTotal := cw.Grid.TotalOptions()
		if newTotal >= oldTotal {
			break
		}
		oldTotal = newTotal
	}

	return passes
}

// updateWordOptions tightens the options of every cell in a word extent
// using the dictionary's per-position letter frequencies among words
// that are still compatible with the extent's current classes. A
// letter's new weight is the minimum of its existing weight and its
// frequency in this direction — a letter common in one direction but
// rare in the other is treated as rare, which guarantees monotone
// narrowing and hence termination.
func (cw *Crossword) updateWordOptions(coords []Coord) {
	classes := make([]map[rune]int, len(coords))
	for i, c := range coords {
		classes[i] = cw.Grid.Get(c).Options
	}

	freq := cw.Dictionary.Frequencies(classes)

	for i, coord := range coords {
		cell := cw.Grid.Get(coord)
		for letter := range cell.Options {
			count, ok := freq[i][letter]
			if !ok || cell.IsBlacklisted(letter) {
				cell.SetLetterCount(letter, 0)
				continue
			}
			if count < cell.Options[letter] {
				cell.SetLetterCount(letter, count)
			}
		}
	}
}

// IsFullyValid reports whether every maximal horizontal and vertical
// extent of length >= 3 that is fully defined appears in the
// dictionary's word list for its length. Masked and blocked cells are
// never extent starting points, so an extent made up only of masked
// cells is not checked, matching AllWords.
func (cw *Crossword) IsFullyValid() bool {
	for _, word := range cw.Grid.AllWords() {
		if !cw.Dictionary.Contains(word) {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy of the crossword. The
// dictionary is immutable once loaded and is shared, not copied.
func (cw *Crossword) Clone() *Crossword {
	return &Crossword{
		Grid:       cw.Grid.Clone(),
		Dictionary: cw.Dictionary,
	}
}
