package wfc

// CellSnapshot is the read-only, front-end-facing view of a cell: just
// enough to paint it, nothing that would let a consumer mutate solver
// state.
type CellSnapshot struct {
	Defined bool           `json:"defined"`
	Mask    bool           `json:"mask"`
	Options map[string]int `json:"options"`
	Entropy float64        `json:"entropy"`
}

// GridSnapshot is an immutable, independent copy of a grid suitable for
// publishing on the status queue.
type GridSnapshot struct {
	Width  int              `json:"width"`
	Height int              `json:"height"`
	Cells  [][]CellSnapshot `json:"cells"` // [y][x]
}

// Snapshot renders the crossword's current grid into a read-only,
// independent copy. JSON map keys must be strings, so each letter
// (including Block) is rendered as a single-rune string.
func (cw *Crossword) Snapshot() GridSnapshot {
	snap := GridSnapshot{
		Width:  cw.Grid.Width,
		Height: cw.Grid.Height,
		Cells:  make([][]CellSnapshot, cw.Grid.Height),
	}
	for y := 0; y < cw.Grid.Height; y++ {
		row := make([]CellSnapshot, cw.Grid.Width)
		for x := 0; x < cw.Grid.Width; x++ {
			cell := cw.Grid.Get(Coord{X: x, Y: y})
			options := make(map[string]int, len(cell.Options))
			for l, w := range cell.Options {
				options[string(l)] = w
			}
			row[x] = CellSnapshot{
				Defined: cell.IsDefined(),
				Mask:    cell.Mask,
				Options: options,
				Entropy: cell.ShannonEntropy(),
			}
		}
		snap.Cells[y] = row
	}
	return snap
}
