// Package layout seeds a rectangular boolean mask of block cells with
// 180-degree rotational symmetry, for CLI callers that want a crossword
// skeleton before handing it to the solver. It has no dependency on
// pkg/wfc: the solver accepts pre-placed blocks as ordinary masked
// cells and has no opinion on symmetry.
package layout

import "math/rand"

// Config controls block-square seeding.
type Config struct {
	Width   int
	Height  int
	Density float64 // fraction of cells that end up blocked, roughly
}

// Seed places blocks in the top-left quadrant of a Width x Height grid
// and mirrors them to the bottom-right quadrant, then returns the full
// mask ([y][x], true = block). The center cell of an odd x odd grid is
// always left open.
func Seed(cfg Config, rng *rand.Rand) [][]bool {
	mask := make([][]bool, cfg.Height)
	for y := range mask {
		mask[y] = make([]bool, cfg.Width)
	}

	totalCells := cfg.Width * cfg.Height
	target := int(float64(totalCells) * cfg.Density)
	toPlace := target / 2

	quadW := cfg.Width / 2
	quadH := cfg.Height / 2

	type pos struct{ x, y int }
	var positions []pos
	for y := 0; y < quadH; y++ {
		for x := 0; x < quadW; x++ {
			positions = append(positions, pos{x, y})
		}
	}
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	for i := 0; i < len(positions) && i < toPlace; i++ {
		mask[positions[i].y][positions[i].x] = true
	}

	mirror(mask, cfg.Width, cfg.Height)

	if cfg.Width%2 == 1 && cfg.Height%2 == 1 {
		mask[cfg.Height/2][cfg.Width/2] = false
	}

	return mask
}

func mirror(mask [][]bool, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask[y][x] {
				mask[height-1-y][width-1-x] = true
			}
		}
	}
}

// IsSymmetric reports whether mask has 180-degree rotational symmetry.
func IsSymmetric(mask [][]bool) bool {
	height := len(mask)
	if height == 0 {
		return true
	}
	width := len(mask[0])
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask[y][x] != mask[height-1-y][width-1-x] {
				return false
			}
		}
	}
	return true
}
