package generator

import "bspdungeon/pkg/engine/world"

// RefineMode selects how the refinement passes read their neighbours
type RefineMode int

const (
	// RefineInPlace reads and writes the same canvas, visiting columns left
	// to right and each column bottom to top. Later cells see updates made
	// earlier in the same pass. This reproduces historical layouts.
	RefineInPlace RefineMode = iota
	// RefineBuffered reads every pass from a snapshot taken before it
	// starts, so the result does not depend on visiting order.
	RefineBuffered
)

// String returns the flag name of the mode
func (m RefineMode) String() string {
	switch m {
	case RefineInPlace:
		return "inplace"
	case RefineBuffered:
		return "buffered"
	default:
		return "unknown"
	}
}

// ParseRefineMode converts a flag value into a RefineMode
func ParseRefineMode(s string) (RefineMode, bool) {
	switch s {
	case "inplace", "":
		return RefineInPlace, true
	case "buffered":
		return RefineBuffered, true
	default:
		return RefineInPlace, false
	}
}

// Density thresholds for absorption
const (
	softKeepDensity    = 4 // Soft stays Soft with at least this many obstructed neighbours
	openPromoteDensity = 5 // Open becomes Soft with at least this many
	crossDemoteCount   = 3 // Soft becomes Open with at least this many Open edge neighbours
)

// Refine runs absorption followed by correction. The order is part of the
// contract: correcting first produces a different grid.
func Refine(c Canvas, mode RefineMode) {
	Absorb(c, mode)
	Correct(c, mode)
}

// source returns the canvas a pass should read from
func source(c Canvas, mode RefineMode) Canvas {
	if mode == RefineBuffered {
		return snapshot(c)
	}
	return c
}

// forEachCell visits every cell column by column, bottom to top
func forEachCell(c Canvas, fn func(x, y int)) {
	for x := 0; x < c.Width(); x++ {
		for y := 0; y < c.Height(); y++ {
			fn(x, y)
		}
	}
}

// Absorb reclassifies Soft and Open cells by how many of their eight
// neighbours are obstructed. Solid and Ledge cells are left alone.
func Absorb(c Canvas, mode RefineMode) {
	read := source(c, mode)

	forEachCell(c, func(x, y int) {
		current := read.Tile(x, y)
		density := obstructedNeighbors(read, x, y)

		switch {
		case current == world.Soft && density >= softKeepDensity:
			// stays Soft
		case current == world.Open && density >= openPromoteDensity:
			c.SetTile(x, y, world.Soft)
		case current == world.Open || current == world.Soft:
			c.SetTile(x, y, world.Open)
		}
	})
}

// Correct strips thin Soft slivers, then marks Open cells that sit directly
// under an obstruction, with Open ground below, as Ledge
func Correct(c Canvas, mode RefineMode) {
	read := source(c, mode)
	forEachCell(c, func(x, y int) {
		if read.Tile(x, y) == world.Soft && openCrossNeighbors(read, x, y) >= crossDemoteCount {
			c.SetTile(x, y, world.Open)
		}
	})

	read = source(c, mode)
	forEachCell(c, func(x, y int) {
		if read.Tile(x, y) != world.Open {
			return
		}
		above, ok := neighbor(read, x, y, world.North)
		if !ok || !above.IsObstruction() {
			return
		}
		below, ok := neighbor(read, x, y, world.South)
		if !ok || below != world.Open {
			return
		}
		c.SetTile(x, y, world.Ledge)
	})
}

func neighbor(c Canvas, x, y int, dir world.Direction) (world.TileState, bool) {
	dx, dy := dir.Delta()
	return tileAt(c, x+dx, y+dy)
}

// obstructedNeighbors counts Soft and Solid cells among the eight neighbours
func obstructedNeighbors(c Canvas, x, y int) int {
	count := 0
	for _, dir := range world.AllDirections() {
		if t, ok := neighbor(c, x, y, dir); ok && t.IsObstruction() {
			count++
		}
	}
	return count
}

// openCrossNeighbors counts Open cells among the four edge neighbours
func openCrossNeighbors(c Canvas, x, y int) int {
	count := 0
	for _, dir := range world.CardinalDirections() {
		if t, ok := neighbor(c, x, y, dir); ok && t == world.Open {
			count++
		}
	}
	return count
}
