package generator

import "bspdungeon/pkg/engine/world"

// Canvas is the tile store the pipeline reads and writes. *world.Grid
// satisfies it. Every stage checks bounds before touching the canvas,
// so a Canvas never sees an off-grid coordinate.
type Canvas interface {
	Width() int
	Height() int
	Tile(x, y int) world.TileState
	SetTile(x, y int, t world.TileState) bool
}

func inBounds(c Canvas, x, y int) bool {
	return x >= 0 && x < c.Width() && y >= 0 && y < c.Height()
}

// plot writes t at (x, y), skipping positions off the canvas
func plot(c Canvas, x, y int, t world.TileState) {
	if !inBounds(c, x, y) {
		return
	}
	c.SetTile(x, y, t)
}

// tileAt reads (x, y); ok is false off the canvas
func tileAt(c Canvas, x, y int) (t world.TileState, ok bool) {
	if !inBounds(c, x, y) {
		return world.Open, false
	}
	return c.Tile(x, y), true
}

// snapshot copies the canvas into a fresh grid
func snapshot(c Canvas) *world.Grid {
	g := world.NewGrid(c.Width(), c.Height())
	for x := 0; x < c.Width(); x++ {
		for y := 0; y < c.Height(); y++ {
			g.SetTile(x, y, c.Tile(x, y))
		}
	}
	return g
}
