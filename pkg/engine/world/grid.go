package world

import "fmt"

// Grid is the dungeon map: a width×height array of tile states.
// Writes outside the grid are silently skipped.
type Grid struct {
	tiles  []TileState
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions, every cell Open
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions, discarding any previous contents
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.tiles = make([]TileState, width*height)
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Bounds returns the rectangle covered by the grid
func (g *Grid) Bounds() Rect {
	return Rect{Width: g.width, Height: g.height}
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// TileAt returns the tile at the given position, or an error wrapping
// ErrOutOfBounds if the position is outside the grid
func (g *Grid) TileAt(x, y int) (TileState, error) {
	if !g.IsValidPosition(x, y) {
		return Open, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.tiles[g.index(x, y)], nil
}

// Tile returns the tile at the given position, or Open if out of bounds
func (g *Grid) Tile(x, y int) TileState {
	if !g.IsValidPosition(x, y) {
		return Open
	}
	return g.tiles[g.index(x, y)]
}

// SetTile sets the tile at the given position. Returns false if out of bounds.
func (g *Grid) SetTile(x, y int, t TileState) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.tiles[g.index(x, y)] = t
	return true
}

// Neighbor returns the tile adjacent to (x, y) in the given direction.
// ok is false when the neighbour lies outside the grid.
func (g *Grid) Neighbor(x, y int, dir Direction) (t TileState, ok bool) {
	if !dir.IsValid() {
		return Open, false
	}
	dx, dy := dir.Delta()
	if !g.IsValidPosition(x+dx, y+dy) {
		return Open, false
	}
	return g.tiles[g.index(x+dx, y+dy)], true
}

// ForEachTile iterates over all cells row by row, bottom row first
func (g *Grid) ForEachTile(fn func(x, y int, t TileState)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.tiles[g.index(x, y)])
		}
	}
}

// Count returns the number of cells in the given state
func (g *Grid) Count(t TileState) int {
	n := 0
	for _, s := range g.tiles {
		if s == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, tiles: make([]TileState, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}

// Equal returns true if both grids have the same dimensions and contents
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != o.tiles[i] {
			return false
		}
	}
	return true
}
