package renderer

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"bspdungeon/pkg/engine/world"
	"bspdungeon/pkg/game/partition"
)

// LedgeVariant picks which ledge tile to draw so ledge runs get end caps
type LedgeVariant int

const (
	LedgeCenter LedgeVariant = iota
	LedgeLeft
	LedgeRight
)

func (v LedgeVariant) String() string {
	switch v {
	case LedgeLeft:
		return "left"
	case LedgeRight:
		return "right"
	default:
		return "center"
	}
}

// LedgeVariantAt returns the variant for the ledge at (x, y): left when the
// west neighbour is open ground, else right when the east neighbour is,
// else center. Neighbours off the grid never count as open.
func LedgeVariantAt(g *world.Grid, x, y int) LedgeVariant {
	if t, ok := g.Neighbor(x, y, world.West); ok && t == world.Open {
		return LedgeLeft
	}
	if t, ok := g.Neighbor(x, y, world.East); ok && t == world.Open {
		return LedgeRight
	}
	return LedgeCenter
}

// Glyph identifies one drawable tile kind. Variant is only meaningful for
// ledges.
type Glyph struct {
	Tile    world.TileState
	Variant LedgeVariant
}

// GlyphAt returns the glyph to draw at (x, y)
func GlyphAt(g *world.Grid, x, y int) Glyph {
	t := g.Tile(x, y)
	if t != world.Ledge {
		return Glyph{Tile: t}
	}
	return Glyph{Tile: t, Variant: LedgeVariantAt(g, x, y)}
}

// Key returns the translation key describing the glyph
func (gl Glyph) Key() string {
	switch gl.Tile {
	case world.Open:
		return "TILE_OPEN"
	case world.Soft:
		return "TILE_SOFT"
	case world.Solid:
		return "TILE_SOLID"
	case world.Ledge:
		switch gl.Variant {
		case LedgeLeft:
			return "TILE_LEDGE_LEFT"
		case LedgeRight:
			return "TILE_LEDGE_RIGHT"
		default:
			return "TILE_LEDGE_CENTER"
		}
	}
	return "TILE_OPEN"
}

// Style returns the text style used for the glyph
func (gl Glyph) Style() TextStyle {
	switch gl.Tile {
	case world.Soft:
		return StyleSoft
	case world.Solid:
		return StyleSolid
	case world.Ledge:
		return StyleLedge
	default:
		return StyleOpen
	}
}

// Legend returns the distinct glyphs present in g, ordered by tile then
// variant.
func Legend(g *world.Grid) []Glyph {
	seen := mapset.New[Glyph]()
	g.ForEachTile(func(x, y int, _ world.TileState) {
		seen.Put(GlyphAt(g, x, y))
	})

	glyphs := make([]Glyph, 0, seen.Size())
	seen.Each(func(gl Glyph) {
		glyphs = append(glyphs, gl)
	})
	sort.Slice(glyphs, func(i, j int) bool {
		if glyphs[i].Tile != glyphs[j].Tile {
			return glyphs[i].Tile < glyphs[j].Tile
		}
		return glyphs[i].Variant < glyphs[j].Variant
	})
	return glyphs
}

// SplitCells returns every grid cell covered by a partition line. A cut
// runs along the column or row at its coordinate, from From up to but not
// including To.
func SplitCells(lines []partition.Segment) mapset.Set[world.Point] {
	cells := mapset.New[world.Point]()
	for _, s := range lines {
		if s.From.X == s.To.X {
			for y := s.From.Y; y < s.To.Y; y++ {
				cells.Put(world.Point{X: s.From.X, Y: y})
			}
			continue
		}
		for x := s.From.X; x < s.To.X; x++ {
			cells.Put(world.Point{X: x, Y: s.From.Y})
		}
	}
	return cells
}
