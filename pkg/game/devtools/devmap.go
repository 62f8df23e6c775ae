package devtools

import (
	"bspdungeon/pkg/engine/world"
	"bspdungeon/pkg/game/generator"
	"bspdungeon/pkg/game/partition"
)

// devMapRows is a hand-drawn map showing every glyph, top row first
var devMapRows = []string{
	"################",
	"#..............#",
	"#.ssss....####.#",
	"#.____....____.#",
	"#..............#",
	"#.#..###.._..s.#",
	"#..............#",
	"################",
}

// DevLayout returns a fixed layout exercising every tile and ledge variant,
// split down the middle, for checking renderers without running the
// generator.
func DevLayout() *generator.Layout {
	height := len(devMapRows)
	width := len(devMapRows[0])
	grid := world.NewGrid(width, height)

	for i, row := range devMapRows {
		y := height - 1 - i
		for x, r := range row {
			switch r {
			case 's':
				grid.SetTile(x, y, world.Soft)
			case '#':
				grid.SetTile(x, y, world.Solid)
			case '_':
				grid.SetTile(x, y, world.Ledge)
			}
		}
	}

	left := world.NewRect(0, 0, width/2, height)
	right := world.NewRect(width/2, 0, width-width/2, height)
	return &generator.Layout{
		Grid:   grid,
		Leaves: []world.Rect{left, right},
		Rooms:  []world.Rect{world.NewRect(2, 5, 4, 1), world.NewRect(10, 5, 4, 1)},
		SplitLines: []partition.Segment{
			{From: world.Point{X: width / 2, Y: 0}, To: world.Point{X: width / 2, Y: height}},
		},
		Stats: generator.Stats{Leaves: 2, Rooms: 2, Corridors: 1},
	}
}
