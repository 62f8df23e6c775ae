package generator

import (
	"strings"
	"testing"

	"bspdungeon/pkg/engine/world"
)

var tileRunes = map[rune]world.TileState{
	'.': world.Open,
	's': world.Soft,
	'#': world.Solid,
	'_': world.Ledge,
}

// gridFromRows builds a grid from text rows, top row (highest y) first
func gridFromRows(t *testing.T, rows ...string) *world.Grid {
	t.Helper()
	g := world.NewGrid(len(rows[0]), len(rows))
	for i, row := range rows {
		y := len(rows) - 1 - i
		for x, r := range row {
			state, ok := tileRunes[r]
			if !ok {
				t.Fatalf("unknown tile rune %q", r)
			}
			g.SetTile(x, y, state)
		}
	}
	return g
}

// rowsOf renders a grid back into text rows, top row first
func rowsOf(g *world.Grid) []string {
	symbols := map[world.TileState]rune{}
	for r, s := range tileRunes {
		symbols[s] = r
	}
	rows := make([]string, 0, g.Height())
	for y := g.Height() - 1; y >= 0; y-- {
		var sb strings.Builder
		for x := 0; x < g.Width(); x++ {
			sb.WriteRune(symbols[g.Tile(x, y)])
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func assertRows(t *testing.T, g *world.Grid, want ...string) {
	t.Helper()
	got := rowsOf(g)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("grid =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

// strictCanvas wraps a grid and counts every off-grid access
type strictCanvas struct {
	grid       *world.Grid
	outOfRange int
}

func (s *strictCanvas) Width() int  { return s.grid.Width() }
func (s *strictCanvas) Height() int { return s.grid.Height() }

func (s *strictCanvas) Tile(x, y int) world.TileState {
	if !s.grid.IsValidPosition(x, y) {
		s.outOfRange++
	}
	return s.grid.Tile(x, y)
}

func (s *strictCanvas) SetTile(x, y int, t world.TileState) bool {
	if !s.grid.IsValidPosition(x, y) {
		s.outOfRange++
	}
	return s.grid.SetTile(x, y, t)
}

// fixedSource always returns the same draws
type fixedSource struct {
	f float64
	i int
}

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) Intn(n int) int   { return s.i % n }

// noDrawSource fails the test on any draw
type noDrawSource struct {
	t *testing.T
}

func (s noDrawSource) Float64() float64 {
	s.t.Error("unexpected Float64 draw")
	return 0
}

func (s noDrawSource) Intn(n int) int {
	s.t.Error("unexpected Intn draw")
	return 0
}
