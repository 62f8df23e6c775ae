package generator

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"bspdungeon/pkg/engine/random"
	"bspdungeon/pkg/engine/world"
	"bspdungeon/pkg/game/partition"
)

func TestGenerate_ReferenceScenario(t *testing.T) {
	g, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	layout, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if layout.Stats.Leaves != 8 {
		t.Errorf("Stats.Leaves = %d, want 8", layout.Stats.Leaves)
	}
	if layout.Stats.Rooms != 8 {
		t.Errorf("Stats.Rooms = %d, want 8", layout.Stats.Rooms)
	}
	if layout.Stats.Corridors != 7 {
		t.Errorf("Stats.Corridors = %d, want 7", layout.Stats.Corridors)
	}
	if len(layout.SplitLines) != 7 {
		t.Errorf("len(SplitLines) = %d, want 7", len(layout.SplitLines))
	}
	if layout.Stats.Seed != DefaultSeed || layout.Stats.Generation != 1 {
		t.Errorf("Stats seed/generation = %d/%d, want %d/1", layout.Stats.Seed, layout.Stats.Generation, DefaultSeed)
	}
	if layout.Grid.Width() != 64 || layout.Grid.Height() != 64 {
		t.Errorf("grid = %dx%d, want 64x64", layout.Grid.Width(), layout.Grid.Height())
	}
	if layout.Grid.Count(world.Solid) == 0 {
		t.Error("grid has no Solid cells")
	}
}

func TestGenerate_SingleCellMap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MapWidth, cfg.MapHeight, cfg.MaxPartitionDepth = 1, 1, 0

	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	layout, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(layout.Leaves) != 1 || layout.Leaves[0] != world.NewRect(0, 0, 1, 1) {
		t.Errorf("Leaves = %v, want the whole map", layout.Leaves)
	}
	if layout.Stats.Rooms != 1 || layout.Stats.Corridors != 0 {
		t.Errorf("rooms/corridors = %d/%d, want 1/0", layout.Stats.Rooms, layout.Stats.Corridors)
	}
	if got, err := layout.Grid.TileAt(0, 0); err != nil || got != world.Solid {
		t.Errorf("TileAt(0,0) = %v, %v; want Solid, nil", got, err)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, mode := range []RefineMode{RefineInPlace, RefineBuffered} {
		for seed := int64(1); seed <= 5; seed++ {
			cfg := DefaultConfig()
			cfg.RandomSeed = seed
			cfg.RefineMode = mode

			a, err := Generate(cfg)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			b, err := Generate(cfg)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if !a.Equal(b) {
				t.Errorf("mode %v seed %d: two runs produced different grids", mode, seed)
			}
		}
	}
}

func TestGenerate_SeedsDiffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RandomSeed = 1
	a, _ := Generate(cfg)
	cfg.RandomSeed = 2
	b, _ := Generate(cfg)
	if a.Equal(b) {
		t.Error("seeds 1 and 2 produced identical grids")
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.MapWidth = 0 }},
		{"negative height", func(c *Config) { c.MapHeight = -3 }},
		{"negative depth", func(c *Config) { c.MaxPartitionDepth = -1 }},
		{"min fraction zero", func(c *Config) { c.MinDivideFraction = 0 }},
		{"max fraction one", func(c *Config) { c.MaxDivideFraction = 1 }},
		{"min above max", func(c *Config) { c.MinDivideFraction, c.MaxDivideFraction = 0.7, 0.3 }},
		{"room fractions inverted", func(c *Config) { c.RoomMinFraction, c.RoomMaxFraction = 0.6, 0.5 }},
		{"negative min room", func(c *Config) { c.MinRoomSize = -1 }},
		{"zero corridor", func(c *Config) { c.CorridorThickness = 0 }},
		{"spread below one", func(c *Config) { c.SpreadRatio = 0.5 }},
		{"density above 100", func(c *Config) { c.SeedDensity = 101 }},
		{"unknown refine mode", func(c *Config) { c.RefineMode = RefineMode(7) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if _, err := Generate(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Generate err = %v, want ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestReset_RebuildsAndReplays(t *testing.T) {
	first, _ := New(DefaultConfig())
	a1, err := first.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	a2, err := first.Reset()
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if a1.Grid == a2.Grid {
		t.Fatal("Reset reused the previous grid")
	}
	if a1.Grid.Equal(a2.Grid) {
		t.Error("Reset produced the same layout as Generate")
	}
	if a2.Stats.Generation != 2 {
		t.Errorf("Generation after Reset = %d, want 2", a2.Stats.Generation)
	}
	if first.Layout() != a2 {
		t.Error("Layout() does not return the latest layout")
	}

	second, _ := New(DefaultConfig())
	second.Generate()
	b2, _ := second.Reset()
	if !a2.Grid.Equal(b2.Grid) {
		t.Error("same seed produced different layouts after one Reset")
	}

	again, _ := first.Generate()
	if !again.Grid.Equal(a1.Grid) || again.Stats.Generation != 1 {
		t.Error("Generate after Reset did not restart from the seed")
	}
}

func TestReset_BeforeGenerate(t *testing.T) {
	g, _ := New(DefaultConfig())
	layout, err := g.Reset()
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	want, _ := Generate(DefaultConfig())
	if !layout.Grid.Equal(want) {
		t.Error("Reset before Generate differs from a fresh Generate")
	}
}

func TestGenerate_InjectedSource(t *testing.T) {
	a, _ := New(DefaultConfig())
	a.WithSource(random.New(99))
	b, _ := New(DefaultConfig())
	b.WithSource(random.New(99))

	la, _ := a.Generate()
	lb, _ := b.Generate()
	if !la.Grid.Equal(lb.Grid) {
		t.Error("identical injected sources produced different grids")
	}

	seeded, _ := Generate(DefaultConfig())
	if la.Grid.Equal(seeded) {
		t.Error("injected source was ignored in favour of the configured seed")
	}
}

func TestGenerate_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	g, _ := New(DefaultConfig())
	g.WithLogger(log.New(&buf, "", 0)).Generate()
	if !strings.Contains(buf.String(), "8 leaves, 8 rooms, 7 corridors") {
		t.Errorf("log = %q, want a summary with leaf/room/corridor counts", buf.String())
	}
}

func TestBuild_NeverTouchesOutsideGrid(t *testing.T) {
	shapes := []struct{ w, h, depth int }{
		{1, 1, 0},
		{1, 1, 3},
		{3, 5, 4},
		{7, 7, 2},
		{20, 90, 5},
		{64, 64, 3},
		{128, 16, 4},
	}

	for _, shape := range shapes {
		for _, thickness := range []int{1, 7, 15} {
			for _, mode := range []RefineMode{RefineInPlace, RefineBuffered} {
				for seed := int64(1); seed <= 5; seed++ {
					cfg := DefaultConfig()
					cfg.MapWidth, cfg.MapHeight, cfg.MaxPartitionDepth = shape.w, shape.h, shape.depth
					cfg.CorridorThickness = thickness
					cfg.RefineMode = mode

					canvas := &strictCanvas{grid: world.NewGrid(shape.w, shape.h)}
					build(canvas, random.New(seed), cfg)
					if canvas.outOfRange != 0 {
						t.Errorf("%dx%d depth %d thickness %d mode %v seed %d: %d off-grid accesses",
							shape.w, shape.h, shape.depth, thickness, mode, seed, canvas.outOfRange)
					}
				}
			}
		}
	}
}

func TestRefine_KeepsSolidCells(t *testing.T) {
	for _, mode := range []RefineMode{RefineInPlace, RefineBuffered} {
		for seed := int64(1); seed <= 10; seed++ {
			cfg := DefaultConfig()
			src := random.New(seed)
			grid := world.NewGrid(cfg.MapWidth, cfg.MapHeight)

			tree := partition.New(grid.Bounds())
			tree.Split(tree.Root(), 0, cfg.MaxPartitionDepth, src, partition.SplitOptions{
				MinFraction: cfg.MinDivideFraction,
				MaxFraction: cfg.MaxDivideFraction,
			})
			PlaceRooms(tree, grid, src, cfg)
			ConnectRooms(tree, grid, cfg.CorridorThickness)

			var solid []world.Point
			grid.ForEachTile(func(x, y int, s world.TileState) {
				if s == world.Solid {
					solid = append(solid, world.Point{X: x, Y: y})
				}
			})

			Refine(grid, mode)

			for _, p := range solid {
				if got := grid.Tile(p.X, p.Y); got != world.Solid {
					t.Fatalf("mode %v seed %d: (%d,%d) = %v after refinement, want Solid", mode, seed, p.X, p.Y, got)
				}
			}
			if grid.Count(world.Solid) != len(solid) {
				t.Errorf("mode %v seed %d: refinement created Solid cells", mode, seed)
			}
		}
	}
}

func TestLayout_RoomsInsideLeaves(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := DefaultConfig()
		cfg.RandomSeed = seed
		cfg.MaxPartitionDepth = 4
		g, _ := New(cfg)
		layout, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(layout.Rooms) != len(layout.Leaves) {
			t.Fatalf("%d rooms for %d leaves", len(layout.Rooms), len(layout.Leaves))
		}
		for i, room := range layout.Rooms {
			if room.Empty() {
				t.Errorf("seed %d: leaf %v has an empty room", seed, layout.Leaves[i])
				continue
			}
			if !layout.Leaves[i].ContainsRect(room) {
				t.Errorf("seed %d: room %v outside leaf %v", seed, room, layout.Leaves[i])
			}
		}
	}
}

func TestLayout_LedgesSitUnderObstructions(t *testing.T) {
	for _, mode := range []RefineMode{RefineInPlace, RefineBuffered} {
		cfg := DefaultConfig()
		cfg.RefineMode = mode
		grid, _ := Generate(cfg)

		grid.ForEachTile(func(x, y int, s world.TileState) {
			if !s.IsValid() {
				t.Errorf("(%d,%d) has invalid state %d", x, y, s)
			}
			if s != world.Ledge {
				return
			}
			if above, ok := grid.Neighbor(x, y, world.North); !ok || !above.IsObstruction() {
				t.Errorf("mode %v: ledge at (%d,%d) has %v above", mode, x, y, above)
			}
			if below, ok := grid.Neighbor(x, y, world.South); !ok || below != world.Open {
				t.Errorf("mode %v: ledge at (%d,%d) has %v below", mode, x, y, below)
			}
		})
	}
}
