package generator

import (
	"fmt"
	"io"
	"log"

	"bspdungeon/pkg/engine/random"
	"bspdungeon/pkg/engine/world"
	"bspdungeon/pkg/game/partition"
)

// Layout is the result of one generation. The partition tree is discarded;
// only the geometry a renderer or debugger needs is kept.
type Layout struct {
	Grid *world.Grid

	// Leaves are the leaf partitions in pre-order
	Leaves []world.Rect
	// Rooms holds one room per leaf, in the same order as Leaves
	Rooms []world.Rect
	// SplitLines are the partition cuts, for debug drawing
	SplitLines []partition.Segment

	Stats Stats
}

// Stats summarises a generation
type Stats struct {
	Seed       int64
	Generation int // 1 for the first layout, incremented by every Reset
	Leaves     int
	Rooms      int // Leaves that received a non-empty room
	Corridors  int // Bridges carved, one per internal node
}

// BSPGenerator generates dungeons using Binary Space Partitioning
type BSPGenerator struct {
	cfg      Config
	src      random.Source
	injected bool
	logger   *log.Logger

	layout     *Layout
	generation int
}

// New creates a generator for the given configuration
func New(cfg Config) (*BSPGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &BSPGenerator{
		cfg:    cfg,
		logger: log.New(io.Discard, "", 0),
	}, nil
}

// WithSource replaces the seeded random stream with src. Generate then
// consumes src directly instead of reseeding.
func (g *BSPGenerator) WithSource(src random.Source) *BSPGenerator {
	g.src = src
	g.injected = src != nil
	return g
}

// WithLogger sets the logger used for generation summaries
func (g *BSPGenerator) WithLogger(l *log.Logger) *BSPGenerator {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	g.logger = l
	return g
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// Config returns the generator configuration
func (g *BSPGenerator) Config() Config {
	return g.cfg
}

// Layout returns the most recent layout, or nil before the first generation
func (g *BSPGenerator) Layout() *Layout {
	return g.layout
}

// Generate builds a layout from the configured seed. Two calls with the
// same configuration return identical grids.
func (g *BSPGenerator) Generate() (*Layout, error) {
	if !g.injected {
		g.src = random.New(g.cfg.RandomSeed)
	}
	g.generation = 0
	return g.rebuild()
}

// Reset throws away the current grid and tree and builds a new dungeon,
// continuing the random stream so each reset gives a different layout.
// The sequence of layouts is still fixed by the seed.
func (g *BSPGenerator) Reset() (*Layout, error) {
	if g.src == nil {
		return g.Generate()
	}
	return g.rebuild()
}

func (g *BSPGenerator) rebuild() (*Layout, error) {
	g.layout = nil

	grid := world.NewGrid(g.cfg.MapWidth, g.cfg.MapHeight)
	tree, stats := build(grid, g.src, g.cfg)

	if err := tree.Validate(g.cfg.MaxPartitionDepth); err != nil {
		return nil, fmt.Errorf("partition check failed: %w", err)
	}

	g.generation++
	stats.Seed = g.cfg.RandomSeed
	stats.Generation = g.generation

	layout := &Layout{
		Grid:       grid,
		SplitLines: tree.SplitLines(),
		Stats:      stats,
	}
	for _, id := range tree.Leaves() {
		n := tree.Node(id)
		layout.Leaves = append(layout.Leaves, n.Bounds)
		layout.Rooms = append(layout.Rooms, n.Room)
	}

	g.logger.Printf("generated %dx%d dungeon (seed %d, generation %d): %d leaves, %d rooms, %d corridors",
		grid.Width(), grid.Height(), stats.Seed, stats.Generation, stats.Leaves, stats.Rooms, stats.Corridors)

	g.layout = layout
	return layout, nil
}

// build runs the full pipeline on c: partition, rooms, corridors, refinement
func build(c Canvas, src random.Source, cfg Config) (*partition.Tree, Stats) {
	tree := partition.New(world.NewRect(0, 0, c.Width(), c.Height()))
	tree.Split(tree.Root(), 0, cfg.MaxPartitionDepth, src, partition.SplitOptions{
		MinFraction: cfg.MinDivideFraction,
		MaxFraction: cfg.MaxDivideFraction,
	})

	rooms := PlaceRooms(tree, c, src, cfg)
	corridors := ConnectRooms(tree, c, cfg.CorridorThickness)

	Refine(c, cfg.RefineMode)

	stats := Stats{
		Leaves:    len(rooms),
		Corridors: corridors,
	}
	for _, r := range rooms {
		if !r.Empty() {
			stats.Rooms++
		}
	}
	return tree, stats
}

// Generate validates cfg and returns the finished grid
func Generate(cfg Config) (*world.Grid, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	layout, err := g.Generate()
	if err != nil {
		return nil, err
	}
	return layout.Grid, nil
}
