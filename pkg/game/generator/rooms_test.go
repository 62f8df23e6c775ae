package generator

import (
	"testing"

	"bspdungeon/pkg/engine/random"
	"bspdungeon/pkg/engine/world"
	"bspdungeon/pkg/game/partition"
)

func TestPlaceRoom_SizeCentreAndSeeding(t *testing.T) {
	grid := world.NewGrid(20, 10)
	cfg := DefaultConfig()

	// Float 0 takes the smallest fraction; Intn 50 seeds every cell Soft
	room := placeRoom(world.NewRect(0, 0, 20, 10), grid, fixedSource{f: 0, i: 50}, cfg)

	if want := world.NewRect(6, 3, 8, 4); room != want {
		t.Fatalf("room = %v, want %v", room, want)
	}
	if got := grid.Count(world.Solid); got != 32 {
		t.Errorf("Solid cells = %d, want 32", got)
	}
	// Seeded area is 14x7 at (3,2), minus the room itself
	if got := grid.Count(world.Soft); got != 14*7-32 {
		t.Errorf("Soft cells = %d, want %d", got, 14*7-32)
	}
	if grid.Tile(2, 5) != world.Open || grid.Tile(3, 5) != world.Soft {
		t.Error("seeded area does not start at x=3")
	}
}

func TestPlaceRoom_SeedDensityZeroLeavesOpen(t *testing.T) {
	grid := world.NewGrid(20, 10)
	cfg := DefaultConfig()
	cfg.SeedDensity = 0

	placeRoom(world.NewRect(0, 0, 20, 10), grid, fixedSource{f: 0.5, i: 99}, cfg)
	if got := grid.Count(world.Soft); got != 0 {
		t.Errorf("Soft cells = %d, want 0", got)
	}
}

func TestPlaceRoom_MinRoomSizeCappedByLeaf(t *testing.T) {
	grid := world.NewGrid(3, 3)
	cfg := DefaultConfig()

	room := placeRoom(grid.Bounds(), grid, fixedSource{f: 0, i: 0}, cfg)
	if room != grid.Bounds() {
		t.Errorf("room = %v, want the whole 3x3 leaf", room)
	}
}

func TestPlaceRoom_AtLeastOneCell(t *testing.T) {
	grid := world.NewGrid(2, 2)
	cfg := DefaultConfig()
	cfg.MinRoomSize = 0

	room := placeRoom(grid.Bounds(), grid, fixedSource{f: 0, i: 0}, cfg)
	if room.Width != 1 || room.Height != 1 {
		t.Errorf("room = %v, want 1x1", room)
	}
}

func TestPlaceRoom_EmptyLeafIsNoOp(t *testing.T) {
	grid := world.NewGrid(4, 4)
	room := placeRoom(world.NewRect(2, 2, 0, 3), grid, noDrawSource{t: t}, DefaultConfig())
	if !room.Empty() {
		t.Errorf("room = %v, want empty", room)
	}
	if grid.Count(world.Open) != 16 {
		t.Error("empty leaf wrote to the grid")
	}
}

func TestPlaceRooms_InternalNodesInheritLeftRoom(t *testing.T) {
	cfg := DefaultConfig()
	src := random.New(11)
	grid := world.NewGrid(cfg.MapWidth, cfg.MapHeight)
	tree := partition.New(grid.Bounds())
	tree.Split(tree.Root(), 0, 3, src, partition.SplitOptions{MinFraction: 0.4, MaxFraction: 0.6})

	rooms := PlaceRooms(tree, grid, src, cfg)
	if len(rooms) != 8 {
		t.Fatalf("PlaceRooms returned %d rooms, want 8", len(rooms))
	}

	for i, id := range tree.Leaves() {
		n := tree.Node(id)
		if n.Room != rooms[i] {
			t.Errorf("leaf %d room %v, returned %v", id, n.Room, rooms[i])
		}
		if !n.Bounds.ContainsRect(n.Room) {
			t.Errorf("leaf %d room %v outside %v", id, n.Room, n.Bounds)
		}
	}
	for _, id := range tree.Internal() {
		n := tree.Node(id)
		if n.Room != tree.Node(n.Left).Room {
			t.Errorf("node %d room %v, want left child's %v", id, n.Room, tree.Node(n.Left).Room)
		}
	}
	if tree.Node(tree.Root()).Room != rooms[0] {
		t.Error("root does not carry the left-most leaf's room")
	}
}

func TestSeedTile(t *testing.T) {
	tests := []struct {
		draw    int
		density int
		want    world.TileState
	}{
		{44, 55, world.Open},
		{45, 55, world.Soft},
		{99, 0, world.Open},
		{0, 100, world.Soft},
	}
	for _, tt := range tests {
		if got := seedTile(fixedSource{i: tt.draw}, tt.density); got != tt.want {
			t.Errorf("seedTile(draw %d, density %d) = %v, want %v", tt.draw, tt.density, got, tt.want)
		}
	}
}
