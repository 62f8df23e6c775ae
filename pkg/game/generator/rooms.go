package generator

import (
	"bspdungeon/pkg/engine/random"
	"bspdungeon/pkg/engine/world"
	"bspdungeon/pkg/game/partition"
)

// PlaceRooms places one room in every leaf, left subtree first, and returns
// the leaf rooms in that order. Internal nodes inherit the room of their
// Left child so that every node has an anchor for corridor carving.
func PlaceRooms(tree *partition.Tree, c Canvas, src random.Source, cfg Config) []world.Rect {
	var rooms []world.Rect
	placeRooms(tree, tree.Root(), c, src, cfg, &rooms)
	return rooms
}

func placeRooms(tree *partition.Tree, id partition.NodeID, c Canvas, src random.Source, cfg Config, rooms *[]world.Rect) world.Rect {
	if tree.IsLeaf(id) {
		room := placeRoom(tree.Node(id).Bounds, c, src, cfg)
		tree.SetRoom(id, room)
		*rooms = append(*rooms, room)
		return room
	}

	node := tree.Node(id)
	left := placeRooms(tree, node.Left, c, src, cfg, rooms)
	placeRooms(tree, node.Right, c, src, cfg, rooms)

	tree.SetRoom(id, left)
	return left
}

// placeRoom sizes and centres a room in leaf, seeds the area around it and
// fills the room itself Solid. A leaf with no area yields an empty room.
func placeRoom(leaf world.Rect, c Canvas, src random.Source, cfg Config) world.Rect {
	if leaf.Empty() {
		return world.NewRect(leaf.X, leaf.Y, 0, 0)
	}

	width := roomDimension(src, leaf.Width, cfg)
	height := roomDimension(src, leaf.Height, cfg)

	x := leaf.X + (leaf.Width-width)/2
	y := leaf.Y + (leaf.Height-height)/2
	room := world.NewRect(x, y, width, height)

	spreadToRoom(c, src, room, cfg.SpreadRatio, cfg.SeedDensity)

	room.ForEachCell(func(x, y int) {
		plot(c, x, y, world.Solid)
	})

	return room
}

// roomDimension draws a room side from the leaf side, floored, then raised
// to MinRoomSize (at least 1) without exceeding the leaf
func roomDimension(src random.Source, leafSize int, cfg Config) int {
	size := int(random.Range(src, float64(leafSize)*cfg.RoomMinFraction, float64(leafSize)*cfg.RoomMaxFraction))
	size = max(size, cfg.MinRoomSize, 1)
	return min(size, leafSize)
}

// spreadToRoom scatters Soft and Open cells over the room grown by ratio
// around its centre. One draw is taken per cell, even off-canvas, so the
// random stream does not depend on where the map edge falls.
func spreadToRoom(c Canvas, src random.Source, room world.Rect, ratio float64, density int) {
	width := int(float64(room.Width) * ratio)
	height := int(float64(room.Height) * ratio)
	x := room.X - int(float64(width-room.Width)*0.5)
	y := room.Y - int(float64(height-room.Height)*0.5)

	world.NewRect(x, y, width, height).ForEachCell(func(x, y int) {
		plot(c, x, y, seedTile(src, density))
	})
}

// seedTile returns Soft with the given percentage, otherwise Open
func seedTile(src random.Source, density int) world.TileState {
	if random.Chance(src, density) {
		return world.Soft
	}
	return world.Open
}
