package generator

import (
	"bspdungeon/pkg/engine/world"
	"bspdungeon/pkg/game/partition"
)

// ConnectRooms carves one bridge per internal node between the anchor rooms
// of its two children, parents before children. Returns the number of
// bridges carved; nodes with an empty anchor are skipped.
func ConnectRooms(tree *partition.Tree, c Canvas, thickness int) int {
	bridges := 0
	tree.Walk(func(id partition.NodeID, n partition.Node) {
		if tree.IsLeaf(id) {
			return
		}

		leftRoom := tree.Node(n.Left).Room
		rightRoom := tree.Node(n.Right).Room
		if leftRoom.Empty() || rightRoom.Empty() {
			return
		}

		carveBridge(c, leftRoom.Center(), rightRoom.Center(), thickness)
		bridges++
	})
	return bridges
}

// carveBridge joins two centres with a horizontal band along the left
// centre's row and a vertical band along the right centre's column
func carveBridge(c Canvas, left, right world.Point, thickness int) {
	half := (thickness - 1) / 2
	carveCorridorHorizontal(c, left.Y, left.X, right.X, half)
	carveCorridorVertical(c, right.X, left.Y, right.Y, half)
}

// carveCorridorHorizontal carves a band centred on row y
func carveCorridorHorizontal(c Canvas, y, startX, endX, half int) {
	if startX > endX {
		startX, endX = endX, startX
	}

	for x := startX; x <= endX; x++ {
		for d := half; d >= 1; d-- {
			plotFlank(c, x, y+d)
		}
		plot(c, x, y, world.Solid)
		for d := 1; d <= half; d++ {
			plotFlank(c, x, y-d)
		}
	}
}

// carveCorridorVertical carves a band centred on column x
func carveCorridorVertical(c Canvas, x, startY, endY, half int) {
	if startY > endY {
		startY, endY = endY, startY
	}

	for y := startY; y <= endY; y++ {
		for d := half; d >= 1; d-- {
			plotFlank(c, x-d, y)
		}
		plot(c, x, y, world.Solid)
		for d := 1; d <= half; d++ {
			plotFlank(c, x+d, y)
		}
	}
}

// plotFlank marks a corridor edge Soft; Solid cells keep their state
func plotFlank(c Canvas, x, y int) {
	t, ok := tileAt(c, x, y)
	if !ok || t == world.Solid {
		return
	}
	c.SetTile(x, y, world.Soft)
}
