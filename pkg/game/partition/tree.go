// Package partition builds the binary space partitioning tree that divides
// a map into leaf regions, one room per leaf.
package partition

import (
	"math"

	"bspdungeon/pkg/engine/random"
	"bspdungeon/pkg/engine/world"
)

// NodeID addresses a node in the tree arena
type NodeID int

// NoNode marks an absent child or parent link
const NoNode NodeID = -1

// Node is one region of the partition. Left and Right are owned children;
// Parent is a lookup only.
type Node struct {
	Bounds world.Rect
	// Room is the placed room for a leaf, or the room inherited from the
	// left-most descendant leaf for an internal node.
	Room world.Rect

	// Cut is the dividing line between the children of an internal node
	Cut Segment

	Left   NodeID
	Right  NodeID
	Parent NodeID
	Depth  int
}

// Segment is a straight line between two grid points
type Segment struct {
	From, To world.Point
}

// SplitOptions bounds where a node is cut along its longer axis,
// as fractions of that axis length
type SplitOptions struct {
	MinFraction float64
	MaxFraction float64
}

// Tree is an arena of partition nodes. The root is always NodeID 0.
type Tree struct {
	nodes []Node
}

// New creates a tree with a single root node covering bounds
func New(bounds world.Rect) *Tree {
	return &Tree{
		nodes: []Node{{Bounds: bounds, Left: NoNode, Right: NoNode, Parent: NoNode}},
	}
}

// Root returns the root node id
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes in the tree
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns a copy of the node with the given id
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// IsLeaf returns true if the node has no children
func (t *Tree) IsLeaf(id NodeID) bool {
	n := t.nodes[id]
	return n.Left == NoNode && n.Right == NoNode
}

// SetRoom attaches a room rectangle to a node
func (t *Tree) SetRoom(id NodeID, room world.Rect) {
	t.nodes[id].Room = room
}

func (t *Tree) add(bounds world.Rect, parent NodeID, depth int) NodeID {
	t.nodes = append(t.nodes, Node{
		Bounds: bounds,
		Left:   NoNode,
		Right:  NoNode,
		Parent: parent,
		Depth:  depth,
	})
	return NodeID(len(t.nodes) - 1)
}

// Split recursively divides the node until depth reaches maxDepth.
// Each split cuts the longer axis (ties cut the width) at a random offset,
// then a coin flip decides which half becomes Left. Children are split
// left first, so random draws happen in pre-order.
func (t *Tree) Split(id NodeID, depth, maxDepth int, src random.Source, opts SplitOptions) {
	if depth >= maxDepth {
		return
	}

	size := t.nodes[id].Bounds
	length := size.Height
	if size.Width >= size.Height {
		length = size.Width
	}

	split := int(math.RoundToEven(random.Range(src, float64(length)*opts.MinFraction, float64(length)*opts.MaxFraction)))
	// Keep both halves non-empty whenever the axis allows it
	if length >= 2 {
		split = max(1, min(split, length-1))
	}

	var left, right world.Rect
	var cut Segment
	if size.Width >= size.Height {
		cut = Segment{From: world.Point{X: size.X + split, Y: size.Y}, To: world.Point{X: size.X + split, Y: size.Top()}}
		first := world.NewRect(size.X, size.Y, split, size.Height)
		second := world.NewRect(size.X+split, size.Y, size.Width-split, size.Height)
		if src.Intn(2) == 0 {
			left, right = second, first
		} else {
			left, right = first, second
		}
	} else {
		cut = Segment{From: world.Point{X: size.X, Y: size.Y + split}, To: world.Point{X: size.Right(), Y: size.Y + split}}
		first := world.NewRect(size.X, size.Y, size.Width, split)
		second := world.NewRect(size.X, size.Y+split, size.Width, size.Height-split)
		if src.Intn(2) == 0 {
			left, right = first, second
		} else {
			left, right = second, first
		}
	}

	leftID := t.add(left, id, depth+1)
	rightID := t.add(right, id, depth+1)
	t.nodes[id].Left = leftID
	t.nodes[id].Right = rightID
	t.nodes[id].Cut = cut

	t.Split(leftID, depth+1, maxDepth, src, opts)
	t.Split(rightID, depth+1, maxDepth, src, opts)
}

// Walk visits every node in pre-order, left child before right
func (t *Tree) Walk(fn func(id NodeID, n Node)) {
	if len(t.nodes) == 0 {
		return
	}
	t.walk(t.Root(), fn)
}

func (t *Tree) walk(id NodeID, fn func(id NodeID, n Node)) {
	n := t.nodes[id]
	fn(id, n)
	if n.Left != NoNode {
		t.walk(n.Left, fn)
	}
	if n.Right != NoNode {
		t.walk(n.Right, fn)
	}
}

// Leaves returns the leaf ids in pre-order
func (t *Tree) Leaves() []NodeID {
	var leaves []NodeID
	t.Walk(func(id NodeID, n Node) {
		if n.Left == NoNode && n.Right == NoNode {
			leaves = append(leaves, id)
		}
	})
	return leaves
}

// Internal returns the ids of nodes with children in pre-order
func (t *Tree) Internal() []NodeID {
	var internal []NodeID
	t.Walk(func(id NodeID, n Node) {
		if n.Left != NoNode || n.Right != NoNode {
			internal = append(internal, id)
		}
	})
	return internal
}

// Ancestors returns the chain of parents from id up to the root
func (t *Tree) Ancestors(id NodeID) []NodeID {
	var chain []NodeID
	for p := t.nodes[id].Parent; p != NoNode; p = t.nodes[p].Parent {
		chain = append(chain, p)
	}
	return chain
}

// SplitLines returns the cut of every internal node in pre-order
func (t *Tree) SplitLines() []Segment {
	var lines []Segment
	for _, id := range t.Internal() {
		lines = append(lines, t.nodes[id].Cut)
	}
	return lines
}
