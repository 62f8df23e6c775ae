package partition

import "fmt"

// Validate checks that the leaves partition the root exactly and that every
// leaf sits at maxDepth. Returns the first violation found.
func (t *Tree) Validate(maxDepth int) error {
	if len(t.nodes) == 0 {
		return fmt.Errorf("tree has no nodes")
	}

	root := t.nodes[t.Root()].Bounds
	leaves := t.Leaves()
	area := 0

	for i, id := range leaves {
		n := t.nodes[id]
		if n.Depth != maxDepth {
			return fmt.Errorf("leaf %d at depth %d, want %d", id, n.Depth, maxDepth)
		}
		if !root.ContainsRect(n.Bounds) && !n.Bounds.Empty() {
			return fmt.Errorf("leaf %d bounds %v outside root %v", id, n.Bounds, root)
		}
		for _, other := range leaves[:i] {
			if n.Bounds.Overlaps(t.nodes[other].Bounds) {
				return fmt.Errorf("leaf %d %v overlaps leaf %d %v", id, n.Bounds, other, t.nodes[other].Bounds)
			}
		}
		area += n.Bounds.Area()
	}

	// Disjoint leaves inside the root cover it exactly when the areas match
	if area != root.Area() {
		return fmt.Errorf("leaves cover %d cells, root has %d", area, root.Area())
	}

	for _, id := range t.Internal() {
		n := t.nodes[id]
		if n.Left == NoNode || n.Right == NoNode {
			return fmt.Errorf("internal node %d has a single child", id)
		}
		l, r := t.nodes[n.Left], t.nodes[n.Right]
		if l.Parent != id || r.Parent != id {
			return fmt.Errorf("children of node %d do not point back to it", id)
		}
		if l.Bounds.Area()+r.Bounds.Area() != n.Bounds.Area() {
			return fmt.Errorf("children of node %d cover %d cells, node has %d", id, l.Bounds.Area()+r.Bounds.Area(), n.Bounds.Area())
		}
	}

	return nil
}
