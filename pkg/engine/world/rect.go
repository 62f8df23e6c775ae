package world

import "fmt"

// Point is an integer grid coordinate
type Point struct {
	X, Y int
}

// Rect is an axis-aligned integer rectangle. It covers the cells
// x <= cx < x+Width and y <= cy < y+Height.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rectangle
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Empty returns true if the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of cells covered
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Right returns the exclusive right edge
func (r Rect) Right() int {
	return r.X + r.Width
}

// Top returns the exclusive top edge
func (r Rect) Top() int {
	return r.Y + r.Height
}

// Center returns the centre cell, using truncating division
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Top()
}

// ContainsRect returns true if o lies entirely inside r.
// An empty o is contained by any rectangle it sits within.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Top() <= r.Top()
}

// Overlaps returns true if the two rectangles share at least one cell
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Top() && o.Y < r.Top()
}

// ForEachCell calls fn for every cell in column-major order (x outer, y inner)
func (r Rect) ForEachCell(fn func(x, y int)) {
	for x := r.X; x < r.Right(); x++ {
		for y := r.Y; y < r.Top(); y++ {
			fn(x, y)
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
