// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// TileState is the classification of a single grid cell.
// The first three states are ordered by solidity: Open < Soft < Solid.
type TileState uint8

const (
	// Open is walkable, unobstructed ground.
	Open TileState = iota
	// Soft is a randomly seeded obstruction that the refiner may reclassify.
	Soft
	// Solid is a room floor, corridor centreline or settled obstruction.
	// Nothing after carving ever changes it.
	Solid
	// Ledge marks Open ground sitting under an obstruction. Only the
	// correction pass produces it, and only from Open.
	Ledge
)

// AllTileStates returns every tile state in declaration order
func AllTileStates() []TileState {
	return []TileState{Open, Soft, Solid, Ledge}
}

// String returns the string representation of a tile state
func (t TileState) String() string {
	switch t {
	case Open:
		return "Open"
	case Soft:
		return "Soft"
	case Solid:
		return "Solid"
	case Ledge:
		return "Ledge"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the state is one of the four known states
func (t TileState) IsValid() bool {
	return t <= Ledge
}

// IsObstruction returns true for Soft and Solid tiles
func (t TileState) IsObstruction() bool {
	return t == Soft || t == Solid
}
