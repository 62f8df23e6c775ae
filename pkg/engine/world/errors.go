package world

import "errors"

// ErrOutOfBounds is returned when a coordinate lies outside the grid
var ErrOutOfBounds = errors.New("coordinate out of bounds")
