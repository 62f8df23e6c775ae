// Package random provides the injectable random source used by generators.
package random

import (
	"math/rand"
	"time"
)

// Source is the random stream a generator consumes. *rand.Rand satisfies it.
// Generators draw from it strictly sequentially, so replaying the same
// seed in the same call order reproduces a layout exactly.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// New creates a seeded source
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed returns a seed derived from the current time
func NewSeed() int64 {
	return time.Now().UnixNano()
}

// Range returns a float in [min, max]. It always takes exactly one draw.
func Range(src Source, min, max float64) float64 {
	return min + (max-min)*src.Float64()
}

// RangeInt returns an int in [min, max)
func RangeInt(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min)
}

// Chance returns true with the given percentage (0-100). It succeeds on
// the top percent of a 0-99 draw, so Chance(src, 55) is draw >= 45.
func Chance(src Source, percent int) bool {
	return RangeInt(src, 0, 100) >= 100-percent
}
