package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config cannot produce a dungeon
var ErrInvalidConfig = errors.New("invalid generator configuration")

// Default generator tuning
const (
	DefaultMapSize           = 64
	DefaultMaxDepth          = 3
	DefaultMinDivideFraction = 0.4
	DefaultMaxDivideFraction = 0.6
	DefaultMinRoomSize       = 4
	DefaultCorridorThickness = 7
	DefaultSeed              = 42

	DefaultRoomMinFraction = 0.4 // Smallest room, as a fraction of its leaf
	DefaultRoomMaxFraction = 0.5 // Largest room, as a fraction of its leaf
	DefaultSpreadRatio     = 1.8 // Seeded border around a room, relative to room size
	DefaultSeedDensity     = 55  // Percentage of seeded cells that start Soft
)

// Config holds everything needed to reproduce a dungeon
type Config struct {
	MapWidth  int
	MapHeight int

	// MaxPartitionDepth is the number of split levels; the tree has 2^depth leaves
	MaxPartitionDepth int
	// Split offsets are drawn from [MinDivideFraction, MaxDivideFraction] of the longer axis
	MinDivideFraction float64
	MaxDivideFraction float64

	// MinRoomSize raises room width and height up to this value, capped by the leaf
	MinRoomSize int
	// RoomMinFraction and RoomMaxFraction size each room relative to its leaf
	RoomMinFraction float64
	RoomMaxFraction float64
	SpreadRatio     float64
	SeedDensity     int

	// CorridorThickness is the full band width; the centre cell is Solid
	CorridorThickness int

	RandomSeed int64

	RefineMode RefineMode
}

// DefaultConfig returns the reference 64x64 configuration
func DefaultConfig() Config {
	return Config{
		MapWidth:          DefaultMapSize,
		MapHeight:         DefaultMapSize,
		MaxPartitionDepth: DefaultMaxDepth,
		MinDivideFraction: DefaultMinDivideFraction,
		MaxDivideFraction: DefaultMaxDivideFraction,
		MinRoomSize:       DefaultMinRoomSize,
		RoomMinFraction:   DefaultRoomMinFraction,
		RoomMaxFraction:   DefaultRoomMaxFraction,
		SpreadRatio:       DefaultSpreadRatio,
		SeedDensity:       DefaultSeedDensity,
		CorridorThickness: DefaultCorridorThickness,
		RandomSeed:        DefaultSeed,
		RefineMode:        RefineInPlace,
	}
}

// Validate reports the first problem with the configuration, wrapping ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case c.MapWidth <= 0 || c.MapHeight <= 0:
		return fmt.Errorf("%w: map size %dx%d must be positive", ErrInvalidConfig, c.MapWidth, c.MapHeight)
	case c.MaxPartitionDepth < 0:
		return fmt.Errorf("%w: partition depth %d is negative", ErrInvalidConfig, c.MaxPartitionDepth)
	case !openUnit(c.MinDivideFraction) || !openUnit(c.MaxDivideFraction):
		return fmt.Errorf("%w: divide fractions %v..%v must lie in (0,1)", ErrInvalidConfig, c.MinDivideFraction, c.MaxDivideFraction)
	case c.MinDivideFraction > c.MaxDivideFraction:
		return fmt.Errorf("%w: min divide fraction %v exceeds max %v", ErrInvalidConfig, c.MinDivideFraction, c.MaxDivideFraction)
	case c.RoomMinFraction <= 0 || c.RoomMaxFraction > 1 || c.RoomMinFraction > c.RoomMaxFraction:
		return fmt.Errorf("%w: room fractions %v..%v must lie in (0,1] with min <= max", ErrInvalidConfig, c.RoomMinFraction, c.RoomMaxFraction)
	case c.MinRoomSize < 0:
		return fmt.Errorf("%w: min room size %d is negative", ErrInvalidConfig, c.MinRoomSize)
	case c.CorridorThickness < 1:
		return fmt.Errorf("%w: corridor thickness %d must be at least 1", ErrInvalidConfig, c.CorridorThickness)
	case c.SpreadRatio < 1:
		return fmt.Errorf("%w: spread ratio %v must be at least 1", ErrInvalidConfig, c.SpreadRatio)
	case c.SeedDensity < 0 || c.SeedDensity > 100:
		return fmt.Errorf("%w: seed density %d must be a percentage", ErrInvalidConfig, c.SeedDensity)
	case c.RefineMode != RefineInPlace && c.RefineMode != RefineBuffered:
		return fmt.Errorf("%w: unknown refine mode %d", ErrInvalidConfig, c.RefineMode)
	}
	return nil
}

func openUnit(f float64) bool {
	return f > 0 && f < 1
}
