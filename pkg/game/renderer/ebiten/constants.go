package ebiten

import "image/color"

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}
	colorMapBackground = color.RGBA{15, 15, 26, 255}
	colorOpen          = color.RGBA{40, 40, 60, 255}
	colorSoft          = color.RGBA{150, 120, 70, 255}
	colorSolid         = color.RGBA{180, 180, 200, 255}
	colorLedge         = color.RGBA{90, 200, 110, 255}
	colorOutline       = color.RGBA{100, 150, 255, 255}
	colorSplit         = color.RGBA{255, 100, 100, 200}
	colorText          = color.RGBA{200, 210, 245, 255}
)

// Tile size constraints
const (
	minTileSize = 2
	maxTileSize = 32
)

const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 768

	// Space kept free under the map for the status text
	statusHeight = 64
	mapMargin    = 8
)
