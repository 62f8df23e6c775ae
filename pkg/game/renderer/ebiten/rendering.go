package ebiten

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	engineinput "bspdungeon/pkg/engine/input"
	"bspdungeon/pkg/engine/world"
	"bspdungeon/pkg/game/renderer"
)

// mapTransform converts grid coordinates to screen pixels. Grid y grows
// upwards, screen y grows downwards.
type mapTransform struct {
	originX, originY int // top-left pixel of the map
	tileSize         int
	gridHeight       int
}

// fitMap picks the largest tile size that fits a w x h grid into the
// available area and centres the map horizontally.
func fitMap(gridW, gridH, availW, availH int) mapTransform {
	tile := min(availW/max(gridW, 1), availH/max(gridH, 1))
	tile = max(minTileSize, min(tile, maxTileSize))

	return mapTransform{
		originX:    max(0, (availW-gridW*tile)/2),
		originY:    0,
		tileSize:   tile,
		gridHeight: gridH,
	}
}

// cell returns the top-left pixel of grid cell (x, y)
func (m mapTransform) cell(x, y int) (px, py float32) {
	return float32(m.originX + x*m.tileSize), float32(m.originY + (m.gridHeight-1-y)*m.tileSize)
}

// point returns the pixel for a grid corner (x, y), used by partition
// lines which run along cell edges
func (m mapTransform) point(x, y int) (px, py float32) {
	return float32(m.originX + x*m.tileSize), float32(m.originY + (m.gridHeight-y)*m.tileSize)
}

// Draw renders the current view (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	v := e.currentView()
	if v == nil || v.Layout == nil {
		ebitenutil.DebugPrintAt(screen, dynamicGet("TITLE"), mapMargin, mapMargin)
		return
	}
	grid := v.Layout.Grid

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	m := fitMap(grid.Width(), grid.Height(), w-2*mapMargin, h-2*mapMargin-statusHeight)
	m.originX += mapMargin
	m.originY += mapMargin

	e.drawMap(screen, grid, m)
	if v.ShowSplits {
		e.drawSplitLines(screen, v, m)
	}
	e.drawStatus(screen, v, mapMargin, m.originY+grid.Height()*m.tileSize+mapMargin)
}

// drawMap draws every tile and the map outline
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, grid *world.Grid, m mapTransform) {
	size := float32(m.tileSize)
	x0, y0 := m.cell(0, grid.Height()-1)
	vector.DrawFilledRect(screen, x0, y0, size*float32(grid.Width()), size*float32(grid.Height()), colorMapBackground, false)

	grid.ForEachTile(func(x, y int, _ world.TileState) {
		gl := renderer.GlyphAt(grid, x, y)
		px, py := m.cell(x, y)
		drawGlyph(screen, gl, px, py, size)
	})

	vector.StrokeRect(screen, x0, y0, size*float32(grid.Width()), size*float32(grid.Height()), 1, colorOutline, false)
}

// drawGlyph fills one cell. Ledges are drawn as a bar on the lower edge,
// pulled in from the side that meets open ground.
func drawGlyph(screen *ebiten.Image, gl renderer.Glyph, px, py, size float32) {
	switch gl.Tile {
	case world.Open:
		vector.DrawFilledRect(screen, px, py, size, size, colorOpen, false)
	case world.Soft:
		vector.DrawFilledRect(screen, px, py, size, size, colorSoft, false)
	case world.Solid:
		vector.DrawFilledRect(screen, px, py, size, size, colorSolid, false)
	case world.Ledge:
		vector.DrawFilledRect(screen, px, py, size, size, colorOpen, false)
		bar := max(1, size/3)
		inset := size / 4
		switch gl.Variant {
		case renderer.LedgeLeft:
			vector.DrawFilledRect(screen, px+inset, py+size-bar, size-inset, bar, colorLedge, false)
		case renderer.LedgeRight:
			vector.DrawFilledRect(screen, px, py+size-bar, size-inset, bar, colorLedge, false)
		default:
			vector.DrawFilledRect(screen, px, py+size-bar, size, bar, colorLedge, false)
		}
	}
}

// drawSplitLines draws the partition cuts
func (e *EbitenRenderer) drawSplitLines(screen *ebiten.Image, v *renderer.View, m mapTransform) {
	for _, s := range v.Layout.SplitLines {
		x0, y0 := m.point(s.From.X, s.From.Y)
		x1, y1 := m.point(s.To.X, s.To.Y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colorSplit, false)
	}
}

// drawStatus prints stats, the last message and the key bindings
func (e *EbitenRenderer) drawStatus(screen *ebiten.Image, v *renderer.View, x, y int) {
	s := v.Layout.Stats
	lines := []string{
		fmt.Sprintf(dynamicGet("STATS"), s.Seed, s.Generation, s.Leaves, s.Rooms, s.Corridors),
		fmt.Sprintf(dynamicGet("MAP_SIZE"), v.Layout.Grid.Width(), v.Layout.Grid.Height(), v.Config.MaxPartitionDepth, v.Config.RefineMode),
		actionsLine(),
	}

	e.messageMutex.RLock()
	if e.message != "" {
		lines = append(lines, e.message)
	}
	e.messageMutex.RUnlock()

	for i, line := range lines {
		drawText(screen, line, x, y+i*14, colorText)
	}
}

// actionsLine lists each action with its primary binding
func actionsLine() string {
	var parts []string
	for _, a := range engineinput.Actions() {
		if code := engineinput.PrimaryBinding(a); code != "" {
			parts = append(parts, fmt.Sprintf("[%s] %s", code, dynamicGet(engineinput.ActionName(a))))
		}
	}
	return strings.Join(parts, "  ")
}

// drawText prints debug text; the debug font has a fixed colour so clr
// only tints a backing strip.
func drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x-2), float32(y), 2, 14, clr, false)
	ebitenutil.DebugPrintAt(screen, s, x+2, y)
}
