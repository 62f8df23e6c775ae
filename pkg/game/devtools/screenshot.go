package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	"bspdungeon/pkg/engine/world"
	"bspdungeon/pkg/game/generator"
	"bspdungeon/pkg/game/renderer"
)

// glyphClasses maps each glyph to its CSS class
var glyphClasses = map[renderer.Glyph]string{
	{Tile: world.Open}:                                   "open",
	{Tile: world.Soft}:                                   "soft",
	{Tile: world.Solid}:                                  "solid",
	{Tile: world.Ledge, Variant: renderer.LedgeCenter}: "ledge",
	{Tile: world.Ledge, Variant: renderer.LedgeLeft}:   "ledge left",
	{Tile: world.Ledge, Variant: renderer.LedgeRight}:  "ledge right",
}

// RenderHTML returns a standalone HTML page showing the layout, one span
// per cell, with a legend of the glyphs present.
func RenderHTML(l *generator.Layout) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>`)
	b.WriteString(html.EscapeString(gotext.Get("TITLE")))
	b.WriteString(`</title>
    <style>
        body { background-color: #1a1a2e; color: #eee; font-family: 'Courier New', monospace; padding: 20px; }
        .stats { color: #bb86fc; margin-bottom: 10px; }
        .map { line-height: 0; display: inline-block; background-color: #0f0f1a; padding: 8px; }
        .row { display: flex; }
        .cell { width: 8px; height: 8px; display: inline-block; }
        .open { background-color: #28283c; }
        .soft { background-color: #967846; }
        .solid { background-color: #b4b4c8; }
        .ledge { background-color: #28283c; border-bottom: 3px solid #5ac86e; box-sizing: border-box; }
        .ledge.left { margin-left: 2px; width: 6px; }
        .ledge.right { margin-right: 2px; width: 6px; }
        .legend { margin-top: 16px; }
        .legend .cell { margin-right: 8px; vertical-align: middle; }
    </style>
</head>
<body>
`)

	s := l.Stats
	fmt.Fprintf(&b, "<div class=\"stats\">%s</div>\n",
		html.EscapeString(gotext.Get("STATS", s.Seed, s.Generation, s.Leaves, s.Rooms, s.Corridors)))

	b.WriteString("<div class=\"map\">\n")
	grid := l.Grid
	for y := grid.Height() - 1; y >= 0; y-- {
		b.WriteString("<div class=\"row\">")
		for x := 0; x < grid.Width(); x++ {
			fmt.Fprintf(&b, "<span class=\"cell %s\"></span>", glyphClasses[renderer.GlyphAt(grid, x, y)])
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")

	b.WriteString("<div class=\"legend\">\n")
	for _, gl := range renderer.Legend(grid) {
		fmt.Fprintf(&b, "<div><span class=\"cell %s\"></span>%s</div>\n",
			glyphClasses[gl], html.EscapeString(gotext.Get(gl.Key())))
	}
	b.WriteString("</div>\n</body>\n</html>\n")

	return b.String()
}

// SaveScreenshotHTML saves the layout as a timestamped HTML file in dir
// (the working directory when empty) and returns the file path.
func SaveScreenshotHTML(l *generator.Layout, dir string) (string, error) {
	if l == nil || l.Grid == nil {
		return "", fmt.Errorf("no layout")
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	if err := os.WriteFile(filename, []byte(RenderHTML(l)), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
