// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bspdungeon/pkg/engine/world"
	"bspdungeon/pkg/game/generator"
	"bspdungeon/pkg/game/renderer"
)

const mapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a tile
func tileSymbol(t world.TileState) rune {
	switch t {
	case world.Soft:
		return 's'
	case world.Solid:
		return '#'
	case world.Ledge:
		return '_'
	default:
		return '.'
	}
}

// writeMapGrid writes the grid top row first. When splits is set, open
// cells on a partition line are shown as '+'.
func writeMapGrid(w io.Writer, l *generator.Layout, splits bool) {
	grid := l.Grid
	var onSplit func(x, y int) bool
	if splits {
		cells := renderer.SplitCells(l.SplitLines)
		onSplit = func(x, y int) bool { return cells.Has(world.Point{X: x, Y: y}) }
	}

	for y := grid.Height() - 1; y >= 0; y-- {
		for x := 0; x < grid.Width(); x++ {
			t := grid.Tile(x, y)
			if onSplit != nil && t == world.Open && onSplit(x, y) {
				fmt.Fprint(w, "+")
				continue
			}
			fmt.Fprintf(w, "%c", tileSymbol(t))
		}
		fmt.Fprintln(w)
	}
}

// WriteLayout writes a full debug dump of l: metadata, legend, the map with
// and without partition lines, and the leaf, room and split lists.
func WriteLayout(w io.Writer, l *generator.Layout, cfg generator.Config) error {
	if l == nil || l.Grid == nil {
		return fmt.Errorf("no layout")
	}

	bw := bufio.NewWriter(w)
	grid := l.Grid

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (bsp partition, rooms, corridors) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "seed: %d\n", l.Stats.Seed)
	fmt.Fprintf(bw, "generation: %d\n", l.Stats.Generation)
	fmt.Fprintf(bw, "width: %d\n", grid.Width())
	fmt.Fprintf(bw, "height: %d\n", grid.Height())
	fmt.Fprintln(bw, "coordinate_system: x,y (0-based, x=right, y=up; top map row is y=height-1)")
	fmt.Fprintf(bw, "max_partition_depth: %d\n", cfg.MaxPartitionDepth)
	fmt.Fprintf(bw, "divide_fraction: %.2f-%.2f\n", cfg.MinDivideFraction, cfg.MaxDivideFraction)
	fmt.Fprintf(bw, "min_room_size: %d\n", cfg.MinRoomSize)
	fmt.Fprintf(bw, "corridor_thickness: %d\n", cfg.CorridorThickness)
	fmt.Fprintf(bw, "refine_mode: %s\n", cfg.RefineMode)
	fmt.Fprintf(bw, "leaves: %d\n", l.Stats.Leaves)
	fmt.Fprintf(bw, "rooms: %d\n", l.Stats.Rooms)
	fmt.Fprintf(bw, "corridors: %d\n", l.Stats.Corridors)
	for _, t := range world.AllTileStates() {
		fmt.Fprintf(bw, "count_%s: %d\n", t, grid.Count(t))
	}
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (cell symbols) ---")
	fmt.Fprintln(bw, ". = open  s = soft wall  # = solid wall  _ = ledge  + = partition line (split map only)")
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map ---")
	writeMapGrid(bw, l, false)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map (with partition lines) ---")
	writeMapGrid(bw, l, true)
	fmt.Fprintln(bw, "")

	// --- Partition ---
	fmt.Fprintln(bw, "--- Leaves and rooms (pre-order) ---")
	for i, leaf := range l.Leaves {
		room := "none"
		if i < len(l.Rooms) && !l.Rooms[i].Empty() {
			room = l.Rooms[i].String()
		}
		fmt.Fprintf(bw, "  leaf %d: %s room: %s\n", i, leaf, room)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Split lines ---")
	for i, s := range l.SplitLines {
		fmt.Fprintf(bw, "  split %d: %d,%d -> %d,%d\n", i, s.From.X, s.From.Y, s.To.X, s.To.Y)
	}

	return bw.Flush()
}

// DumpLayout writes WriteLayout's output to path, or map.txt in the working
// directory when path is empty, and returns the absolute path written.
func DumpLayout(l *generator.Layout, cfg generator.Config, path string) (string, error) {
	if l == nil || l.Grid == nil {
		return "", fmt.Errorf("no layout")
	}
	if path == "" {
		path = mapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteLayout(f, l, cfg); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
