package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether both stdin and stdout are terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// FitStep returns the smallest sampling step that fits a map of size
// mapW x mapH into cols x rows character cells, where each map column takes
// cellWidth characters. A step of 1 draws every cell.
func FitStep(mapW, mapH, cols, rows, cellWidth int) int {
	if cellWidth < 1 {
		cellWidth = 1
	}
	step := 1
	for step < mapW || step < mapH {
		w := (mapW + step - 1) / step * cellWidth
		h := (mapH + step - 1) / step
		if w <= cols && h <= rows {
			break
		}
		step++
	}
	return step
}
