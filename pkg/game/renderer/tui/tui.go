package tui

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"bspdungeon/pkg/engine/input"
	"bspdungeon/pkg/engine/terminal"
	"bspdungeon/pkg/engine/world"
	"bspdungeon/pkg/game/renderer"
)

// Tile icons
const (
	IconOpen        = " "
	IconSoft        = "▒"
	IconSolid       = "█"
	IconLedgeLeft   = "╘"
	IconLedgeCenter = "═"
	IconLedgeRight  = "╛"
	IconSplit       = "·"
)

// Lines needed outside the map: title, size, blank, legend header and up
// to six entries, blank, stats, message, actions, prompt
const ChromeRows = 16

var _ renderer.Renderer = (*TUIRenderer)(nil)

// dynamicGet is used for runtime translation key lookups, keeping go vet
// quiet about non-constant format strings.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorOpen        color.Style
	colorSoft        color.Style
	colorSolid       color.Style
	colorLedge       color.Style
	colorSplit       color.Style
	colorHeading     color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorSubtle      color.Style
	colorDenied      color.Style

	regexpStringFunctions *regexp.Regexp

	// size overrides the terminal size when non-zero
	cols, rows int
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// WithOutput redirects rendering to w
func (t *TUIRenderer) WithOutput(w io.Writer) *TUIRenderer {
	t.out = w
	return t
}

// WithSize fixes the drawing area instead of querying the terminal
func (t *TUIRenderer) WithSize(cols, rows int) *TUIRenderer {
	t.cols, t.rows = cols, rows
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorOpen = color.Style{color.FgDefault}
	t.colorSoft = color.Style{color.FgYellow}
	t.colorSolid = color.Style{color.FgGray, color.OpBold}
	t.colorLedge = color.Style{color.FgGreen}
	t.colorSplit = color.Style{color.FgRed}
	t.colorHeading = color.Style{color.FgBlue, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.out != os.Stdout {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput reads one key from the terminal and maps it to an Intent
func (t *TUIRenderer) GetInput() input.Intent {
	code, err := input.ReadKey()
	if err != nil {
		log.Printf("Cannot read input: %v", err)
		return input.Intent{Action: input.ActionQuit}
	}

	return input.MapToIntent(input.RawInput{
		Device: input.DeviceTerminal,
		Code:   code,
	})
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleOpen:
		return t.colorOpen.Sprint(text)
	case renderer.StyleSoft:
		return t.colorSoft.Sprint(text)
	case renderer.StyleSolid:
		return t.colorSolid.Sprint(text)
	case renderer.StyleLedge:
		return t.colorLedge.Sprint(text)
	case renderer.StyleSplit:
		return t.colorSplit.Sprint(text)
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system:
// GT{KEY} translates, HEADING{..}, SUBTLE{..} and DENIED{..} style, and
// ACTION{key:KEY} shows a key binding followed by its translated name.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "HEADING":
			val = t.colorHeading.Sprint(dynamicGet(operand))
		case "SUBTLE":
			val = t.colorSubtle.Sprint(operand)
		case "DENIED":
			val = t.colorDenied.Sprint(operand)
		case "ACTION":
			key, name, _ := strings.Cut(operand, ":")
			val = t.colorActionShort.Sprint("["+key+"]") + " " + t.colorAction.Sprint(dynamicGet(name))
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// size returns the drawing area in character cells
func (t *TUIRenderer) size() (cols, rows int) {
	if t.cols > 0 && t.rows > 0 {
		return t.cols, t.rows
	}
	return terminal.GetSize()
}

// RenderFrame renders the map with its legend, stats and actions
func (t *TUIRenderer) RenderFrame(v *renderer.View) {
	if v == nil || v.Layout == nil {
		return
	}
	l := v.Layout
	grid := l.Grid

	t.printString("HEADING{TITLE}\n")
	t.printString("SUBTLE{%s}\n\n", fmt.Sprintf(dynamicGet("MAP_SIZE"),
		grid.Width(), grid.Height(), v.Config.MaxPartitionDepth, v.Config.RefineMode))

	cols, rows := t.size()
	step := terminal.FitStep(grid.Width(), grid.Height(), cols, max(1, rows-ChromeRows), 1)
	t.printMap(v, step)

	t.printLegend(grid, v.ShowSplits)

	s := l.Stats
	fmt.Fprintln(t.out, fmt.Sprintf(dynamicGet("STATS"), s.Seed, s.Generation, s.Leaves, s.Rooms, s.Corridors))
	if step > 1 {
		t.printString("SUBTLE{%s}\n", fmt.Sprintf(dynamicGet("SCALED"), step))
	}
	if v.Message != "" {
		fmt.Fprintln(t.out, v.Message)
	}

	t.printActions()
	fmt.Fprint(t.out, "> ")
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// printMap draws every step-th cell, top row first since y grows upwards
func (t *TUIRenderer) printMap(v *renderer.View, step int) {
	grid := v.Layout.Grid

	var splits func(x, y int) bool
	if v.ShowSplits {
		cells := renderer.SplitCells(v.Layout.SplitLines)
		splits = func(x, y int) bool {
			for dx := 0; dx < step; dx++ {
				for dy := 0; dy < step; dy++ {
					if cells.Has(world.Point{X: x + dx, Y: y + dy}) {
						return true
					}
				}
			}
			return false
		}
	}

	var b strings.Builder
	top := (grid.Height() - 1) / step * step
	for y := top; y >= 0; y -= step {
		for x := 0; x < grid.Width(); x += step {
			gl := renderer.GlyphAt(grid, x, y)
			if splits != nil && gl.Tile == world.Open && splits(x, y) {
				b.WriteString(t.StyleText(IconSplit, renderer.StyleSplit))
				continue
			}
			b.WriteString(t.StyleText(icon(gl), gl.Style()))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	fmt.Fprint(t.out, b.String())
}

// printLegend lists the glyphs that actually appear on the map
func (t *TUIRenderer) printLegend(grid *world.Grid, splits bool) {
	t.printString("HEADING{LEGEND}\n")
	for _, gl := range renderer.Legend(grid) {
		fmt.Fprintf(t.out, "  %s  %s\n", t.StyleText(icon(gl), gl.Style()), dynamicGet(gl.Key()))
	}
	if splits {
		fmt.Fprintf(t.out, "  %s  %s\n", t.StyleText(IconSplit, renderer.StyleSplit), dynamicGet("SPLIT_LINE"))
	}
	fmt.Fprintln(t.out)
}

// printActions shows the primary binding of every action
func (t *TUIRenderer) printActions() {
	var parts []string
	for _, a := range input.Actions() {
		if code := input.PrimaryBinding(a); code != "" {
			parts = append(parts, t.FormatText("ACTION{%s:%s}", code, input.ActionName(a)))
		}
	}
	fmt.Fprintln(t.out, strings.Join(parts, "  "))
}

// icon returns the character for a glyph
func icon(gl renderer.Glyph) string {
	switch gl.Tile {
	case world.Soft:
		return IconSoft
	case world.Solid:
		return IconSolid
	case world.Ledge:
		switch gl.Variant {
		case renderer.LedgeLeft:
			return IconLedgeLeft
		case renderer.LedgeRight:
			return IconLedgeRight
		default:
			return IconLedgeCenter
		}
	}
	return IconOpen
}
