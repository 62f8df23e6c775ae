package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"bspdungeon/pkg/engine/world"
	"bspdungeon/pkg/game/generator"
	"bspdungeon/pkg/game/locale"
	"bspdungeon/pkg/game/partition"
	"bspdungeon/pkg/game/renderer"
)

func newTestRenderer(cols, rows int) (*TUIRenderer, *bytes.Buffer) {
	locale.Init()
	var buf bytes.Buffer
	r := New().WithOutput(&buf).WithSize(cols, rows)
	r.Init()
	return r, &buf
}

func smallView() *renderer.View {
	g := world.NewGrid(3, 2)
	g.SetTile(0, 1, world.Solid)
	g.SetTile(1, 1, world.Soft)
	g.SetTile(0, 0, world.Ledge)

	return &renderer.View{
		Layout: &generator.Layout{
			Grid:  g,
			Stats: generator.Stats{Seed: 7, Generation: 2, Leaves: 1, Rooms: 1},
		},
		Config: generator.DefaultConfig(),
	}
}

func TestRenderFrame_MapAndLegend(t *testing.T) {
	r, buf := newTestRenderer(80, 40)

	r.RenderFrame(smallView())
	out := color.ClearCode(buf.String())

	for _, want := range []string{
		IconSolid + IconSoft + IconOpen + "\n" + IconLedgeRight + IconOpen + IconOpen + "\n",
		"Solid wall",
		"Soft wall",
		"Ledge (right end)",
		"Seed 7, generation 2: 1 leaves, 1 rooms, 0 corridors",
		"[r] Reset",
		"[q] Quit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "Ledge (left end)") {
		t.Error("legend lists a glyph that is not on the map")
	}
	if strings.Contains(out, "Showing every") {
		t.Error("small map was scaled")
	}
}

func TestRenderFrame_SplitLines(t *testing.T) {
	r, buf := newTestRenderer(80, 40)

	v := smallView()
	v.ShowSplits = true
	v.Layout.SplitLines = []partition.Segment{
		{From: world.Point{X: 2, Y: 0}, To: world.Point{X: 2, Y: 2}},
	}
	r.RenderFrame(v)
	out := color.ClearCode(buf.String())

	// The split only shows on open cells
	want := IconSolid + IconSoft + IconSplit + "\n" + IconLedgeRight + IconOpen + IconSplit + "\n"
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q\n%s", want, out)
	}
	if !strings.Contains(out, "Partition line") {
		t.Error("legend missing split line entry")
	}
}

func TestRenderFrame_ScalesToFit(t *testing.T) {
	r, buf := newTestRenderer(4, ChromeRows+2)

	v := smallView()
	v.Layout.Grid = world.NewGrid(8, 8)
	r.RenderFrame(v)
	out := color.ClearCode(buf.String())

	if !strings.Contains(out, "Showing every 4 cells") {
		t.Errorf("expected scaling notice\n%s", out)
	}
}

func TestRenderFrame_NilLayout(t *testing.T) {
	r, buf := newTestRenderer(80, 40)

	r.RenderFrame(&renderer.View{})
	if buf.Len() != 0 {
		t.Errorf("wrote %q for an empty view", buf.String())
	}
}

func TestFormatText(t *testing.T) {
	r, _ := newTestRenderer(80, 40)

	tests := []struct {
		msg  string
		want string
	}{
		{"GT{TILE_SOFT}", "Soft wall"},
		{"ACTION{d:ACTION_DUMP}", "[d] Dump map"},
		{"plain", "plain"},
		{"FOO{bar}", "ERROR, function not found: FOO -> bar"},
	}
	for _, tt := range tests {
		if got := color.ClearCode(r.FormatText(tt.msg)); got != tt.want {
			t.Errorf("FormatText(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}
