package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"bspdungeon/pkg/engine/input"
	"bspdungeon/pkg/engine/random"
	"bspdungeon/pkg/engine/terminal"
	"bspdungeon/pkg/game/devtools"
	"bspdungeon/pkg/game/gameplay"
	"bspdungeon/pkg/game/generator"
	"bspdungeon/pkg/game/locale"
	ebitenrenderer "bspdungeon/pkg/game/renderer/ebiten"
	"bspdungeon/pkg/game/renderer/tui"
	"bspdungeon/pkg/game/state"
)

func main() {
	def := generator.DefaultConfig()

	seed := flag.Int64("seed", def.RandomSeed, "random seed (0 picks one from the clock)")
	width := flag.Int("width", def.MapWidth, "map width in cells")
	height := flag.Int("height", def.MapHeight, "map height in cells")
	depth := flag.Int("depth", def.MaxPartitionDepth, "maximum partition depth")
	minDivide := flag.Float64("min-divide", def.MinDivideFraction, "smallest split position as a fraction of the node")
	maxDivide := flag.Float64("max-divide", def.MaxDivideFraction, "largest split position as a fraction of the node")
	minRoom := flag.Int("min-room", def.MinRoomSize, "minimum room width and height")
	corridor := flag.Int("corridor", def.CorridorThickness, "corridor thickness in cells")
	refine := flag.String("refine", def.RefineMode.String(), "refinement mode: inplace or buffered")
	rendererName := flag.String("renderer", "tui", "renderer: tui, ebiten or text")
	dumpPath := flag.String("dump", "", "write a debug dump of the first layout to this file and exit")
	outDir := flag.String("out", "", "directory for map dumps and screenshots")
	devMap := flag.Bool("devmap", false, "show a fixed map containing every tile instead of generating one")
	verbose := flag.Bool("verbose", false, "log a summary line for every generation")
	flag.Func("bind", "rebind an action to a single key, e.g. reset=n (repeatable)", input.ApplyBinding)
	flag.Parse()

	locale.Init()

	mode, ok := generator.ParseRefineMode(*refine)
	if !ok {
		log.Fatalf("Unknown refinement mode %q", *refine)
	}

	cfg := def
	cfg.RandomSeed = *seed
	if cfg.RandomSeed == 0 {
		cfg.RandomSeed = random.NewSeed()
	}
	cfg.MapWidth = *width
	cfg.MapHeight = *height
	cfg.MaxPartitionDepth = *depth
	cfg.MinDivideFraction = *minDivide
	cfg.MaxDivideFraction = *maxDivide
	cfg.MinRoomSize = *minRoom
	cfg.CorridorThickness = *corridor
	cfg.RefineMode = mode

	gen, err := generator.New(cfg)
	if err != nil {
		log.Fatalf("Cannot create generator: %v", err)
	}
	if *verbose {
		gen.WithLogger(log.Default())
	}

	s := state.NewSession(gen)
	s.OutputDir = *outDir
	if *devMap {
		s.Layout = devtools.DevLayout()
	} else if err := gameplay.StartLayout(s); err != nil {
		log.Fatalf("Cannot generate dungeon: %v", err)
	}

	if *dumpPath != "" {
		path, err := devtools.DumpLayout(s.Layout, cfg, *dumpPath)
		if err != nil {
			log.Fatalf("Cannot write map dump: %v", err)
		}
		fmt.Println(path)
		return
	}

	switch *rendererName {
	case "text":
		if err := devtools.WriteLayout(os.Stdout, s.Layout, cfg); err != nil {
			log.Fatalf("Cannot write map: %v", err)
		}
	case "tui":
		r := tui.New()
		r.Init()
		if !terminal.IsInteractive() {
			// Nothing to read keys from; draw once
			r.RenderFrame(s.View())
			fmt.Println()
			return
		}
		if err := gameplay.Run(s, r); err != nil {
			log.Fatalf("Viewer stopped: %v", err)
		}
	case "ebiten":
		runWindow(s)
	default:
		log.Fatalf("Unknown renderer %q", *rendererName)
	}
}

// runWindow runs the viewer loop alongside Ebiten, which must own the main
// goroutine.
func runWindow(s *state.Session) {
	r := ebitenrenderer.New()
	r.Init()

	done := make(chan error, 1)
	go func() {
		err := gameplay.Run(s, r)
		r.Quit()
		done <- err
	}()

	if err := r.Run(); err != nil {
		log.Fatalf("Window error: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			log.Fatalf("Viewer stopped: %v", err)
		}
	default:
	}
}
