package main

import (
	"flag"
	"fmt"
	"os"

	"architect/pkg/engine/tilemap"
	"architect/pkg/game/architect"
	"architect/pkg/game/generator"
	"architect/pkg/game/renderer"
	ebitenrenderer "architect/pkg/game/renderer/ebiten"
	"architect/pkg/game/renderer/tui"
	"architect/pkg/game/spawn"
)

func main() {
	seed := flag.Int64("seed", 0, "generation seed, 0 for random")
	depth := flag.Int("depth", 1, "level depth for room-type selection")
	genType := flag.String("type", generator.TypeDigger, "generator type (digger, cellular, uniform, rogue, divided_maze, icey_maze, eller_maze, arena, infernal)")
	width := flag.Int("width", 80, "map width")
	height := flag.Int("height", 50, "map height")
	mapPath := flag.String("map", "", "authored map JSON to load instead of generating")
	backend := flag.String("renderer", "tui", "renderer backend (tui, ebiten)")
	flag.Parse()

	logMessage := func(msg string) {
		fmt.Fprintln(os.Stderr, msg)
	}

	a := architect.New(*width, *height, *depth, logMessage)
	if *seed != 0 {
		a.SetSeed(*seed)
	}

	ctx := spawn.NewStubContext()
	ctx.Config = &generator.Config{
		Type: *genType,
		Options: generator.Options{
			MapWidth:  *width,
			MapHeight: *height,
		},
	}

	if *mapPath != "" {
		data, err := os.ReadFile(*mapPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read map: %v\n", err)
			os.Exit(1)
		}
		doc, err := tilemap.Parse(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse map: %v\n", err)
			os.Exit(1)
		}
		if err := a.LoadAuthoredMap(doc, ctx); err != nil {
			fmt.Fprintf(os.Stderr, "load map: %v\n", err)
			os.Exit(1)
		}
		if err := a.GenerateLevel(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "generate: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := a.GenerateFromConfig(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "generate: %v\n", err)
			os.Exit(1)
		}
	}

	switch *backend {
	case "ebiten":
		renderer.SetRenderer(ebitenrenderer.New())
	default:
		renderer.SetRenderer(tui.New())
	}

	if err := renderer.Render(a); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}
