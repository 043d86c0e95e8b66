// Package tui renders a built level as colored glyphs in the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"architect/pkg/engine/grid"
	"architect/pkg/engine/terminal"
	"architect/pkg/game/architect"
	"architect/pkg/game/spawn"
)

// Glyphs for the preview map
const (
	IconVoid  = " "
	IconFloor = "·"
	IconWall  = "▒"
	IconDoor  = "□"
	IconTorch = "¤"
	IconLava  = "≈"
	IconActor = "@"
)

// Lines of text around the map: title, summary, legend, prompt spacing
const reservedRows = 6

// TUIRenderer prints levels to the terminal
type TUIRenderer struct {
	colorFloor  color.Style
	colorWall   color.Style
	colorDoor   color.Style
	colorTorch  color.Style
	colorLava   color.Style
	colorActor  color.Style
	colorSubtle color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the color styles
func (t *TUIRenderer) Init() {
	t.colorFloor = color.Style{color.FgGray}
	t.colorWall = color.Style{color.FgGray, color.OpBold}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorTorch = color.Style{color.FgYellow}
	t.colorLava = color.Style{color.FgRed, color.OpBold}
	t.colorActor = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// overlay marks the cells holding queued structural entities
type overlay struct {
	walls   map[grid.Point]bool
	doors   map[grid.Point]bool
	torches map[grid.Point]bool
	lava    map[grid.Point]bool
	actors  map[grid.Point]bool
}

func pointSet(pending []spawn.Pending) map[grid.Point]bool {
	set := make(map[grid.Point]bool, len(pending))
	for _, p := range pending {
		set[grid.Point{X: p.X, Y: p.Y}] = true
	}
	return set
}

// Render prints the level map with its pending entities overlaid, clamped to
// the terminal size
func (t *TUIRenderer) Render(a *architect.Architect) error {
	view := overlay{
		walls:   pointSet(a.PendingWalls()),
		doors:   pointSet(a.PendingDoors()),
		torches: pointSet(a.PendingTorches()),
		lava:    pointSet(a.PendingLava()),
		actors:  pointSet(a.PendingActors()),
	}

	viewWidth, viewHeight := terminal.Fit(a.Width(), a.Height(), reservedRows)

	fmt.Printf(gotext.Get("Level preview %dx%d (depth %d)")+"\n\n", a.Width(), a.Height(), a.Depth())

	var line strings.Builder
	for y := 0; y < viewHeight; y++ {
		line.Reset()
		for x := 0; x < viewWidth; x++ {
			line.WriteString(t.renderCell(a, view, x, y))
		}
		fmt.Println(line.String())
	}

	if viewWidth < a.Width() || viewHeight < a.Height() {
		fmt.Println(t.colorSubtle.Sprint(gotext.Get("(map truncated to terminal size)")))
	}

	fmt.Printf("\n"+gotext.Get("%d walkable, %d walls, %d doors, %d torches, %d lava, %d actors pending")+"\n",
		len(a.WalkableTiles()), len(a.PendingWalls()), len(a.PendingDoors()),
		len(a.PendingTorches()), len(a.PendingLava()), len(a.PendingActors()))
	return nil
}

// renderCell picks the glyph for one cell. Queued entities draw over the
// floor under them.
func (t *TUIRenderer) renderCell(a *architect.Architect, view overlay, x, y int) string {
	p := grid.Point{X: x, Y: y}
	switch {
	case view.actors[p]:
		return t.colorActor.Sprint(IconActor)
	case view.lava[p]:
		return t.colorLava.Sprint(IconLava)
	case view.torches[p]:
		return t.colorTorch.Sprint(IconTorch)
	case view.doors[p]:
		return t.colorDoor.Sprint(IconDoor)
	case view.walls[p]:
		return t.colorWall.Sprint(IconWall)
	case a.TileAt(grid.LayerFloor, x, y) != nil:
		return t.colorFloor.Sprint(IconFloor)
	default:
		return IconVoid
	}
}
