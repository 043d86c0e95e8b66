// Package ebiten renders a built level in a window, one filled rect per
// cell. It is a viewer, not a game loop: it draws the level until the window
// closes.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"architect/pkg/engine/grid"
	"architect/pkg/game/architect"
	"architect/pkg/game/spawn"
)

const cellSize = 8

var (
	colorVoid  = color.RGBA{0x10, 0x10, 0x14, 0xff}
	colorFloor = color.RGBA{0x58, 0x50, 0x44, 0xff}
	colorWall  = color.RGBA{0x90, 0x8a, 0x80, 0xff}
	colorDoor  = color.RGBA{0xc8, 0xa0, 0x30, 0xff}
	colorTorch = color.RGBA{0xf0, 0xd0, 0x60, 0xff}
	colorLava  = color.RGBA{0xd0, 0x40, 0x20, 0xff}
	colorActor = color.RGBA{0x40, 0xc0, 0x50, 0xff}
)

// Viewer is the windowed renderer backend
type Viewer struct {
	arch *architect.Architect

	walls   map[grid.Point]bool
	doors   map[grid.Point]bool
	torches map[grid.Point]bool
	lava    map[grid.Point]bool
	actors  map[grid.Point]bool
}

// New creates a new windowed viewer
func New() *Viewer {
	return &Viewer{}
}

// Init is a no-op; the window is created when Render runs
func (v *Viewer) Init() {}

func pointSet(pending []spawn.Pending) map[grid.Point]bool {
	set := make(map[grid.Point]bool, len(pending))
	for _, p := range pending {
		set[grid.Point{X: p.X, Y: p.Y}] = true
	}
	return set
}

// Render opens the window and blocks until it is closed
func (v *Viewer) Render(a *architect.Architect) error {
	v.arch = a
	v.walls = pointSet(a.PendingWalls())
	v.doors = pointSet(a.PendingDoors())
	v.torches = pointSet(a.PendingTorches())
	v.lava = pointSet(a.PendingLava())
	v.actors = pointSet(a.PendingActors())

	ebiten.SetWindowSize(a.Width()*cellSize, a.Height()*cellSize)
	ebiten.SetWindowTitle("Architect preview")
	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// Update closes the viewer on Escape or Q
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// Draw paints every cell of the level
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorVoid)
	for y := 0; y < v.arch.Height(); y++ {
		for x := 0; x < v.arch.Width(); x++ {
			c, ok := v.cellColor(x, y)
			if !ok {
				continue
			}
			vector.DrawFilledRect(screen,
				float32(x*cellSize), float32(y*cellSize),
				cellSize, cellSize, c, false)
		}
	}
}

// cellColor resolves a cell to its fill color; void cells are skipped
func (v *Viewer) cellColor(x, y int) (color.Color, bool) {
	p := grid.Point{X: x, Y: y}
	switch {
	case v.actors[p]:
		return colorActor, true
	case v.lava[p]:
		return colorLava, true
	case v.torches[p]:
		return colorTorch, true
	case v.doors[p]:
		return colorDoor, true
	case v.walls[p]:
		return colorWall, true
	case v.arch.TileAt(grid.LayerFloor, x, y) != nil:
		return colorFloor, true
	default:
		return nil, false
	}
}

// Layout keeps a 1:1 mapping from cells to screen pixels
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.arch.Width() * cellSize, v.arch.Height() * cellSize
}
