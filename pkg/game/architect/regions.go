package architect

import (
	"github.com/zyedidia/generic/mapset"

	"architect/pkg/engine/grid"
	"architect/pkg/game/generator"
)

// Region is the bounding box of one 4-connected component of same-type
// wildcard markers. It is a box, not a mask: adjacent differently-typed
// components can share box corners, so generators re-check each cell's type
// before writing into it.
type Region struct {
	Type   string
	X      int
	Y      int
	Width  int
	Height int
}

// FindWildcardRegions scans the wildcard cells row-major and flood-fills each
// unprocessed typed marker into its component. The fill is stack-based, not
// recursive, and a shared processed set keeps the whole scan linear in the
// cell count.
func (a *Architect) FindWildcardRegions() []Region {
	processed := mapset.New[grid.Point]()
	var regions []Region

	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			cell := a.wildcards[y][x]
			if cell.Type == "" || cell.Consumed || processed.Has(grid.Point{X: x, Y: y}) {
				continue
			}
			regions = append(regions, a.fillRegion(x, y, cell.Type, processed))
		}
	}
	return regions
}

// fillRegion grows the component containing (startX, startY) and returns its
// bounding box
func (a *Architect) fillRegion(startX, startY int, regionType string, processed mapset.Set[grid.Point]) Region {
	minX, minY := startX, startY
	maxX, maxY := startX, startY

	stack := []grid.Point{{X: startX, Y: startY}}
	processed.Put(stack[0])

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}

		for _, dir := range grid.CardinalDirections() {
			dx, dy := dir.Delta()
			n := grid.Point{X: p.X + dx, Y: p.Y + dy}
			if n.X < 0 || n.X >= a.width || n.Y < 0 || n.Y >= a.height {
				continue
			}
			if processed.Has(n) {
				continue
			}
			neighbor := a.wildcards[n.Y][n.X]
			if neighbor.Consumed || neighbor.Type != regionType {
				continue
			}
			processed.Put(n)
			stack = append(stack, n)
		}
	}

	return Region{
		Type:   regionType,
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}
}

// partitionRegions orders regions for generation: mazes first, then rooms,
// then everything else. Rooms probe adjacent maze floor to place doorways, so
// mazes must be on the ground before any room generates.
func partitionRegions(regions []Region) []Region {
	ordered := make([]Region, 0, len(regions))
	for _, r := range regions {
		if r.Type == generator.ClassMaze {
			ordered = append(ordered, r)
		}
	}
	for _, r := range regions {
		if r.Type == generator.ClassRoom {
			ordered = append(ordered, r)
		}
	}
	for _, r := range regions {
		if r.Type != generator.ClassMaze && r.Type != generator.ClassRoom {
			ordered = append(ordered, r)
		}
	}
	return ordered
}
