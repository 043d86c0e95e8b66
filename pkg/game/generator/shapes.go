package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"architect/pkg/engine/grid"
)

// Room shape functions return the floor cells of a room as region-local
// points. The caller walls in whatever borders the returned set, so shapes
// only decide which cells are open.
type ShapeFunc func(rng *rand.Rand, width, height int) []grid.Point

// ShapeRectangle opens the interior of the box, leaving the perimeter for
// walls and doorways. Degenerate boxes (under 3 cells a side) open fully.
func ShapeRectangle(rng *rand.Rand, width, height int) []grid.Point {
	x1, y1, x2, y2 := 1, 1, width-2, height-2
	if width < 3 {
		x1, x2 = 0, width-1
	}
	if height < 3 {
		y1, y2 = 0, height-1
	}

	var points []grid.Point
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			points = append(points, grid.Point{X: x, Y: y})
		}
	}
	return points
}

// ShapeCross opens two centered bars, each spanning the region with a
// thickness of roughly 40% of the crossing dimension, unioned via a seen-set
// so the overlap is not reported twice.
func ShapeCross(rng *rand.Rand, width, height int) []grid.Point {
	barW := width * 2 / 5
	if barW < 1 {
		barW = 1
	}
	barH := height * 2 / 5
	if barH < 1 {
		barH = 1
	}
	barX := (width - barW) / 2
	barY := (height - barH) / 2

	seen := mapset.New[grid.Point]()
	var points []grid.Point
	add := func(x, y int) {
		p := grid.Point{X: x, Y: y}
		if seen.Has(p) {
			return
		}
		seen.Put(p)
		points = append(points, p)
	}

	// Vertical bar: full height, barW wide
	for y := 0; y < height; y++ {
		for x := barX; x < barX+barW; x++ {
			add(x, y)
		}
	}
	// Horizontal bar: full width, barH tall
	for y := barY; y < barY+barH; y++ {
		for x := 0; x < width; x++ {
			add(x, y)
		}
	}
	return points
}

// ShapeCircle opens the cells inside the ellipse fitted to the region:
// ((x-cx)/rx)^2 + ((y-cy)/ry)^2 <= 1
func ShapeCircle(rng *rand.Rand, width, height int) []grid.Point {
	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	rx := float64(width) / 2
	ry := float64(height) / 2

	var points []grid.Point
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			if dx*dx+dy*dy <= 1 {
				points = append(points, grid.Point{X: x, Y: y})
			}
		}
	}
	return points
}

// ShapeChunky opens 3-5 overlapping circular blobs biased toward the region
// center, unioned via a seen-set.
func ShapeChunky(rng *rand.Rand, width, height int) []grid.Point {
	seen := mapset.New[grid.Point]()
	var points []grid.Point

	blobs := 3 + rng.Intn(3)
	maxRadius := min(width, height) / 3
	if maxRadius < 1 {
		maxRadius = 1
	}

	for i := 0; i < blobs; i++ {
		radius := 1 + rng.Intn(maxRadius)
		// Center-biased placement: average two uniform rolls
		bx := (rng.Intn(width) + width/2) / 2
		by := (rng.Intn(height) + height/2) / 2

		r := float64(radius)
		for y := by - radius; y <= by+radius; y++ {
			for x := bx - radius; x <= bx+radius; x++ {
				if x < 0 || x >= width || y < 0 || y >= height {
					continue
				}
				dx := float64(x - bx)
				dy := float64(y - by)
				if dx*dx+dy*dy > r*r {
					continue
				}
				p := grid.Point{X: x, Y: y}
				if seen.Has(p) {
					continue
				}
				seen.Put(p)
				points = append(points, p)
			}
		}
	}
	return points
}
