package generator

import (
	"math/rand"
	"testing"

	"architect/pkg/engine/grid"
)

func assertShapeBounds(t *testing.T, name string, points []grid.Point, width, height int) {
	t.Helper()
	if len(points) == 0 {
		t.Fatalf("%s %dx%d produced no floor", name, width, height)
	}
	seen := make(map[grid.Point]bool)
	for _, p := range points {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			t.Fatalf("%s point (%d,%d) outside %dx%d", name, p.X, p.Y, width, height)
		}
		if seen[p] {
			t.Fatalf("%s reports (%d,%d) twice", name, p.X, p.Y)
		}
		seen[p] = true
	}
}

func TestShapes_BoundsAndUniqueness(t *testing.T) {
	shapes := map[string]ShapeFunc{
		"rectangle": ShapeRectangle,
		"cross":     ShapeCross,
		"circle":    ShapeCircle,
		"chunky":    ShapeChunky,
	}
	for name, shape := range shapes {
		for _, size := range [][2]int{{3, 3}, {7, 7}, {9, 5}, {12, 12}} {
			rng := rand.New(rand.NewSource(21))
			assertShapeBounds(t, name, shape(rng, size[0], size[1]), size[0], size[1])
		}
	}
}

func TestShapeRectangle_LeavesPerimeter(t *testing.T) {
	points := ShapeRectangle(nil, 6, 5)
	for _, p := range points {
		if p.X == 0 || p.X == 5 || p.Y == 0 || p.Y == 4 {
			t.Fatalf("rectangle opened perimeter cell (%d,%d)", p.X, p.Y)
		}
	}
	if len(points) != 4*3 {
		t.Errorf("6x5 rectangle opened %d cells, want 12", len(points))
	}
}

func TestShapeRectangle_DegenerateOpensAll(t *testing.T) {
	points := ShapeRectangle(nil, 1, 1)
	if len(points) != 1 || points[0] != (grid.Point{X: 0, Y: 0}) {
		t.Errorf("1x1 rectangle: %v", points)
	}
}

func TestShapeCross_CenterOpen(t *testing.T) {
	points := ShapeCross(nil, 7, 7)
	center := grid.Point{X: 3, Y: 3}
	found := false
	for _, p := range points {
		if p == center {
			found = true
		}
	}
	if !found {
		t.Error("cross does not open its center")
	}
}

func TestShapeCircle_CornersClosed(t *testing.T) {
	points := ShapeCircle(nil, 9, 9)
	for _, p := range points {
		switch p {
		case grid.Point{X: 0, Y: 0}, grid.Point{X: 8, Y: 0},
			grid.Point{X: 0, Y: 8}, grid.Point{X: 8, Y: 8}:
			t.Fatalf("circle opened corner (%d,%d)", p.X, p.Y)
		}
	}
}
