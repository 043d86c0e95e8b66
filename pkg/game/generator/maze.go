package generator

import (
	"math/rand"

	"architect/pkg/engine/grid"
)

// The maze algorithms operate on a cell lattice laid over the target area:
// passage cells sit at even coordinates (2cx, 2cy) and connections between
// them at the odd coordinate in between. Every algorithm here produces a
// perfect maze over that lattice: all passage cells reachable, no loops.
// Cells outside the lattice stay impassable (rendered as void by the caller).

// latticeSize returns the cell-lattice dimensions for a target area
func latticeSize(width, height int) (cw, ch int) {
	return (width + 1) / 2, (height + 1) / 2
}

// MazeBacktracker carves a perfect maze using an iterative depth-first
// backtracker (the "icey" maze). The stack is explicit to bound stack depth
// on large regions.
func MazeBacktracker(rng *rand.Rand, width, height int) [][]bool {
	passable := newMask(width, height)
	cw, ch := latticeSize(width, height)
	if cw <= 0 || ch <= 0 {
		return passable
	}

	visited := make([][]bool, ch)
	for i := range visited {
		visited[i] = make([]bool, cw)
	}

	start := grid.Point{X: rng.Intn(cw), Y: rng.Intn(ch)}
	visited[start.Y][start.X] = true
	passable[start.Y*2][start.X*2] = true

	stack := []grid.Point{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []grid.Point
		for _, dir := range grid.CardinalDirections() {
			dx, dy := dir.Delta()
			next := grid.Point{X: current.X + dx, Y: current.Y + dy}
			if next.X < 0 || next.X >= cw || next.Y < 0 || next.Y >= ch {
				continue
			}
			if !visited[next.Y][next.X] {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		visited[next.Y][next.X] = true
		// Carve the connection midpoint and the cell itself
		passable[current.Y+next.Y][current.X+next.X] = true
		passable[next.Y*2][next.X*2] = true
		stack = append(stack, next)
	}

	return passable
}

// MazeEller carves a perfect maze row by row with Eller's set-merging
// algorithm. Memory stays proportional to one lattice row.
func MazeEller(rng *rand.Rand, width, height int) [][]bool {
	passable := newMask(width, height)
	cw, ch := latticeSize(width, height)
	if cw <= 0 || ch <= 0 {
		return passable
	}

	sets := make([]int, cw)
	nextSet := 1
	for x := range sets {
		sets[x] = nextSet
		nextSet++
	}

	for y := 0; y < ch; y++ {
		lastRow := y == ch-1
		for x := 0; x < cw; x++ {
			passable[y*2][x*2] = true
		}

		// Horizontal joins: always merge distinct sets on the last row so the
		// maze ends connected; otherwise merge with 50% probability.
		for x := 0; x < cw-1; x++ {
			if sets[x] == sets[x+1] {
				continue
			}
			if lastRow || rng.Intn(2) == 0 {
				passable[y*2][x*2+1] = true
				old, now := sets[x+1], sets[x]
				for i := range sets {
					if sets[i] == old {
						sets[i] = now
					}
				}
			}
		}

		if lastRow {
			break
		}

		// Vertical drops: each set carries at least one connection downward
		next := make([]int, cw)
		dropped := make(map[int]bool)
		for x := 0; x < cw; x++ {
			if rng.Intn(2) == 0 {
				passable[y*2+1][x*2] = true
				next[x] = sets[x]
				dropped[sets[x]] = true
			}
		}
		for x := 0; x < cw; x++ {
			if next[x] != 0 || dropped[sets[x]] {
				continue
			}
			passable[y*2+1][x*2] = true
			next[x] = sets[x]
			dropped[sets[x]] = true
		}
		for x := 0; x < cw; x++ {
			if next[x] == 0 {
				next[x] = nextSet
				nextSet++
			}
		}
		sets = next
	}

	return passable
}

// mazeRegion is a cell-lattice rectangle pending division
type mazeRegion struct {
	x1, y1, x2, y2 int
}

// MazeDivision carves a perfect maze by recursive division: the lattice
// starts fully open and walls with a single gap are added until no region can
// be split further. Division is driven by an explicit work stack.
func MazeDivision(rng *rand.Rand, width, height int) [][]bool {
	passable := newMask(width, height)
	cw, ch := latticeSize(width, height)
	if cw <= 0 || ch <= 0 {
		return passable
	}

	// Open every lattice cell and connection
	for y := 0; y <= (ch-1)*2; y++ {
		for x := 0; x <= (cw-1)*2; x++ {
			passable[y][x] = true
		}
	}

	stack := []mazeRegion{{0, 0, cw - 1, ch - 1}}
	for len(stack) > 0 {
		region := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		regionW := region.x2 - region.x1 + 1
		regionH := region.y2 - region.y1 + 1
		if regionW < 2 && regionH < 2 {
			continue
		}

		splitVertical := regionW > regionH
		if regionW == regionH {
			splitVertical = rng.Intn(2) == 0
		}
		if regionW < 2 {
			splitVertical = false
		}
		if regionH < 2 {
			splitVertical = true
		}

		if splitVertical {
			// Wall between cell columns wallCol and wallCol+1, one gap
			wallCol := region.x1 + rng.Intn(regionW-1)
			gapRow := region.y1 + rng.Intn(regionH)
			wallX := wallCol*2 + 1
			for cy := region.y1; cy <= region.y2; cy++ {
				if cy != gapRow {
					passable[cy*2][wallX] = false
				}
				if cy < region.y2 {
					passable[cy*2+1][wallX] = false
				}
			}
			stack = append(stack,
				mazeRegion{region.x1, region.y1, wallCol, region.y2},
				mazeRegion{wallCol + 1, region.y1, region.x2, region.y2})
		} else {
			wallRow := region.y1 + rng.Intn(regionH-1)
			gapCol := region.x1 + rng.Intn(regionW)
			wallY := wallRow*2 + 1
			for cx := region.x1; cx <= region.x2; cx++ {
				if cx != gapCol {
					passable[wallY][cx*2] = false
				}
				if cx < region.x2 {
					passable[wallY][cx*2+1] = false
				}
			}
			stack = append(stack,
				mazeRegion{region.x1, region.y1, region.x2, wallRow},
				mazeRegion{region.x1, wallRow + 1, region.x2, region.y2})
		}
	}

	return passable
}

// Maze dispatches to the maze variant named by configType, defaulting to the
// backtracker for anything unrecognized.
func Maze(rng *rand.Rand, configType string, width, height int) [][]bool {
	switch configType {
	case TypeEllerMaze:
		return MazeEller(rng, width, height)
	case TypeDividedMaze:
		return MazeDivision(rng, width, height)
	default:
		return MazeBacktracker(rng, width, height)
	}
}
