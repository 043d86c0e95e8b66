package generator

import (
	"math/rand"

	"architect/pkg/engine/grid"
)

// Cellular grows a cave with a cellular automaton: cells are seeded alive
// (floor) at opts.Probability, then evolved opts.Iterations steps under the
// born/survive 8-neighbor rules. When opts.Connected is set, isolated floor
// pockets are merged into the main component afterwards.
func Cellular(rng *rand.Rand, width, height int, opts Options) [][]bool {
	alive := newMask(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alive[y][x] = rng.Float64() < opts.Probability
		}
	}

	born := ruleSet(opts.Born)
	survive := ruleSet(opts.Survive)

	for i := 0; i < opts.Iterations; i++ {
		next := newMask(width, height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				neighbors := countAlive(alive, x, y)
				if alive[y][x] {
					next[y][x] = survive[neighbors]
				} else {
					next[y][x] = born[neighbors]
				}
			}
		}
		alive = next
	}

	if opts.Connected {
		connectPockets(rng, alive)
	}
	return alive
}

// CellularLava runs a follow-up automaton restricted to existing floor
// cells: it seeds at chance (0..100) on floor, evolves a couple of steps, and
// returns the cells that ended alive. Neighbor counts only consider floor
// cells, so lava pools never leak under walls.
func CellularLava(rng *rand.Rand, floor [][]bool, chance int) [][]bool {
	height := len(floor)
	width := 0
	if height > 0 {
		width = len(floor[0])
	}

	alive := newMask(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alive[y][x] = floor[y][x] && rng.Intn(100) < chance
		}
	}

	const lavaIterations = 2
	for i := 0; i < lavaIterations; i++ {
		next := newMask(width, height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !floor[y][x] {
					continue
				}
				neighbors := countAlive(alive, x, y)
				if alive[y][x] {
					next[y][x] = neighbors >= 2
				} else {
					next[y][x] = neighbors >= 5
				}
			}
		}
		alive = next
	}
	return alive
}

// ruleSet expands a neighbor-count list into a lookup over 0..8
func ruleSet(counts []int) [9]bool {
	var set [9]bool
	for _, n := range counts {
		if n >= 0 && n <= 8 {
			set[n] = true
		}
	}
	return set
}

// countAlive counts live 8-neighbors; out-of-bounds cells count as dead
func countAlive(mask [][]bool, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if ny < 0 || ny >= len(mask) || nx < 0 || nx >= len(mask[ny]) {
				continue
			}
			if mask[ny][nx] {
				count++
			}
		}
	}
	return count
}

// connectPockets merges every isolated floor pocket into the largest
// component by carving an L-corridor from the pocket to the main body
func connectPockets(rng *rand.Rand, mask [][]bool) {
	components := floodComponents(mask)
	if len(components) <= 1 {
		return
	}

	main := 0
	for i, comp := range components {
		if len(comp) > len(components[main]) {
			main = i
		}
	}

	for i, comp := range components {
		if i == main || len(comp) == 0 {
			continue
		}
		from := comp[rng.Intn(len(comp))]
		to := nearestPoint(from, components[main])
		carveLine(mask, from, to)
	}
}

// floodComponents returns the 4-connected components of the mask, found with
// an explicit stack to bound stack depth
func floodComponents(mask [][]bool) [][]grid.Point {
	height := len(mask)
	width := 0
	if height > 0 {
		width = len(mask[0])
	}
	seen := newMask(width, height)

	var components [][]grid.Point
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] || seen[y][x] {
				continue
			}
			var comp []grid.Point
			stack := []grid.Point{{X: x, Y: y}}
			seen[y][x] = true
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				comp = append(comp, p)
				for _, dir := range grid.CardinalDirections() {
					dx, dy := dir.Delta()
					nx, ny := p.X+dx, p.Y+dy
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					if mask[ny][nx] && !seen[ny][nx] {
						seen[ny][nx] = true
						stack = append(stack, grid.Point{X: nx, Y: ny})
					}
				}
			}
			components = append(components, comp)
		}
	}
	return components
}

func nearestPoint(from grid.Point, candidates []grid.Point) grid.Point {
	best := candidates[0]
	bestDist := manhattan(from, best)
	for _, p := range candidates[1:] {
		if d := manhattan(from, p); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// carveLine digs an L path (horizontal leg, then vertical) between two points
func carveLine(mask [][]bool, from, to grid.Point) {
	x1, x2 := from.X, to.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		mask[from.Y][x] = true
	}
	y1, y2 := from.Y, to.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		mask[y][to.X] = true
	}
}
