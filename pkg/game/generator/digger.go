package generator

import (
	"math/rand"

	"architect/pkg/engine/grid"
)

// Rect is an axis-aligned room placed by a dungeon algorithm
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle cell of the rect
func (r Rect) Center() grid.Point {
	return grid.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// DigResult is the materialized output of a dungeon algorithm. Floors holds
// every dug cell; Rooms the placed rects; Junctions the corridor cells that
// touch a room (door candidates for the caller).
type DigResult struct {
	Floors    [][]bool
	Rooms     []Rect
	Junctions []grid.Point
}

// dugRatio returns the fraction of the area currently dug
func (r *DigResult) dugRatio(width, height int) float64 {
	if width == 0 || height == 0 {
		return 0
	}
	dug := 0
	for y := range r.Floors {
		for x := range r.Floors[y] {
			if r.Floors[y][x] {
				dug++
			}
		}
	}
	return float64(dug) / float64(width*height)
}

// inRoom reports whether a cell belongs to any placed room
func (r *DigResult) inRoom(x, y int) bool {
	for _, room := range r.Rooms {
		if room.Contains(x, y) {
			return true
		}
	}
	return false
}

// carveRoom digs every cell of the rect
func (r *DigResult) carveRoom(room Rect) {
	for y := room.Y; y < room.Y+room.H; y++ {
		for x := room.X; x < room.X+room.W; x++ {
			r.Floors[y][x] = true
		}
	}
	r.Rooms = append(r.Rooms, room)
}

// carveCorridor digs an L-shaped corridor between two points, horizontal leg
// first or last depending on horizontalFirst
func (r *DigResult) carveCorridor(from, to grid.Point, horizontalFirst bool) {
	if horizontalFirst {
		r.carveHorizontal(from.Y, from.X, to.X)
		r.carveVertical(to.X, from.Y, to.Y)
	} else {
		r.carveVertical(from.X, from.Y, to.Y)
		r.carveHorizontal(to.Y, from.X, to.X)
	}
}

// carveDeadEnd digs a dead-end corridor from a point in a random cardinal
// direction, stopping at the area border
func (r *DigResult) carveDeadEnd(rng *rand.Rand, from grid.Point, length, width, height int) {
	dir := grid.CardinalDirections()[rng.Intn(4)]
	dx, dy := dir.Delta()
	x, y := from.X, from.Y
	for i := 0; i < length; i++ {
		nx, ny := x+dx, y+dy
		if nx < 1 || nx >= width-1 || ny < 1 || ny >= height-1 {
			break
		}
		x, y = nx, ny
		r.Floors[y][x] = true
	}
}

func (r *DigResult) carveHorizontal(y, x1, x2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		r.Floors[y][x] = true
	}
}

func (r *DigResult) carveVertical(x, y1, y2 int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		r.Floors[y][x] = true
	}
}

// collectJunctions records corridor cells that are 4-adjacent to a room cell.
// These are the spots where a door can sensibly hang.
func (r *DigResult) collectJunctions(width, height int) {
	r.Junctions = r.Junctions[:0]
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !r.Floors[y][x] || r.inRoom(x, y) {
				continue
			}
			touchesRoom := false
			for _, dir := range grid.CardinalDirections() {
				dx, dy := dir.Delta()
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				if r.Floors[ny][nx] && r.inRoom(nx, ny) {
					touchesRoom = true
					break
				}
			}
			if touchesRoom {
				r.Junctions = append(r.Junctions, grid.Point{X: x, Y: y})
			}
		}
	}
}

// randomRoom rolls a room rect from the option ranges that fits the area with
// a one-cell margin, or a degenerate 1x1 rect when the area is too small
func randomRoom(rng *rand.Rand, width, height int, opts Options) Rect {
	roomW := opts.RoomWidth.Pick(rng)
	roomH := opts.RoomHeight.Pick(rng)
	if roomW > width-2 {
		roomW = width - 2
	}
	if roomH > height-2 {
		roomH = height - 2
	}
	if roomW < 1 {
		roomW = 1
	}
	if roomH < 1 {
		roomH = 1
	}
	x := 1
	if width-roomW-1 > 1 {
		x = 1 + rng.Intn(width-roomW-1)
	}
	y := 1
	if height-roomH-1 > 1 {
		y = 1 + rng.Intn(height-roomH-1)
	}
	return Rect{X: x, Y: y, W: roomW, H: roomH}
}

// overlapsAny reports whether a rect (grown by a one-cell margin) overlaps a
// placed room
func overlapsAny(room Rect, rooms []Rect) bool {
	for _, other := range rooms {
		if room.X < other.X+other.W+1 && other.X < room.X+room.W+1 &&
			room.Y < other.Y+other.H+1 && other.Y < room.Y+room.H+1 {
			return true
		}
	}
	return false
}

// DigDungeon carves sparse rooms joined by corridors until the dug share of
// the area reaches opts.DugPercentage or placement attempts are exhausted.
func DigDungeon(rng *rand.Rand, width, height int, opts Options) *DigResult {
	result := &DigResult{Floors: newMask(width, height)}
	if width < 3 || height < 3 {
		// Degenerate area: dig whatever exists
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				result.Floors[y][x] = true
			}
		}
		if width > 0 && height > 0 {
			result.Rooms = append(result.Rooms, Rect{X: 0, Y: 0, W: width, H: height})
		}
		return result
	}

	maxAttempts := width * height
	if maxAttempts < 40 {
		maxAttempts = 40
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if result.dugRatio(width, height) >= opts.DugPercentage {
			break
		}
		room := randomRoom(rng, width, height, opts)
		if overlapsAny(room, result.Rooms) {
			continue
		}
		previous := len(result.Rooms) - 1
		result.carveRoom(room)
		if previous >= 0 {
			result.carveCorridor(result.Rooms[previous].Center(), room.Center(), rng.Intn(2) == 0)
		}
		// Digger texture: the occasional dead-end corridor off a room
		if rng.Intn(2) == 0 {
			result.carveDeadEnd(rng, room.Center(), opts.CorridorLength.Pick(rng), width, height)
		}
	}

	// Guarantee at least one room even on hostile option sets
	if len(result.Rooms) == 0 {
		result.carveRoom(randomRoom(rng, width, height, opts))
	}

	result.collectJunctions(width, height)
	return result
}

// UniformDungeon places all rooms up front, then connects each to the
// nearest already-connected room. Room count scales with DugPercentage.
func UniformDungeon(rng *rand.Rand, width, height int, opts Options) *DigResult {
	result := &DigResult{Floors: newMask(width, height)}
	if width < 3 || height < 3 {
		return DigDungeon(rng, width, height, opts)
	}

	wanted := int(float64(width*height) * opts.DugPercentage /
		float64(opts.RoomWidth.Pick(rng)*opts.RoomHeight.Pick(rng)+1))
	if wanted < 2 {
		wanted = 2
	}

	for attempt := 0; attempt < wanted*20 && len(result.Rooms) < wanted; attempt++ {
		room := randomRoom(rng, width, height, opts)
		if !overlapsAny(room, result.Rooms) {
			result.carveRoom(room)
		}
	}
	if len(result.Rooms) == 0 {
		result.carveRoom(randomRoom(rng, width, height, opts))
	}

	// Connect room i to the nearest of rooms 0..i-1
	for i := 1; i < len(result.Rooms); i++ {
		from := result.Rooms[i].Center()
		best := result.Rooms[0].Center()
		bestDist := manhattan(from, best)
		for j := 1; j < i; j++ {
			center := result.Rooms[j].Center()
			if d := manhattan(from, center); d < bestDist {
				best, bestDist = center, d
			}
		}
		result.carveCorridor(from, best, rng.Intn(2) == 0)
	}

	result.collectJunctions(width, height)
	return result
}

// RogueDungeon lays rooms on a 3x3 sector lattice and connects orthogonal
// neighbors, the classic Rogue layout.
func RogueDungeon(rng *rand.Rand, width, height int, opts Options) *DigResult {
	const cells = 3
	result := &DigResult{Floors: newMask(width, height)}
	if width < cells*4 || height < cells*4 {
		return DigDungeon(rng, width, height, opts)
	}

	sectorW := width / cells
	sectorH := height / cells
	var centers [cells][cells]grid.Point
	for gy := 0; gy < cells; gy++ {
		for gx := 0; gx < cells; gx++ {
			maxW := sectorW - 2
			maxH := sectorH - 2
			roomW := 2 + rng.Intn(maxW-1)
			roomH := 2 + rng.Intn(maxH-1)
			roomX := gx*sectorW + 1 + rng.Intn(sectorW-roomW-1)
			roomY := gy*sectorH + 1 + rng.Intn(sectorH-roomH-1)
			room := Rect{X: roomX, Y: roomY, W: roomW, H: roomH}
			result.carveRoom(room)
			centers[gy][gx] = room.Center()
		}
	}

	for gy := 0; gy < cells; gy++ {
		for gx := 0; gx < cells; gx++ {
			if gx+1 < cells {
				result.carveCorridor(centers[gy][gx], centers[gy][gx+1], true)
			}
			if gy+1 < cells {
				result.carveCorridor(centers[gy][gx], centers[gy+1][gx], false)
			}
		}
	}

	result.collectJunctions(width, height)
	return result
}

// Arena digs one open room spanning the area, leaving a one-cell border
func Arena(rng *rand.Rand, width, height int, opts Options) *DigResult {
	result := &DigResult{Floors: newMask(width, height)}
	room := Rect{X: 1, Y: 1, W: width - 2, H: height - 2}
	if width <= 2 || height <= 2 {
		room = Rect{X: 0, Y: 0, W: width, H: height}
	}
	if room.W > 0 && room.H > 0 {
		result.carveRoom(room)
	}
	return result
}

// Dungeon dispatches to the dungeon variant named by configType, defaulting
// to the digger.
func Dungeon(rng *rand.Rand, configType string, width, height int, opts Options) *DigResult {
	switch configType {
	case TypeUniform:
		return UniformDungeon(rng, width, height, opts)
	case TypeRogue:
		return RogueDungeon(rng, width, height, opts)
	case TypeArena:
		return Arena(rng, width, height, opts)
	default:
		return DigDungeon(rng, width, height, opts)
	}
}

func manhattan(a, b grid.Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
