package architect

import (
	"github.com/zyedidia/generic/mapset"

	"architect/pkg/engine/grid"
	"architect/pkg/game/generator"
)

// applyRegion dispatches a discovered region to its generator. Unknown
// regions are left alone so a later resolution pass can still claim them;
// any other unrecognized type is an actor paint-tile type and becomes spawn
// markers.
func (a *Architect) applyRegion(region Region) {
	switch region.Type {
	case generator.ClassMaze:
		a.applyMaze(region)
	case generator.ClassDungeon:
		a.applyDungeon(region)
	case generator.ClassCave:
		a.applyCave(region, false)
	case generator.ClassInfernal:
		a.applyCave(region, true)
	case generator.ClassRoom:
		a.applyRoom(region)
	case TypeUnknown:
	default:
		a.applySpawnMarkers(region, region.Type)
	}
}

// regionCells returns the cells of the bounding box still tagged with the
// region's type and not yet consumed. Boxes of differently-typed regions can
// overlap at corners, so every generator writes only to these cells.
func (a *Architect) regionCells(region Region) []grid.Point {
	var cells []grid.Point
	for y := region.Y; y < region.Y+region.Height; y++ {
		for x := region.X; x < region.X+region.Width; x++ {
			if !a.grid.InBounds(x, y) {
				continue
			}
			cell := a.wildcards[y][x]
			if cell.Type == region.Type && !cell.Consumed {
				cells = append(cells, grid.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// consumeMarkers clears the wildcard layer for the processed cells. The cell
// type is kept so later passes can still ask what a consumed cell was (room
// doorways probe for consumed maze floor).
func (a *Architect) consumeMarkers(cells []grid.Point) {
	for _, p := range cells {
		a.wildcards[p.Y][p.X].Consumed = true
		a.grid.SetTile(grid.LayerWildcard, p.X, p.Y, 0)
	}
}

// placeFloor writes a floor tile and records the cell walkable
func (a *Architect) placeFloor(x, y int) {
	a.grid.SetTile(grid.LayerFloor, x, y, TileFloor)
	a.addWalkable(x, y)
}

// placeWall queues a wall-candidate with a floor tile underneath. Walls
// visually sit on floor, but the cell is not walkable. Row 0 never takes a
// wall (a 2-tile actor needs headroom for its upper sprite); those cells get
// plain walkable floor instead.
func (a *Architect) placeWall(x, y int, wallType string) {
	if y == 0 {
		a.placeFloor(x, y)
		return
	}
	a.grid.SetTile(grid.LayerFloor, x, y, TileFloor)
	if wallType == "" {
		a.pendingWalls.Add(x, y)
	} else {
		a.pendingWalls.AddTyped(x, y, wallType)
	}
}

// applyMaze fills the region with a perfect maze. Passable cells get floor
// and a walkable entry; impassable cells stay void on purpose, falling into
// the void is a gameplay outcome.
func (a *Architect) applyMaze(region Region) {
	cells := a.regionCells(region)
	mask := generator.Maze(a.rng, a.configType, region.Width, region.Height)

	for _, p := range cells {
		if mask[p.Y-region.Y][p.X-region.X] {
			a.placeFloor(p.X, p.Y)
		}
	}
	a.consumeMarkers(cells)
}

// applyDungeon carves rooms and corridors, then classifies the surrounding
// cells: non-floor cells 8-adjacent to floor become wall-candidates with
// floor underneath, room/corridor junctions become doors at ~50%, and ~30% of
// rooms promote one of their wall-candidates to a torch.
func (a *Architect) applyDungeon(region Region) {
	cells := a.regionCells(region)
	eligible := mapset.New[grid.Point]()
	for _, p := range cells {
		eligible.Put(p)
	}

	result := generator.Dungeon(a.rng, a.configType, region.Width, region.Height, a.options)

	var wallCells []grid.Point
	for _, p := range cells {
		lx, ly := p.X-region.X, p.Y-region.Y
		if result.Floors[ly][lx] {
			a.placeFloor(p.X, p.Y)
			continue
		}
		if adjacentToFloor(result.Floors, lx, ly) {
			wallCells = append(wallCells, p)
		}
	}

	// Torch promotion happens before walls are queued so a promoted cell
	// never appears on both queues
	promoted := mapset.New[grid.Point]()
	for _, room := range result.Rooms {
		if a.rng.Intn(100) >= 30 {
			continue
		}
		var candidates []grid.Point
		for _, w := range wallCells {
			lx, ly := w.X-region.X, w.Y-region.Y
			if lx >= room.X-1 && lx <= room.X+room.W && ly >= room.Y-1 && ly <= room.Y+room.H && !promoted.Has(w) {
				candidates = append(candidates, w)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		promoted.Put(candidates[a.rng.Intn(len(candidates))])
	}

	for _, w := range wallCells {
		if promoted.Has(w) {
			if w.Y > 0 {
				a.grid.SetTile(grid.LayerFloor, w.X, w.Y, TileFloor)
				a.pendingTorches.Add(w.X, w.Y)
			} else {
				a.placeFloor(w.X, w.Y)
			}
			continue
		}
		a.placeWall(w.X, w.Y, "")
	}

	for _, j := range result.Junctions {
		p := grid.Point{X: region.X + j.X, Y: region.Y + j.Y}
		if !eligible.Has(p) {
			continue
		}
		if a.rng.Intn(2) == 0 {
			a.pendingDoors.Add(p.X, p.Y)
		}
	}

	a.consumeMarkers(cells)
}

// applyCave grows a cellular-automaton cave. Every non-floor cell becomes a
// wall of a type drawn from the weighted table, with floor underneath. The
// infernal variant runs a second automaton over the established floor and
// turns the surviving cells into lava-candidates, removed from the walkable
// list.
func (a *Architect) applyCave(region Region, infernal bool) {
	cells := a.regionCells(region)
	mask := generator.Cellular(a.rng, region.Width, region.Height, a.options)

	for _, p := range cells {
		if mask[p.Y-region.Y][p.X-region.X] {
			a.placeFloor(p.X, p.Y)
			continue
		}
		a.placeWall(p.X, p.Y, generator.PickWeighted(a.rng, a.options.WallTypes))
	}

	if infernal {
		lava := generator.CellularLava(a.rng, mask, a.options.LavaChance)
		for _, p := range cells {
			lx, ly := p.X-region.X, p.Y-region.Y
			if !mask[ly][lx] || !lava[ly][lx] {
				continue
			}
			a.pendingLava.Add(p.X, p.Y)
			a.removeWalkable(p.X, p.Y)
		}
	}

	a.consumeMarkers(cells)
}

// applyRoom selects a room type for the current depth, rasterizes its shape,
// and walls in the cells bordering it. A border cell whose neighbor just
// outside the region already holds consumed maze floor becomes a doorway
// into that maze instead of a wall.
func (a *Architect) applyRoom(region Region) {
	cells := a.regionCells(region)

	name := a.SelectRoomTypeForDepth(a.depth, region.Width, region.Height)
	desc := a.RoomType(name)
	shape := generator.ShapeRectangle
	if desc != nil && desc.Shape != nil {
		shape = desc.Shape
	}

	shapeSet := mapset.New[grid.Point]()
	for _, p := range shape(a.rng, region.Width, region.Height) {
		shapeSet.Put(p)
	}

	for _, p := range cells {
		local := grid.Point{X: p.X - region.X, Y: p.Y - region.Y}
		if shapeSet.Has(local) {
			a.placeFloor(p.X, p.Y)
			continue
		}
		if !adjacentToShape(shapeSet, local) {
			continue
		}
		if a.isMazeDoorway(region, p) {
			a.placeFloor(p.X, p.Y)
			continue
		}
		a.placeWall(p.X, p.Y, "")
	}

	a.consumeMarkers(cells)
}

// isMazeDoorway reports whether a region-border cell touches consumed maze
// floor just outside the region box
func (a *Architect) isMazeDoorway(region Region, p grid.Point) bool {
	for _, dir := range grid.CardinalDirections() {
		dx, dy := dir.Delta()
		nx, ny := p.X+dx, p.Y+dy
		if nx >= region.X && nx < region.X+region.Width && ny >= region.Y && ny < region.Y+region.Height {
			continue
		}
		if !a.grid.InBounds(nx, ny) {
			continue
		}
		neighbor := a.wildcards[ny][nx]
		if neighbor.Type == generator.ClassMaze && neighbor.Consumed &&
			a.grid.TileAt(grid.LayerFloor, nx, ny) != nil {
			return true
		}
	}
	return false
}

// applySpawnMarkers converts marker cells into floor with a typed pending
// actor placement. Used for item_spawn, actor_spawn, and actor paint-tile
// regions.
func (a *Architect) applySpawnMarkers(region Region, actorType string) {
	cells := a.regionCells(region)
	for _, p := range cells {
		a.placeFloor(p.X, p.Y)
		a.pendingActors.AddTyped(p.X, p.Y, actorType)
	}
	a.consumeMarkers(cells)
}

// adjacentToFloor reports whether a region-local cell has a floor cell among
// its 8 neighbors
func adjacentToFloor(floors [][]bool, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if ny < 0 || ny >= len(floors) || nx < 0 || nx >= len(floors[ny]) {
				continue
			}
			if floors[ny][nx] {
				return true
			}
		}
	}
	return false
}

// adjacentToShape reports whether a region-local cell borders the shape in
// any of the 8 directions
func adjacentToShape(shape mapset.Set[grid.Point], p grid.Point) bool {
	for _, dir := range grid.AllDirections() {
		dx, dy := dir.Delta()
		if shape.Has(grid.Point{X: p.X + dx, Y: p.Y + dy}) {
			return true
		}
	}
	return false
}
