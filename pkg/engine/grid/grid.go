// Package grid provides generic 2D tile-layer primitives.
// These are engine-level constructs usable by any tile-based game.
package grid

// Layer names understood by the store. Callers may probe for layers that do
// not exist on a given level; unknown names are a soft failure, not an error.
const (
	LayerBackground = "background"
	LayerFloor      = "floor"
	LayerWall       = "wall"
	LayerWildcard   = "wildcard"
)

// Point is a comparable map coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile is a single occupied cell on one of the layers.
// An empty cell has no Tile; accessors return nil for it.
type Tile struct {
	ID    int
	Layer string
}

// Grid stores four same-sized tile layers addressed by name.
// A cell holds a tile id; 0 means empty.
type Grid struct {
	width  int
	height int

	background [][]int
	floor      [][]int
	wall       [][]int
	wildcard   [][]int
}

// New creates a grid with the given dimensions, all cells empty
func New(width, height int) *Grid {
	g := &Grid{}
	g.Reset(width, height)
	return g
}

// Reset reinitializes all four layers to the given dimensions, clearing every cell
func (g *Grid) Reset(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.width = width
	g.height = height
	g.background = newLayer(width, height)
	g.floor = newLayer(width, height)
	g.wall = newLayer(width, height)
	g.wildcard = newLayer(width, height)
}

func newLayer(width, height int) [][]int {
	layer := make([][]int, height)
	for y := range layer {
		layer[y] = make([]int, width)
	}
	return layer
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// Layer returns the raw cells of the named layer, or nil for an unrecognized name
func (g *Grid) Layer(name string) [][]int {
	switch name {
	case LayerBackground:
		return g.background
	case LayerFloor:
		return g.floor
	case LayerWall:
		return g.wall
	case LayerWildcard:
		return g.wildcard
	default:
		return nil
	}
}

// InBounds checks whether a position is inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// TileAt returns the tile on the named layer, or nil when the cell is empty,
// the position is out of bounds, or the layer name is unrecognized
func (g *Grid) TileAt(layer string, x, y int) *Tile {
	cells := g.Layer(layer)
	if cells == nil || !g.InBounds(x, y) {
		return nil
	}
	id := cells[y][x]
	if id <= 0 {
		return nil
	}
	return &Tile{ID: id, Layer: layer}
}

// SetTile places a tile id on the named layer. Out-of-bounds positions and
// unrecognized layer names are a no-op. An id <= 0 clears the cell.
func (g *Grid) SetTile(layer string, x, y, id int) {
	cells := g.Layer(layer)
	if cells == nil || !g.InBounds(x, y) {
		return
	}
	if id < 0 {
		id = 0
	}
	cells[y][x] = id
}

// Neighbors returns the tiles in the eight compass directions, clockwise from
// North. Empty and out-of-bounds neighbors are nil.
func (g *Grid) Neighbors(layer string, x, y int) [8]*Tile {
	var neighbors [8]*Tile
	for _, dir := range AllDirections() {
		dx, dy := dir.Delta()
		neighbors[dir] = g.TileAt(layer, x+dx, y+dy)
	}
	return neighbors
}

// ForEach iterates the named layer row-major (y outer, x inner). Later
// shadow/adjacency passes rely on this top-to-bottom, left-to-right order.
// Empty cells are skipped unless includeEmpty is set, in which case fn
// receives a nil tile for them.
func (g *Grid) ForEach(layer string, fn func(x, y int, t *Tile), includeEmpty bool) {
	cells := g.Layer(layer)
	if cells == nil {
		return
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			id := cells[y][x]
			if id <= 0 {
				if includeEmpty {
					fn(x, y, nil)
				}
				continue
			}
			fn(x, y, &Tile{ID: id, Layer: layer})
		}
	}
}
