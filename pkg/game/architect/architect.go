// Package architect builds level terrain: it owns the four tile layers,
// loads authored maps, turns wildcard marker regions into generated terrain,
// and queues the structural entities (walls, doors, torches, lava, actors)
// for deferred creation once an entity context exists.
package architect

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"architect/pkg/engine/grid"
	"architect/pkg/engine/tilemap"
	"architect/pkg/game/generator"
	"architect/pkg/game/spawn"
)

// Terrain tile ids placed by generation. Authored maps bring their own ids;
// these are only used for procedurally placed tiles.
const (
	TileBackground = 1
	TileFloor      = 2
)

// Architect is constructed once per level load and exclusively owns its
// layers, walkable list, and spawn queues. All access is single-threaded.
type Architect struct {
	width  int
	height int
	depth  int

	grid      *grid.Grid
	wildcards [][]WildcardCell

	walkable    []grid.Point
	walkableSet mapset.Set[grid.Point]

	pendingWalls   *spawn.Queue
	pendingDoors   *spawn.Queue
	pendingTorches *spawn.Queue
	pendingLava    *spawn.Queue
	pendingActors  *spawn.Queue

	roomTypes      []RoomTypeDescriptor
	actorTileCache map[int]string

	// Object layers of the authored map, passed through untouched for the
	// entity subsystem
	actorObjects []tilemap.Object
	itemObjects  []tilemap.Object

	// configType steers algorithm variants when the level came from a
	// generator config; empty for authored maps
	configType string
	options    generator.Options

	rng        *rand.Rand
	logMessage func(string)
}

// New creates an Architect for a level of the given size at the given depth
func New(width, height, depth int, logMessage func(string)) *Architect {
	if logMessage == nil {
		logMessage = func(string) {}
	}
	a := &Architect{
		depth:          depth,
		roomTypes:      defaultRoomTypes(),
		options:        generator.DefaultOptions(),
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		logMessage:     logMessage,
		pendingWalls:   spawn.NewQueue("wall"),
		pendingDoors:   spawn.NewQueue("door"),
		pendingTorches: spawn.NewQueue("torch"),
		pendingLava:    spawn.NewQueue("lava"),
		pendingActors:  spawn.NewQueue(TypeActorSpawn),
	}
	a.initLayers(width, height)
	return a
}

// SetSeed makes generation deterministic for the given seed
func (a *Architect) SetSeed(seed int64) {
	a.rng = rand.New(rand.NewSource(seed))
}

// initLayers sizes the four layers and the wildcard cells, clearing the
// walkable list
func (a *Architect) initLayers(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	a.width = width
	a.height = height
	a.grid = grid.New(width, height)
	a.wildcards = make([][]WildcardCell, height)
	for y := range a.wildcards {
		a.wildcards[y] = make([]WildcardCell, width)
	}
	a.walkable = nil
	a.walkableSet = mapset.New[grid.Point]()
}

// Width returns the level width
func (a *Architect) Width() int {
	return a.width
}

// Height returns the level height
func (a *Architect) Height() int {
	return a.height
}

// Depth returns the level depth used for room-type selection
func (a *Architect) Depth() int {
	return a.depth
}

// Layer exposes the raw cells of a named layer, nil for unknown names
func (a *Architect) Layer(name string) [][]int {
	return a.grid.Layer(name)
}

// TileAt returns the tile on a layer, nil for empty, out of bounds, or an
// unknown layer
func (a *Architect) TileAt(layer string, x, y int) *grid.Tile {
	return a.grid.TileAt(layer, x, y)
}

// SetTile places or clears (id <= 0) a tile, bounds-checked
func (a *Architect) SetTile(layer string, x, y, id int) {
	a.grid.SetTile(layer, x, y, id)
}

// Neighbors returns the 8 compass neighbors on a layer, clockwise from North
func (a *Architect) Neighbors(layer string, x, y int) [8]*grid.Tile {
	return a.grid.Neighbors(layer, x, y)
}

// WildcardAt returns the wildcard cell state, nil out of bounds
func (a *Architect) WildcardAt(x, y int) *WildcardCell {
	if !a.grid.InBounds(x, y) {
		return nil
	}
	return &a.wildcards[y][x]
}

// WalkableTiles returns the walkable floor positions. The slice is live.
func (a *Architect) WalkableTiles() []grid.Point {
	return a.walkable
}

// ActorObjects returns the authored actor object layer, untouched
func (a *Architect) ActorObjects() []tilemap.Object {
	return a.actorObjects
}

// ItemObjects returns the authored item object layer, untouched
func (a *Architect) ItemObjects() []tilemap.Object {
	return a.itemObjects
}

// addWalkable records a walkable floor cell, deduplicating across repeated
// generation calls
func (a *Architect) addWalkable(x, y int) {
	p := grid.Point{X: x, Y: y}
	if a.walkableSet.Has(p) {
		return
	}
	a.walkableSet.Put(p)
	a.walkable = append(a.walkable, p)
}

// removeWalkable drops a cell from the walkable list (lava placement)
func (a *Architect) removeWalkable(x, y int) {
	p := grid.Point{X: x, Y: y}
	if !a.walkableSet.Has(p) {
		return
	}
	a.walkableSet.Remove(p)
	for i := range a.walkable {
		if a.walkable[i] == p {
			a.walkable = append(a.walkable[:i], a.walkable[i+1:]...)
			break
		}
	}
}

// LoadAuthoredMap reinitializes the level from a parsed map document. Tile
// layers are copied in, floor cells become walkable, and wildcard markers get
// their first classification pass; with a nil context, non-built-in markers
// stay "unknown" until ResolveUnknownWildcards runs with a real context.
func (a *Architect) LoadAuthoredMap(doc *tilemap.Document, ctx spawn.Context) error {
	if doc == nil {
		return fmt.Errorf("no map document")
	}
	a.initLayers(doc.Width, doc.Height)
	a.configType = ""

	background := doc.TileLayer("background")
	floor := doc.TileLayer("floor")
	wildcards := doc.TileLayer("wildcards")

	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			if id := doc.TileID(background, x, y); id > 0 {
				a.grid.SetTile(grid.LayerBackground, x, y, id)
			}
			if id := doc.TileID(floor, x, y); id > 0 {
				a.grid.SetTile(grid.LayerFloor, x, y, id)
				a.addWalkable(x, y)
			}
			if id := doc.TileID(wildcards, x, y); id > 0 {
				a.grid.SetTile(grid.LayerWildcard, x, y, id)
				a.wildcards[y][x] = WildcardCell{
					Type:   a.classifyWildcard(id, ctx),
					TileID: id,
				}
			}
		}
	}

	a.actorObjects = nil
	a.itemObjects = nil
	if actors := doc.ObjectLayer("actors"); actors != nil {
		a.actorObjects = actors.Objects
	}
	if items := doc.ObjectLayer("items"); items != nil {
		a.itemObjects = items.Objects
	}

	a.logMessage(fmt.Sprintf("architect: loaded %dx%d authored map", a.width, a.height))
	return nil
}

// GenerateFromConfig builds the whole level procedurally from the context's
// generator config: layers are sized from the config, the full wildcard layer
// is tagged with the algorithm's terrain class, and the normal region
// pipeline runs over it. Authored maps and full generation share one path.
func (a *Architect) GenerateFromConfig(ctx spawn.Context) error {
	if ctx == nil {
		return fmt.Errorf("generate: no entity context")
	}
	config := ctx.GetMapGeneratorConfig()
	if config == nil {
		return fmt.Errorf("generate: context has no generator config")
	}

	class := generator.SemanticType(config.Type)
	if class == "" {
		return fmt.Errorf("generate: unrecognized generator type %q", config.Type)
	}

	opts := config.Options.Normalized()
	a.initLayers(opts.MapWidth, opts.MapHeight)
	a.configType = config.Type
	a.options = opts

	tileID := wildcardTileForClass(class)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			a.grid.SetTile(grid.LayerWildcard, x, y, tileID)
			a.wildcards[y][x] = WildcardCell{Type: class, TileID: tileID}
		}
	}

	a.logMessage(fmt.Sprintf("architect: generating %dx%d %s level", a.width, a.height, config.Type))
	return a.GenerateLevel(ctx)
}

// wildcardTileForClass returns the marker id whose static classification is
// the given terrain class
func wildcardTileForClass(class string) int {
	for id, t := range wildcardTypes {
		if t == class {
			return id
		}
	}
	return TileWildcardDungeon
}

// GenerateLevel runs the region pipeline over the current wildcard layer:
// re-resolve unknowns if a context is available, discover regions, and
// generate mazes, then rooms, then the rest. Safe to call with a nil context;
// spawn markers then queue against their marker types for a later drain.
func (a *Architect) GenerateLevel(ctx spawn.Context) error {
	if ctx != nil {
		a.ResolveUnknownWildcards(ctx)
	}

	regions := partitionRegions(a.FindWildcardRegions())
	for _, region := range regions {
		a.applyRegion(region)
	}

	a.logMessage(fmt.Sprintf("architect: generated %d regions, %d walkable tiles", len(regions), len(a.walkable)))
	return nil
}

// Cleanup resets layers, walkable tiles, queues, and caches for level
// teardown or reload
func (a *Architect) Cleanup() {
	a.initLayers(a.width, a.height)
	a.pendingWalls.Clear()
	a.pendingDoors.Clear()
	a.pendingTorches.Clear()
	a.pendingLava.Clear()
	a.pendingActors.Clear()
	a.actorTileCache = nil
	a.actorObjects = nil
	a.itemObjects = nil
}

// PendingWalls returns the queued wall placements
func (a *Architect) PendingWalls() []spawn.Pending {
	return a.pendingWalls.Pending()
}

// PendingDoors returns the queued door placements
func (a *Architect) PendingDoors() []spawn.Pending {
	return a.pendingDoors.Pending()
}

// PendingTorches returns the queued torch placements
func (a *Architect) PendingTorches() []spawn.Pending {
	return a.pendingTorches.Pending()
}

// PendingLava returns the queued lava placements
func (a *Architect) PendingLava() []spawn.Pending {
	return a.pendingLava.Pending()
}

// PendingActors returns the queued actor placements
func (a *Architect) PendingActors() []spawn.Pending {
	return a.pendingActors.Pending()
}

// PendingWallCount reports the queued wall placements
func (a *Architect) PendingWallCount() int {
	return a.pendingWalls.Len()
}

// PendingDoorCount reports the queued door placements
func (a *Architect) PendingDoorCount() int {
	return a.pendingDoors.Len()
}

// PendingTorchCount reports the queued torch placements
func (a *Architect) PendingTorchCount() int {
	return a.pendingTorches.Len()
}

// PendingLavaCount reports the queued lava placements
func (a *Architect) PendingLavaCount() int {
	return a.pendingLava.Len()
}

// PendingActorCount reports the queued actor placements
func (a *Architect) PendingActorCount() int {
	return a.pendingActors.Len()
}

// SpawnPendingWalls drains the wall queue through the context
func (a *Architect) SpawnPendingWalls(ctx spawn.Context) int {
	return a.pendingWalls.Drain(ctx, a.logMessage)
}

// SpawnPendingDoors drains the door queue through the context
func (a *Architect) SpawnPendingDoors(ctx spawn.Context) int {
	return a.pendingDoors.Drain(ctx, a.logMessage)
}

// SpawnPendingTorches drains the torch queue through the context
func (a *Architect) SpawnPendingTorches(ctx spawn.Context) int {
	return a.pendingTorches.Drain(ctx, a.logMessage)
}

// SpawnPendingLava drains the lava queue through the context
func (a *Architect) SpawnPendingLava(ctx spawn.Context) int {
	return a.pendingLava.Drain(ctx, a.logMessage)
}

// SpawnPendingActors drains the actor-marker queue through the context
func (a *Architect) SpawnPendingActors(ctx spawn.Context) int {
	return a.pendingActors.Drain(ctx, a.logMessage)
}
