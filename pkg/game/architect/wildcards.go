package architect

import (
	"architect/pkg/game/generator"
	"architect/pkg/game/spawn"
)

// Built-in wildcard marker tile ids. Authors paint these on the wildcards
// layer to request procedural terrain or spawns at that spot.
const (
	TileWildcardMaze       = 90
	TileWildcardDungeon    = 91
	TileWildcardCave       = 92
	TileWildcardInfernal   = 93
	TileWildcardRoom       = 94
	TileWildcardItemSpawn  = 95
	TileWildcardActorSpawn = 96
)

// Marker types beyond the terrain classes
const (
	TypeItemSpawn  = "item_spawn"
	TypeActorSpawn = "actor_spawn"
	TypeUnknown    = "unknown"
)

// wildcardTypes is the static id-to-type table. Ids outside it fall through
// to the actor paint-tile cache, then to "unknown".
var wildcardTypes = map[int]string{
	TileWildcardMaze:       generator.ClassMaze,
	TileWildcardDungeon:    generator.ClassDungeon,
	TileWildcardCave:       generator.ClassCave,
	TileWildcardInfernal:   generator.ClassInfernal,
	TileWildcardRoom:       generator.ClassRoom,
	TileWildcardItemSpawn:  TypeItemSpawn,
	TileWildcardActorSpawn: TypeActorSpawn,
}

// WildcardCell is the parsed state of one wildcards-layer cell. Type survives
// consumption so later passes can still ask what used to be here (room
// doorway probing reads consumed maze cells).
type WildcardCell struct {
	Type     string
	TileID   int
	Consumed bool
}

// classifyWildcard resolves a marker tile id to its semantic type. Static
// ids resolve without a context; actor paint tiles need one, so with a nil
// context unmatched ids come back "unknown" and are re-resolved later.
func (a *Architect) classifyWildcard(tileID int, ctx spawn.Context) string {
	if t, ok := wildcardTypes[tileID]; ok {
		return t
	}
	if ctx != nil {
		a.ensureActorTileCache(ctx)
		if actorType, ok := a.actorTileCache[tileID]; ok {
			return actorType
		}
	}
	return TypeUnknown
}

// ensureActorTileCache lazily builds the reverse lookup from painted tile id
// to actor type, from every prototype declaring a paint_tile
func (a *Architect) ensureActorTileCache(ctx spawn.Context) {
	if a.actorTileCache != nil {
		return
	}
	a.actorTileCache = make(map[int]string)
	for actorType, def := range ctx.GetPrototypeActors() {
		if def == nil || def.PaintTile == "" {
			continue
		}
		if id := ctx.GetTileIDByName(def.PaintTile); id > 0 {
			a.actorTileCache[id] = actorType
		}
	}
}

// ClearWildcardCache drops the actor paint-tile lookup so the next
// classification rebuilds it. Call after actor prototypes change.
func (a *Architect) ClearWildcardCache() {
	a.actorTileCache = nil
}

// ResolveUnknownWildcards re-classifies every cell still tagged "unknown".
// Markers parsed before an entity context existed get their second phase
// here; anything still unmatched stays unknown and is skipped by generation.
func (a *Architect) ResolveUnknownWildcards(ctx spawn.Context) int {
	if ctx == nil {
		return 0
	}
	resolved := 0
	for y := range a.wildcards {
		for x := range a.wildcards[y] {
			cell := &a.wildcards[y][x]
			if cell.Type != TypeUnknown || cell.Consumed {
				continue
			}
			if t := a.classifyWildcard(cell.TileID, ctx); t != TypeUnknown {
				cell.Type = t
				resolved++
			}
		}
	}
	return resolved
}
