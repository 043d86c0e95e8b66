// Package spawn defers entity placement out of terrain generation: generators
// append positions to typed queues, and the queues are drained into real
// entities later through a capability context, once one exists.
package spawn

import "architect/pkg/game/generator"

// ActorDef is the prototype data for one spawnable actor type
type ActorDef struct {
	Name        string   `json:"name"`
	PaintTile   string   `json:"paint_tile,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	BlocksPath  bool     `json:"blocks_path,omitempty"`
	SpawnWeight int      `json:"spawn_weight,omitempty"`
}

// Context is the capability surface the Architect needs from an entity
// system. A nil Context means entity creation is not available yet; drain
// calls keep their queues and retry later.
type Context interface {
	// GetActorData returns the prototype for an actor type, or nil when the
	// type is unknown
	GetActorData(actorType string) *ActorDef

	// GetTileIDByName resolves a tile name to its id, or 0 when unknown
	GetTileIDByName(name string) int

	// GetPrototypeActors returns every registered actor prototype keyed by
	// type name
	GetPrototypeActors() map[string]*ActorDef

	// GetMapGeneratorConfig returns the generation config for the current
	// level, or nil when the level is fully authored
	GetMapGeneratorConfig() *generator.Config

	// CreateActor instantiates an actor at a cell and returns its handle
	CreateActor(x, y int, actorType string, data *ActorDef) (int, error)
}
