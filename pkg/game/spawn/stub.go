package spawn

import (
	"fmt"

	"architect/pkg/game/generator"
)

// Created records one CreateActor call made against a StubContext
type Created struct {
	X, Y int
	Type string
}

// StubContext is an in-memory Context for tests and the map preview tool. It
// serves a fixed actor table and records every creation.
type StubContext struct {
	Actors  map[string]*ActorDef
	TileIDs map[string]int
	Config  *generator.Config

	Created []Created

	// FailTypes makes CreateActor return an error for the listed types
	FailTypes map[string]bool

	nextHandle int
}

// NewStubContext returns a stub serving the standard structural actor types
// used by the generators
func NewStubContext() *StubContext {
	return &StubContext{
		Actors: map[string]*ActorDef{
			"wall":      {Name: "wall", BlocksPath: true},
			"bone_wall": {Name: "bone_wall", BlocksPath: true},
			"lava_wall": {Name: "lava_wall", BlocksPath: true},
			"door":      {Name: "door", BlocksPath: true},
			"torch":     {Name: "torch"},
			"lava":      {Name: "lava"},
		},
		TileIDs: map[string]int{},
	}
}

// GetActorData returns the prototype for an actor type, or nil when unknown
func (s *StubContext) GetActorData(actorType string) *ActorDef {
	return s.Actors[actorType]
}

// GetTileIDByName resolves a tile name against the stub table
func (s *StubContext) GetTileIDByName(name string) int {
	return s.TileIDs[name]
}

// GetPrototypeActors returns the full stub actor table
func (s *StubContext) GetPrototypeActors() map[string]*ActorDef {
	return s.Actors
}

// GetMapGeneratorConfig returns the configured generation config
func (s *StubContext) GetMapGeneratorConfig() *generator.Config {
	return s.Config
}

// CreateActor records the creation and returns a fresh handle
func (s *StubContext) CreateActor(x, y int, actorType string, data *ActorDef) (int, error) {
	if s.FailTypes[actorType] {
		return 0, fmt.Errorf("stub refuses %q", actorType)
	}
	s.Created = append(s.Created, Created{X: x, Y: y, Type: actorType})
	s.nextHandle++
	return s.nextHandle, nil
}
