// Package generator provides the procedural terrain algorithms used by the
// Architect. All algorithms are pure functions over an explicit *rand.Rand
// returning materialized grids or point sets, so they can be tested without
// any map or entity state.
package generator

import (
	"math/rand"
)

// Algorithm names accepted in a generator config
const (
	TypeDigger      = "digger"
	TypeCellular    = "cellular"
	TypeUniform     = "uniform"
	TypeRogue       = "rogue"
	TypeDividedMaze = "divided_maze"
	TypeIceyMaze    = "icey_maze"
	TypeEllerMaze   = "eller_maze"
	TypeArena       = "arena"
	TypeInfernal    = "infernal"
)

// Semantic terrain classes produced by the algorithms
const (
	ClassMaze     = "maze"
	ClassDungeon  = "dungeon"
	ClassCave     = "cave"
	ClassInfernal = "infernal"
	ClassRoom     = "room"
)

// Range is an inclusive [min, max] pair
type Range [2]int

// Pick returns a uniformly random value in the range
func (r Range) Pick(rng *rand.Rand) int {
	lo, hi := r[0], r[1]
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// WallType is one entry of a weighted wall-type table
type WallType struct {
	Type   string `json:"type"`
	Weight int    `json:"weight"`
}

// Options are the typed knobs shared by the algorithm family. Unused fields
// are ignored by algorithms that do not consume them.
type Options struct {
	Born           []int      `json:"born,omitempty"`
	Survive        []int      `json:"survive,omitempty"`
	Probability    float64    `json:"probability,omitempty"`
	Iterations     int        `json:"iterations,omitempty"`
	Connected      bool       `json:"connected,omitempty"`
	RoomWidth      Range      `json:"roomWidth,omitempty"`
	RoomHeight     Range      `json:"roomHeight,omitempty"`
	CorridorLength Range      `json:"corridorLength,omitempty"`
	DugPercentage  float64    `json:"dugPercentage,omitempty"`
	WallTypes      []WallType `json:"wall_types,omitempty"`
	LavaChance     int        `json:"lava_chance,omitempty"`
	MapWidth       int        `json:"map_width,omitempty"`
	MapHeight      int        `json:"map_height,omitempty"`
}

// Config selects an algorithm and its options
type Config struct {
	Type    string  `json:"type"`
	Options Options `json:"options"`
}

// DefaultOptions returns the option set used when a config omits a knob
func DefaultOptions() Options {
	return Options{
		Born:           []int{5, 6, 7, 8},
		Survive:        []int{4, 5, 6, 7, 8},
		Probability:    0.5,
		Iterations:     4,
		Connected:      true,
		RoomWidth:      Range{3, 9},
		RoomHeight:     Range{3, 6},
		CorridorLength: Range{2, 8},
		DugPercentage:  0.25,
		WallTypes:      []WallType{{Type: "wall", Weight: 100}},
		LavaChance:     20,
		MapWidth:       80,
		MapHeight:      50,
	}
}

// Normalized fills zero-valued knobs of o with defaults
func (o Options) Normalized() Options {
	defaults := DefaultOptions()
	if len(o.Born) == 0 {
		o.Born = defaults.Born
	}
	if len(o.Survive) == 0 {
		o.Survive = defaults.Survive
	}
	if o.Probability <= 0 || o.Probability > 1 {
		o.Probability = defaults.Probability
	}
	if o.Iterations <= 0 {
		o.Iterations = defaults.Iterations
	}
	if o.RoomWidth == (Range{}) {
		o.RoomWidth = defaults.RoomWidth
	}
	if o.RoomHeight == (Range{}) {
		o.RoomHeight = defaults.RoomHeight
	}
	if o.CorridorLength == (Range{}) {
		o.CorridorLength = defaults.CorridorLength
	}
	if o.DugPercentage <= 0 {
		o.DugPercentage = defaults.DugPercentage
	}
	if o.DugPercentage > 1 {
		o.DugPercentage = 1
	}
	if len(o.WallTypes) == 0 {
		o.WallTypes = defaults.WallTypes
	}
	if o.LavaChance <= 0 {
		o.LavaChance = defaults.LavaChance
	}
	if o.LavaChance > 100 {
		o.LavaChance = 100
	}
	if o.MapWidth <= 0 {
		o.MapWidth = defaults.MapWidth
	}
	if o.MapHeight <= 0 {
		o.MapHeight = defaults.MapHeight
	}
	return o
}

// SemanticType maps a config algorithm name to the terrain class it
// produces, or "" for an unrecognized name (silently skipped downstream for
// forward compatibility).
func SemanticType(configType string) string {
	switch configType {
	case TypeDividedMaze, TypeIceyMaze, TypeEllerMaze:
		return ClassMaze
	case TypeDigger, TypeUniform, TypeRogue:
		return ClassDungeon
	case TypeCellular:
		return ClassCave
	case TypeInfernal:
		return ClassInfernal
	case TypeArena:
		return ClassRoom
	default:
		return ""
	}
}

// PickWeighted draws a wall type from a weighted table. An empty or
// zero-weight table yields "wall".
func PickWeighted(rng *rand.Rand, table []WallType) string {
	total := 0
	for _, entry := range table {
		if entry.Weight > 0 {
			total += entry.Weight
		}
	}
	if total == 0 {
		return "wall"
	}
	roll := rng.Intn(total)
	for _, entry := range table {
		if entry.Weight <= 0 {
			continue
		}
		roll -= entry.Weight
		if roll < 0 {
			return entry.Type
		}
	}
	return table[len(table)-1].Type
}

func newMask(width, height int) [][]bool {
	mask := make([][]bool, height)
	for y := range mask {
		mask[y] = make([]bool, width)
	}
	return mask
}
