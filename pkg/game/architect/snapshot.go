package architect

import (
	"encoding/json"
	"fmt"

	"architect/pkg/engine/grid"
)

// Snapshot is the persisted shape of a level: the floor layer and the
// walkable list, nothing else. Background, walls, wildcards, and pending
// queues are regenerated or re-drained on load, not persisted.
type Snapshot struct {
	FloorMap      [][]int      `json:"floorMap"`
	WalkableTiles []grid.Point `json:"walkableTiles"`
}

// Snapshot captures the current floor layer and walkable tiles
func (a *Architect) Snapshot() *Snapshot {
	floor := a.grid.Layer(grid.LayerFloor)
	floorMap := make([][]int, len(floor))
	for y := range floor {
		floorMap[y] = make([]int, len(floor[y]))
		copy(floorMap[y], floor[y])
	}
	walkable := make([]grid.Point, len(a.walkable))
	copy(walkable, a.walkable)
	return &Snapshot{FloorMap: floorMap, WalkableTiles: walkable}
}

// RestoreSnapshot reinitializes the level from a snapshot. Dimensions come
// from the floor map; everything not in the snapshot starts empty.
func (a *Architect) RestoreSnapshot(s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("no snapshot")
	}
	height := len(s.FloorMap)
	width := 0
	if height > 0 {
		width = len(s.FloorMap[0])
	}
	for y := range s.FloorMap {
		if len(s.FloorMap[y]) != width {
			return fmt.Errorf("snapshot floor map row %d has %d cells, want %d", y, len(s.FloorMap[y]), width)
		}
	}

	a.initLayers(width, height)
	for y := range s.FloorMap {
		for x, id := range s.FloorMap[y] {
			if id > 0 {
				a.grid.SetTile(grid.LayerFloor, x, y, id)
			}
		}
	}
	for _, p := range s.WalkableTiles {
		if !a.grid.InBounds(p.X, p.Y) {
			return fmt.Errorf("snapshot walkable tile (%d,%d) outside %dx%d floor map", p.X, p.Y, width, height)
		}
		a.addWalkable(p.X, p.Y)
	}
	return nil
}

// MarshalSnapshot serializes a snapshot for persistence
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot deserializes a persisted snapshot
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &s, nil
}
