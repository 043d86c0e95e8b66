package generator

import (
	"math/rand"
	"testing"
)

func floorConnected(floors [][]bool) bool {
	cells, reachable, _ := mazeStats(floors)
	return cells > 0 && reachable == cells
}

func TestDigDungeon_ReachesDugPercentage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	opts := DefaultOptions()
	opts.DugPercentage = 0.25
	result := DigDungeon(rng, 60, 40, opts)

	if ratio := result.dugRatio(60, 40); ratio < opts.DugPercentage {
		t.Errorf("dug ratio %.3f below requested %.3f", ratio, opts.DugPercentage)
	}
	if len(result.Rooms) == 0 {
		t.Error("no rooms placed")
	}
	if !floorConnected(result.Floors) {
		t.Error("dug floor is not a single connected area")
	}
}

func TestDigDungeon_FullDig(t *testing.T) {
	// DugPercentage 1.0 on a small area keeps digging until attempts run out,
	// which still has to leave a connected, well-populated floor.
	rng := rand.New(rand.NewSource(1))
	opts := DefaultOptions()
	opts.DugPercentage = 1.0
	opts.RoomWidth = Range{8, 8}
	opts.RoomHeight = Range{8, 8}
	result := DigDungeon(rng, 10, 10, opts)

	if len(result.Rooms) == 0 {
		t.Fatal("no rooms placed")
	}
	if !floorConnected(result.Floors) {
		t.Error("floor not connected")
	}
}

func TestDigDungeon_DegenerateArea(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	result := DigDungeon(rng, 2, 1, DefaultOptions())
	for y := 0; y < 1; y++ {
		for x := 0; x < 2; x++ {
			if !result.Floors[y][x] {
				t.Errorf("degenerate area should be fully dug, (%d,%d) is not", x, y)
			}
		}
	}
}

func TestUniformDungeon_RoomsConnected(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	result := UniformDungeon(rng, 60, 40, DefaultOptions())
	if len(result.Rooms) < 2 {
		t.Fatalf("expected multiple rooms, got %d", len(result.Rooms))
	}
	if !floorConnected(result.Floors) {
		t.Error("rooms not connected into one component")
	}
}

func TestRogueDungeon_NineRooms(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	result := RogueDungeon(rng, 60, 40, DefaultOptions())
	if len(result.Rooms) != 9 {
		t.Errorf("rogue layout placed %d rooms, want 9", len(result.Rooms))
	}
	if !floorConnected(result.Floors) {
		t.Error("sectors not connected")
	}
}

func TestRogueDungeon_SmallAreaFallsBack(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	result := RogueDungeon(rng, 10, 10, DefaultOptions())
	if len(result.Rooms) == 0 {
		t.Error("fallback produced no rooms")
	}
}

func TestArena_SingleOpenRoom(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	result := Arena(rng, 20, 12, DefaultOptions())
	if len(result.Rooms) != 1 {
		t.Fatalf("arena placed %d rooms, want 1", len(result.Rooms))
	}
	// Border stays solid
	for x := 0; x < 20; x++ {
		if result.Floors[0][x] || result.Floors[11][x] {
			t.Fatalf("arena border dug at x=%d", x)
		}
	}
	if !result.Floors[5][5] {
		t.Error("arena interior not dug")
	}
}

func TestCollectJunctions_TouchRooms(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	result := DigDungeon(rng, 60, 40, DefaultOptions())
	for _, j := range result.Junctions {
		if result.inRoom(j.X, j.Y) {
			t.Errorf("junction (%d,%d) lies inside a room", j.X, j.Y)
		}
		if !result.Floors[j.Y][j.X] {
			t.Errorf("junction (%d,%d) is not dug", j.X, j.Y)
		}
	}
}
