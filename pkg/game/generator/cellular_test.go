package generator

import (
	"math/rand"
	"testing"
)

func TestCellular_ConnectedWhenRequested(t *testing.T) {
	opts := DefaultOptions()
	opts.Connected = true
	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		mask := Cellular(rng, 60, 40, opts)
		if !floorConnected(mask) {
			t.Errorf("seed %d: cave has unreachable pockets", seed)
		}
	}
}

func TestCellular_ProducesFloorAndWall(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	mask := Cellular(rng, 60, 40, DefaultOptions())
	floor, wall := 0, 0
	for y := range mask {
		for x := range mask[y] {
			if mask[y][x] {
				floor++
			} else {
				wall++
			}
		}
	}
	if floor == 0 || wall == 0 {
		t.Errorf("degenerate cave: %d floor, %d wall", floor, wall)
	}
}

func TestCellularLava_StaysOnFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	floor := Cellular(rng, 60, 40, DefaultOptions())
	lava := CellularLava(rng, floor, 40)

	any := false
	for y := range lava {
		for x := range lava[y] {
			if lava[y][x] {
				any = true
				if !floor[y][x] {
					t.Fatalf("lava at (%d,%d) outside floor", x, y)
				}
			}
		}
	}
	if !any {
		t.Error("40 percent seed chance produced no lava pools")
	}
}

func TestCellularLava_ZeroChance(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	floor := Cellular(rng, 30, 20, DefaultOptions())
	lava := CellularLava(rng, floor, 0)
	for y := range lava {
		for x := range lava[y] {
			if lava[y][x] {
				t.Fatalf("lava at (%d,%d) with zero chance", x, y)
			}
		}
	}
}
