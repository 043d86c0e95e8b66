package architect

import (
	"testing"

	"architect/pkg/engine/grid"
	"architect/pkg/game/generator"
)

func TestFindWildcardRegions_TwoSeparatedBlobs(t *testing.T) {
	markers := map[grid.Point]int{}
	fillMarkers(markers, 0, 0, 3, 3, TileWildcardMaze)
	fillMarkers(markers, 5, 0, 3, 3, TileWildcardMaze)

	a := newTestArchitect(t, 10, 5, 1, markers)
	regions := a.FindWildcardRegions()
	if len(regions) != 2 {
		t.Fatalf("found %d regions, want 2", len(regions))
	}
	for _, r := range regions {
		if r.Type != generator.ClassMaze {
			t.Errorf("region type %q", r.Type)
		}
		if r.Width != 3 || r.Height != 3 {
			t.Errorf("region %+v, want 3x3", r)
		}
	}
	// Non-overlapping boxes
	a1, a2 := regions[0], regions[1]
	if a1.X+a1.Width > a2.X && a2.X+a2.Width > a1.X &&
		a1.Y+a1.Height > a2.Y && a2.Y+a2.Height > a1.Y {
		t.Errorf("regions overlap: %+v / %+v", a1, a2)
	}
}

func TestFindWildcardRegions_DiagonalCellsSplit(t *testing.T) {
	// 4-connectivity: diagonal neighbors are separate components
	markers := map[grid.Point]int{
		{X: 1, Y: 1}: TileWildcardCave,
		{X: 2, Y: 2}: TileWildcardCave,
	}
	a := newTestArchitect(t, 5, 5, 1, markers)
	if regions := a.FindWildcardRegions(); len(regions) != 2 {
		t.Errorf("found %d regions, want 2", len(regions))
	}
}

func TestFindWildcardRegions_MixedTypesSplit(t *testing.T) {
	// Adjacent cells of different types belong to different regions
	markers := map[grid.Point]int{
		{X: 1, Y: 1}: TileWildcardMaze,
		{X: 2, Y: 1}: TileWildcardDungeon,
	}
	a := newTestArchitect(t, 5, 5, 1, markers)
	regions := a.FindWildcardRegions()
	if len(regions) != 2 {
		t.Fatalf("found %d regions, want 2", len(regions))
	}
}

func TestFindWildcardRegions_BoundingBoxOfLShape(t *testing.T) {
	markers := map[grid.Point]int{
		{X: 1, Y: 1}: TileWildcardRoom,
		{X: 1, Y: 2}: TileWildcardRoom,
		{X: 1, Y: 3}: TileWildcardRoom,
		{X: 2, Y: 3}: TileWildcardRoom,
		{X: 3, Y: 3}: TileWildcardRoom,
	}
	a := newTestArchitect(t, 6, 6, 1, markers)
	regions := a.FindWildcardRegions()
	if len(regions) != 1 {
		t.Fatalf("found %d regions, want 1", len(regions))
	}
	r := regions[0]
	if r.X != 1 || r.Y != 1 || r.Width != 3 || r.Height != 3 {
		t.Errorf("bounding box %+v, want 3x3 at (1,1)", r)
	}
}

func TestPartitionRegions_MazesRoomsRest(t *testing.T) {
	regions := []Region{
		{Type: generator.ClassCave},
		{Type: generator.ClassRoom},
		{Type: generator.ClassMaze},
		{Type: generator.ClassDungeon},
		{Type: generator.ClassRoom},
		{Type: generator.ClassMaze},
	}
	ordered := partitionRegions(regions)
	want := []string{
		generator.ClassMaze, generator.ClassMaze,
		generator.ClassRoom, generator.ClassRoom,
		generator.ClassCave, generator.ClassDungeon,
	}
	for i, r := range ordered {
		if r.Type != want[i] {
			t.Fatalf("position %d is %q, want %q", i, r.Type, want[i])
		}
	}
}
