package architect

import (
	"testing"

	"architect/pkg/engine/grid"
	"architect/pkg/game/generator"
	"architect/pkg/game/spawn"
)

func TestClassifyWildcard_StaticTable(t *testing.T) {
	a := New(5, 5, 1, nil)
	cases := map[int]string{
		TileWildcardMaze:       generator.ClassMaze,
		TileWildcardDungeon:    generator.ClassDungeon,
		TileWildcardCave:       generator.ClassCave,
		TileWildcardInfernal:   generator.ClassInfernal,
		TileWildcardRoom:       generator.ClassRoom,
		TileWildcardItemSpawn:  TypeItemSpawn,
		TileWildcardActorSpawn: TypeActorSpawn,
		12345:                  TypeUnknown,
	}
	for id, want := range cases {
		if got := a.classifyWildcard(id, nil); got != want {
			t.Errorf("classify(%d) = %q, want %q", id, got, want)
		}
	}
}

func TestResolveUnknownWildcards_TwoPhase(t *testing.T) {
	const goblinTile = 50
	markers := map[grid.Point]int{
		{X: 2, Y: 2}: goblinTile,
		{X: 3, Y: 2}: goblinTile,
	}

	// Phase 1: no context yet, the marker parses as unknown
	a := newTestArchitect(t, 6, 6, 1, markers)
	if cell := a.WildcardAt(2, 2); cell.Type != TypeUnknown {
		t.Fatalf("pre-context type %q, want unknown", cell.Type)
	}

	// Unknown regions are skipped by generation and keep their markers
	if err := a.GenerateLevel(nil); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if cell := a.WildcardAt(2, 2); cell.Consumed {
		t.Fatal("unknown marker consumed without a resolution")
	}

	// Phase 2: a context with a paint-tile actor resolves the marker
	ctx := spawn.NewStubContext()
	ctx.Actors["goblin"] = &spawn.ActorDef{Name: "goblin", PaintTile: "goblin_tile"}
	ctx.TileIDs["goblin_tile"] = goblinTile

	if resolved := a.ResolveUnknownWildcards(ctx); resolved != 2 {
		t.Fatalf("resolved %d markers, want 2", resolved)
	}
	if cell := a.WildcardAt(2, 2); cell.Type != "goblin" {
		t.Fatalf("post-context type %q, want goblin", cell.Type)
	}

	if err := a.GenerateLevel(ctx); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a.PendingActorCount() != 2 {
		t.Fatalf("%d pending actors, want 2", a.PendingActorCount())
	}
	for _, p := range a.pendingActors.Pending() {
		if p.Type != "goblin" {
			t.Errorf("queued type %q, want goblin", p.Type)
		}
	}

	created := a.SpawnPendingActors(ctx)
	if created != 2 {
		t.Errorf("drain created %d goblins, want 2", created)
	}
}

func TestClearWildcardCache_Invalidates(t *testing.T) {
	a := New(5, 5, 1, nil)

	ctx := spawn.NewStubContext()
	ctx.Actors["imp"] = &spawn.ActorDef{Name: "imp", PaintTile: "imp_tile"}
	ctx.TileIDs["imp_tile"] = 60

	if got := a.classifyWildcard(60, ctx); got != "imp" {
		t.Fatalf("classify(60) = %q, want imp", got)
	}

	// A new prototype is invisible until the cache is invalidated
	ctx.Actors["wisp"] = &spawn.ActorDef{Name: "wisp", PaintTile: "wisp_tile"}
	ctx.TileIDs["wisp_tile"] = 61
	if got := a.classifyWildcard(61, ctx); got != TypeUnknown {
		t.Fatalf("stale cache returned %q", got)
	}

	a.ClearWildcardCache()
	if got := a.classifyWildcard(61, ctx); got != "wisp" {
		t.Errorf("post-invalidation classify(61) = %q, want wisp", got)
	}
	if got := a.classifyWildcard(60, ctx); got != "imp" {
		t.Errorf("rebuild lost imp: %q", got)
	}
}

func TestResolveUnknownWildcards_NilContext(t *testing.T) {
	markers := map[grid.Point]int{{X: 1, Y: 1}: 50}
	a := newTestArchitect(t, 4, 4, 1, markers)
	if resolved := a.ResolveUnknownWildcards(nil); resolved != 0 {
		t.Errorf("resolved %d without a context", resolved)
	}
}
