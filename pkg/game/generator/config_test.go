package generator

import (
	"encoding/json"
	"math/rand"
	"testing"
)

func TestRangePick_WithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := Range{3, 9}
	for i := 0; i < 100; i++ {
		v := r.Pick(rng)
		if v < 3 || v > 9 {
			t.Fatalf("picked %d outside [3,9]", v)
		}
	}
	if v := (Range{5, 5}).Pick(rng); v != 5 {
		t.Errorf("collapsed range picked %d", v)
	}
	if v := (Range{9, 3}).Pick(rng); v < 3 || v > 9 {
		t.Errorf("inverted range picked %d", v)
	}
}

func TestSemanticType(t *testing.T) {
	cases := map[string]string{
		TypeDividedMaze: ClassMaze,
		TypeIceyMaze:    ClassMaze,
		TypeEllerMaze:   ClassMaze,
		TypeDigger:      ClassDungeon,
		TypeUniform:     ClassDungeon,
		TypeRogue:       ClassDungeon,
		TypeCellular:    ClassCave,
		TypeInfernal:    ClassInfernal,
		TypeArena:       ClassRoom,
		"volcano":       "",
	}
	for configType, want := range cases {
		if got := SemanticType(configType); got != want {
			t.Errorf("SemanticType(%q) = %q, want %q", configType, got, want)
		}
	}
}

func TestPickWeighted_RespectsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	table := []WallType{
		{Type: "wall", Weight: 90},
		{Type: "bone_wall", Weight: 10},
	}
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[PickWeighted(rng, table)]++
	}
	if counts["wall"] < 800 || counts["bone_wall"] == 0 {
		t.Errorf("weights not respected: %v", counts)
	}
	if counts["wall"]+counts["bone_wall"] != 1000 {
		t.Errorf("unexpected draws: %v", counts)
	}
}

func TestPickWeighted_EmptyTable(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	if got := PickWeighted(rng, nil); got != "wall" {
		t.Errorf("empty table picked %q, want wall", got)
	}
	zeroed := []WallType{{Type: "lava_wall", Weight: 0}}
	if got := PickWeighted(rng, zeroed); got != "wall" {
		t.Errorf("zero-weight table picked %q, want wall", got)
	}
}

func TestOptionsNormalized_FillsDefaults(t *testing.T) {
	opts := Options{}.Normalized()
	defaults := DefaultOptions()
	if opts.Probability != defaults.Probability {
		t.Errorf("probability %v", opts.Probability)
	}
	if opts.RoomWidth != defaults.RoomWidth {
		t.Errorf("room width %v", opts.RoomWidth)
	}
	if opts.MapWidth != defaults.MapWidth || opts.MapHeight != defaults.MapHeight {
		t.Errorf("map size %dx%d", opts.MapWidth, opts.MapHeight)
	}
	if len(opts.WallTypes) != 1 || opts.WallTypes[0].Type != "wall" {
		t.Errorf("wall types %v", opts.WallTypes)
	}
	if opts.LavaChance != defaults.LavaChance {
		t.Errorf("lava chance %d, want %d", opts.LavaChance, defaults.LavaChance)
	}
}

func TestOptionsNormalized_ClampsOutOfRange(t *testing.T) {
	opts := Options{DugPercentage: 3, LavaChance: 400}.Normalized()
	if opts.DugPercentage != 1 {
		t.Errorf("dug percentage %v, want 1", opts.DugPercentage)
	}
	if opts.LavaChance != 100 {
		t.Errorf("lava chance %d, want 100", opts.LavaChance)
	}
}

func TestConfig_ParsesJSON(t *testing.T) {
	raw := []byte(`{
		"type": "cellular",
		"options": {
			"born": [5,6,7,8],
			"probability": 0.45,
			"connected": true,
			"wall_types": [{"type":"wall","weight":80},{"type":"crystal_wall","weight":20}],
			"lava_chance": 35,
			"map_width": 64,
			"map_height": 48
		}
	}`)
	var config Config
	if err := json.Unmarshal(raw, &config); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if config.Type != TypeCellular {
		t.Errorf("type %q", config.Type)
	}
	if config.Options.LavaChance != 35 || config.Options.MapWidth != 64 {
		t.Errorf("options %+v", config.Options)
	}
	if len(config.Options.WallTypes) != 2 || config.Options.WallTypes[1].Type != "crystal_wall" {
		t.Errorf("wall types %+v", config.Options.WallTypes)
	}
}
