package tilemap

import (
	"strings"
	"testing"
)

const sampleDoc = `{
	"width": 3,
	"height": 2,
	"layers": [
		{"name": "background", "type": "tilelayer", "data": [1, 1, 1, 1, 1, 1]},
		{"name": "floor", "type": "tilelayer", "data": [2, 0, 2, -1, 2, 0]},
		{"name": "actors", "type": "objectgroup", "objects": [
			{"name": "guard", "type": "skeleton", "x": 16, "y": 32,
			 "properties": {"hostile": true}}
		]}
	]
}`

func TestParse_ValidDocument(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.Width != 3 || doc.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 3x2", doc.Width, doc.Height)
	}

	floor := doc.TileLayer("floor")
	if floor == nil {
		t.Fatal("floor tile layer not found")
	}
	if id := doc.TileID(floor, 0, 0); id != 2 {
		t.Errorf("TileID(0,0) = %d, want 2", id)
	}
	if id := doc.TileID(floor, 1, 0); id != 0 {
		t.Errorf("TileID(1,0) = %d, want 0 (empty)", id)
	}
	// Negative authored ids also mean empty
	if id := doc.TileID(floor, 0, 1); id != 0 {
		t.Errorf("TileID(0,1) = %d, want 0 for negative authored id", id)
	}
	// Out of range is empty, never a panic
	if id := doc.TileID(floor, 5, 5); id != 0 {
		t.Errorf("TileID(5,5) = %d, want 0", id)
	}
}

func TestParse_ObjectLayerPassThrough(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	actors := doc.ObjectLayer("actors")
	if actors == nil {
		t.Fatal("actors object layer not found")
	}
	if len(actors.Objects) != 1 {
		t.Fatalf("got %d objects, want 1", len(actors.Objects))
	}
	obj := actors.Objects[0]
	if obj.Type != "skeleton" || obj.X != 16 || obj.Y != 32 {
		t.Errorf("object = %+v, want skeleton at (16,32)", obj)
	}
	if hostile, ok := obj.Properties["hostile"].(bool); !ok || !hostile {
		t.Error("object properties should pass through untouched")
	}
	// Object layers are not tile layers and vice versa
	if doc.TileLayer("actors") != nil {
		t.Error("TileLayer(\"actors\") should be nil")
	}
	if doc.ObjectLayer("floor") != nil {
		t.Error("ObjectLayer(\"floor\") should be nil")
	}
}

func TestParse_MalformedJSONIsFatal(t *testing.T) {
	if _, err := Parse([]byte(`{"width": 3,`)); err == nil {
		t.Error("malformed JSON should return an error")
	}
}

func TestParse_LayerSizeMismatchIsFatal(t *testing.T) {
	doc := `{"width": 3, "height": 2, "layers": [
		{"name": "floor", "type": "tilelayer", "data": [1, 2, 3]}
	]}`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("layer/data size mismatch should return an error")
	}
	if !strings.Contains(err.Error(), "floor") {
		t.Errorf("error should name the offending layer, got: %v", err)
	}
}

func TestParse_InvalidDimensions(t *testing.T) {
	if _, err := Parse([]byte(`{"width": 0, "height": 5, "layers": []}`)); err == nil {
		t.Error("zero width should return an error")
	}
}
