// Package tilemap parses authored JSON tile-map documents.
// Tile ids are 1-indexed; an id <= 0 means an empty cell. Object layers are
// carried through untouched for the entity subsystem.
package tilemap

import (
	"encoding/json"
	"fmt"
)

// Layer kinds
const (
	TypeTileLayer   = "tilelayer"
	TypeObjectGroup = "objectgroup"
)

// Document is a parsed authored map
type Document struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Layers []Layer `json:"layers"`
}

// Layer is either a tile layer (Data set) or an object group (Objects set)
type Layer struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Data    []int    `json:"data,omitempty"`
	Objects []Object `json:"objects,omitempty"`
}

// Object is an entry of an object layer, passed through to the entity
// subsystem without interpretation.
type Object struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Parse decodes and validates an authored map document. A malformed document
// is a fatal error for the caller; there is no fallback map.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse map document: %w", err)
	}

	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("map has invalid dimensions %dx%d", doc.Width, doc.Height)
	}

	for _, layer := range doc.Layers {
		if layer.Type != TypeTileLayer {
			continue
		}
		if len(layer.Data) != doc.Width*doc.Height {
			return nil, fmt.Errorf("tile layer %q has %d cells, want %d",
				layer.Name, len(layer.Data), doc.Width*doc.Height)
		}
	}

	return &doc, nil
}

// TileLayer returns the named tile layer, or nil if the document has no tile
// layer with that name. Callers routinely probe for optional layers.
func (d *Document) TileLayer(name string) *Layer {
	for i := range d.Layers {
		if d.Layers[i].Type == TypeTileLayer && d.Layers[i].Name == name {
			return &d.Layers[i]
		}
	}
	return nil
}

// ObjectLayer returns the named object layer, or nil if absent
func (d *Document) ObjectLayer(name string) *Layer {
	for i := range d.Layers {
		if d.Layers[i].Type == TypeObjectGroup && d.Layers[i].Name == name {
			return &d.Layers[i]
		}
	}
	return nil
}

// TileID returns the 1-indexed tile id at (x, y) of a tile layer, or 0 for an
// empty or out-of-range cell
func (d *Document) TileID(layer *Layer, x, y int) int {
	if layer == nil || x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return 0
	}
	id := layer.Data[y*d.Width+x]
	if id <= 0 {
		return 0
	}
	return id
}
