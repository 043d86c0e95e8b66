// Package renderer defines the rendering backend interface for the map
// preview tool. Backends: TUI (terminal) and ebiten (windowed).
package renderer

import (
	"architect/pkg/game/architect"
)

// Renderer draws a built level
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Render draws the level once. The TUI prints and returns; the ebiten
	// backend blocks until its window closes.
	Render(a *architect.Architect) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
	Current.Init()
}

// Render draws the level using the current renderer
func Render(a *architect.Architect) error {
	if Current == nil {
		return nil
	}
	return Current.Render(a)
}
