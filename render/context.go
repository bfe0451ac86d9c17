package render

import (
	"time"

	"github.com/lixenwraith/dice-roller/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Screen dimensions in cells
	Width  int
	Height int

	// Simulation state captured once per frame
	Snapshot engine.Snapshot

	// History panel
	HistoryValues []int // Newest first
	Average       string
	Counts        [6]int

	// Toggles
	Paused bool
	Debug  bool
	Muted  bool

	// Wall clock for HUD animation
	Now time.Time

	// Status lines shown by the debug overlay
	Status []string
}
