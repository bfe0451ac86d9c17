package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal character with its style
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is the frame compositor; renderers write cells and the orchestrator flushes once
type Buffer struct {
	cells  []Cell
	width  int
	height int
	fill   Cell
}

// NewBuffer creates a buffer of the given size cleared to fill
func NewBuffer(width, height int, fill Cell) *Buffer {
	b := &Buffer{fill: fill}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only when capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to the fill cell using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.fill
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns width and height in cells
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell, ignoring out-of-bounds coordinates
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at x,y; out of bounds returns the fill cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.fill
	}
	return b.cells[y*b.width+x]
}

// SetString writes s starting at x,y and returns the column after the last rune
// Wide runes occupy two columns
func (b *Buffer) SetString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(x, y, r, style)
		if w == 2 {
			b.Set(x+1, y, 0, style)
		}
		x += w
	}
	return x
}

// FillRect paints a rectangle with r in style
func (b *Buffer) FillRect(x, y, w, h int, r rune, style tcell.Style) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.Set(xx, yy, r, style)
		}
	}
}

// StringWidth returns the display width of s in cells
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// FlushToScreen copies the buffer to screen; continuation cells of wide runes are skipped
func (b *Buffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Rune == 0 {
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
