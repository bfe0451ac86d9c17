package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dice-roller/render"
)

// drawPanel fills a bordered box; interior is w-2 by h-2
func drawPanel(buf *render.Buffer, x, y, w, h int, border, fill tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	buf.FillRect(x, y, w, h, ' ', fill)
	for i := x + 1; i < x+w-1; i++ {
		buf.Set(i, y, '─', border)
		buf.Set(i, y+h-1, '─', border)
	}
	for j := y + 1; j < y+h-1; j++ {
		buf.Set(x, j, '│', border)
		buf.Set(x+w-1, j, '│', border)
	}
	buf.Set(x, y, '╭', border)
	buf.Set(x+w-1, y, '╮', border)
	buf.Set(x, y+h-1, '╰', border)
	buf.Set(x+w-1, y+h-1, '╯', border)
}

// centerX returns the column that centres s on a screen of width w
func centerX(w int, s string) int {
	x := (w - render.StringWidth(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}
