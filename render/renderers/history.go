package renderers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/render"
)

// HistoryRenderer draws the recent results box at the bottom right
// Newest result is highlighted; average and per-face counts follow
type HistoryRenderer struct {
	palette render.Palette
}

func NewHistoryRenderer(palette render.Palette) *HistoryRenderer {
	return &HistoryRenderer{palette: palette}
}

// Render implements SystemRenderer
func (h *HistoryRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if len(ctx.HistoryValues) == 0 {
		return
	}

	w := parameter.HistoryPanelWidth + 2
	const rows = 6
	x := ctx.Width - w - 1
	y := ctx.Height - rows - 1
	if x < 0 || y < 0 {
		return
	}

	panel := h.palette.Panel
	drawPanel(buf, x, y, w, rows, render.Style(h.palette.Border, panel), render.Style(h.palette.Text, panel))
	buf.SetString(x+2, y+1, parameter.HistoryTitle, render.Style(h.palette.DimText, panel))

	// Values wrap inside the panel
	cx, cy := x+2, y+2
	for i, v := range ctx.HistoryValues {
		style := render.Style(h.palette.Text, panel)
		if i == 0 {
			style = render.Style(h.palette.Highlight, panel).Bold(true)
		}
		if cx+1 > x+w-2 {
			cx = x + 2
			cy++
		}
		buf.SetString(cx, cy, strconv.Itoa(v), style)
		cx += 2
	}

	dim := render.Style(h.palette.DimText, panel)
	buf.SetString(x+2, y+rows-2, "Average: "+ctx.Average, dim)

	parts := make([]string, len(ctx.Counts))
	for face, n := range ctx.Counts {
		parts[face] = fmt.Sprintf("%d:%d", face+1, n)
	}
	counts := strings.Join(parts, " ")
	if render.StringWidth(counts) <= w-4 {
		buf.SetString(x+2, y+rows-3, counts, dim)
	}
}
