package renderers

import (
	"math"
	"strconv"

	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/render"
)

// bigDigits is a 5x5 block font for the settled face value
var bigDigits = map[int][5]string{
	1: {"  █  ", " ██  ", "  █  ", "  █  ", " ███ "},
	2: {" ███ ", "█   █", "  ██ ", " █   ", "█████"},
	3: {"████ ", "    █", " ███ ", "    █", "████ "},
	4: {"█  █ ", "█  █ ", "█████", "   █ ", "   █ "},
	5: {"█████", "█    ", "████ ", "    █", "████ "},
	6: {" ███ ", "█    ", "████ ", "█   █", " ███ "},
}

// ResultRenderer shows the settled value as a pulsing big digit in the screen centre
type ResultRenderer struct {
	palette render.Palette
}

func NewResultRenderer(palette render.Palette) *ResultRenderer {
	return &ResultRenderer{palette: palette}
}

// Pulse returns the glow blend in [0, 1] for the wall-clock nanosecond ns
func Pulse(ns int64) float64 {
	period := parameter.ResultPulsePeriod.Nanoseconds()
	phase := float64(ns%period) / float64(period)
	return 0.5 - 0.5*math.Cos(2*math.Pi*phase)
}

// Render implements SystemRenderer
func (r *ResultRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	snap := ctx.Snapshot
	if !snap.HasResult || snap.Rolling {
		return
	}

	col := r.palette.Result.BlendLab(r.palette.ResultGlow, Pulse(ctx.Now.UnixNano()))
	bg := r.palette.Background

	glyph, ok := bigDigits[snap.Result]
	if !ok || ctx.Height < 9 {
		s := strconv.Itoa(snap.Result)
		buf.SetString(centerX(ctx.Width, s), ctx.Height/2, s, render.Style(col, bg))
		return
	}

	x := (ctx.Width - 5) / 2
	y := (ctx.Height - 5) / 2
	style := render.Style(col, bg)
	for row, line := range glyph {
		for i, ch := range []rune(line) {
			if ch != ' ' {
				buf.Set(x+i, y+row, ch, style)
			}
		}
	}
}
