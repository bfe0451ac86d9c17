package renderers

import (
	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/render"
)

// SpinnerRenderer shows a rotating indicator while the die is in the air
type SpinnerRenderer struct {
	palette render.Palette
}

func NewSpinnerRenderer(palette render.Palette) *SpinnerRenderer {
	return &SpinnerRenderer{palette: palette}
}

// SpinnerFrame picks the indicator glyph for the wall-clock nanosecond ns
func SpinnerFrame(ns int64) rune {
	n := int64(len(parameter.SpinnerFrames))
	idx := (ns / parameter.SpinnerFrameDuration.Nanoseconds()) % n
	if idx < 0 {
		idx += n
	}
	return parameter.SpinnerFrames[idx]
}

// Render implements SystemRenderer
func (s *SpinnerRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if !ctx.Snapshot.Rolling {
		return
	}
	label := string(SpinnerFrame(ctx.Now.UnixNano())) + " Rolling…"
	buf.SetString(centerX(ctx.Width, label), ctx.Height/2, label,
		render.Style(s.palette.Rolling, s.palette.Background))
}
