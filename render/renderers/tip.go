package renderers

import (
	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/render"
)

// TipRenderer draws the key hint at the bottom left
type TipRenderer struct {
	palette render.Palette
}

func NewTipRenderer(palette render.Palette) *TipRenderer {
	return &TipRenderer{palette: palette}
}

// Render implements SystemRenderer
func (t *TipRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if ctx.Height < 1 {
		return
	}
	text := parameter.TipText
	if ctx.Muted {
		text += " • m unmute"
	} else {
		text += " • m mute"
	}
	buf.SetString(1, ctx.Height-1, text, render.Style(t.palette.DimText, t.palette.Panel))
}
