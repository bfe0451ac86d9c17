package renderers

import (
	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/render"
)

// PausedRenderer overlays a banner while the clock is paused
type PausedRenderer struct {
	palette render.Palette
}

func NewPausedRenderer(palette render.Palette) *PausedRenderer {
	return &PausedRenderer{palette: palette}
}

// Render implements SystemRenderer
func (p *PausedRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if !ctx.Paused {
		return
	}
	buf.SetString(centerX(ctx.Width, parameter.PausedText), 5, parameter.PausedText,
		render.Style(p.palette.Background, p.palette.Paused).Bold(true))
}
