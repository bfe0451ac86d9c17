package renderers

import (
	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/render"
)

// TitleRenderer draws the title card at the top centre
type TitleRenderer struct {
	palette render.Palette
}

func NewTitleRenderer(palette render.Palette) *TitleRenderer {
	return &TitleRenderer{palette: palette}
}

// Render implements SystemRenderer
func (t *TitleRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	w := render.StringWidth(parameter.SubtitleText) + 4
	if title := render.StringWidth(parameter.TitleText) + 4; title > w {
		w = title
	}
	if w > ctx.Width {
		w = ctx.Width
	}
	x := (ctx.Width - w) / 2

	border := render.Style(t.palette.Border, t.palette.Panel)
	fill := render.Style(t.palette.Text, t.palette.Panel)
	drawPanel(buf, x, 0, w, 4, border, fill)

	buf.SetString(centerX(ctx.Width, parameter.TitleText), 1, parameter.TitleText, fill)
	buf.SetString(centerX(ctx.Width, parameter.SubtitleText), 2, parameter.SubtitleText,
		render.Style(t.palette.DimText, t.palette.Panel))
}
