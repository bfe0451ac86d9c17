package renderers

import (
	"github.com/lixenwraith/dice-roller/render"
)

// DebugRenderer lists status registry lines at the top left
type DebugRenderer struct {
	palette render.Palette
	visible bool
}

func NewDebugRenderer(palette render.Palette) *DebugRenderer {
	return &DebugRenderer{palette: palette}
}

// SetVisible toggles the overlay
func (d *DebugRenderer) SetVisible(v bool) {
	d.visible = v
}

// IsVisible implements VisibilityToggle
func (d *DebugRenderer) IsVisible() bool {
	return d.visible
}

// Render implements SystemRenderer
func (d *DebugRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	style := render.Style(d.palette.Debug, d.palette.Panel)
	for i, line := range ctx.Status {
		y := 5 + i
		if y >= ctx.Height-1 {
			break
		}
		buf.SetString(1, y, line, style)
	}
}
